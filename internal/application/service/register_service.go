package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
	"github.com/puwasa/pos-terminal/internal/domain/remote"
	"github.com/puwasa/pos-terminal/internal/session"
	"github.com/puwasa/pos-terminal/pkg/apperror"
)

// RegisterService manages the cash-register session for this terminal's
// device: registration, open/close state, opening and closing amounts, and
// drawer movements. The ledger itself lives on the backend; this is
// orchestration only.
type RegisterService struct {
	api                remote.RegisterAPI
	sess               *session.Session
	logger             *zap.Logger
	fallbackLocationID int64
}

// NewRegisterService creates a new register service.
func NewRegisterService(api remote.RegisterAPI, sess *session.Session, fallbackLocationID int64, logger *zap.Logger) *RegisterService {
	return &RegisterService{api: api, sess: sess, fallbackLocationID: fallbackLocationID, logger: logger}
}

// EnsureRegister returns the register bound to this device, creating one
// with the given name when the device is not yet registered.
func (s *RegisterService) EnsureRegister(ctx context.Context, registerName string) (*entity.Register, error) {
	deviceID := s.sess.DeviceID()

	reg, err := s.api.GetRegisterByDevice(ctx, deviceID)
	if err == nil && reg != nil {
		s.sess.SetRegister(reg)
		return reg, nil
	}

	if registerName == "" {
		return nil, apperror.NewBadRequestError("Register name is required to register this device")
	}

	reg, err = s.api.CreateRegister(ctx, s.sess.LocationID(s.fallbackLocationID), registerName, deviceID)
	if err != nil {
		return nil, err
	}
	s.sess.SetRegister(reg)
	s.logger.Info("register created",
		zap.Int64("register_id", reg.RegisterID),
		zap.String("device_id", deviceID),
	)
	return reg, nil
}

// IsOpen reports whether this device's register has an open session.
func (s *RegisterService) IsOpen(ctx context.Context) (bool, error) {
	return s.api.IsOpen(ctx, s.sess.DeviceID())
}

// IsClosed reports whether this device's register is closed.
func (s *RegisterService) IsClosed(ctx context.Context) (bool, error) {
	return s.api.IsClosed(ctx, s.sess.DeviceID())
}

// Open starts a register session with the counted opening float.
func (s *RegisterService) Open(ctx context.Context, openingAmount decimal.Decimal) (int64, error) {
	if openingAmount.IsNegative() {
		return 0, apperror.NewBadRequestError("Opening amount cannot be negative")
	}

	sessionID, err := s.api.SetOpeningAmount(ctx, s.sess.DeviceID(), openingAmount)
	if err != nil {
		return 0, err
	}
	s.logger.Info("register opened",
		zap.Int64("session_id", sessionID),
		zap.String("amount", openingAmount.String()),
	)
	return sessionID, nil
}

// Close ends the register session with the counted total and the
// per-denomination note counts.
func (s *RegisterService) Close(ctx context.Context, closingAmount decimal.Decimal, notes entity.DenominationCounts) error {
	if closingAmount.IsNegative() {
		return apperror.NewBadRequestError("Closing amount cannot be negative")
	}

	if err := s.api.SetClosingAmount(ctx, s.sess.DeviceID(), closingAmount, notes); err != nil {
		return err
	}
	s.logger.Info("register closed", zap.String("amount", closingAmount.String()))
	return nil
}

// CashInOut records a drawer movement outside a sale.
func (s *RegisterService) CashInOut(ctx context.Context, amount decimal.Decimal, in bool, reason string) (int64, error) {
	if !amount.IsPositive() {
		return 0, apperror.NewBadRequestError("Amount must be greater than zero")
	}
	if reason == "" {
		return 0, apperror.NewBadRequestError("Reason is required")
	}

	transactionID, err := s.api.CashInOut(ctx, s.sess.DeviceID(), amount, in, reason)
	if err != nil {
		return 0, err
	}
	s.logger.Info("cash movement recorded",
		zap.Int64("transaction_id", transactionID),
		zap.Bool("in", in),
		zap.String("amount", amount.String()),
	)
	return transactionID, nil
}
