package remote

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
)

// RegisterClient implements remote.RegisterAPI over the backend's
// /cashregister endpoints.
type RegisterClient struct {
	c *Client
}

// NewRegisterClient creates a register client on the shared backend client.
func NewRegisterClient(c *Client) *RegisterClient {
	return &RegisterClient{c: c}
}

type createRegisterPayload struct {
	LocationID   int64  `json:"LocationID"`
	RegisterName string `json:"RegisterName"`
	DeviceID     string `json:"DeviceID"`
}

type openingAmountPayload struct {
	DeviceID      string  `json:"DeviceID"`
	OpeningAmount float64 `json:"OpeningAmount"`
}

type closingAmountPayload struct {
	DeviceID      string                    `json:"DeviceID"`
	ClosingAmount float64                   `json:"ClosingAmount"`
	Notes         entity.DenominationCounts `json:"notes"`
}

type cashInOutPayload struct {
	DeviceID string  `json:"DeviceID"`
	Amount   float64 `json:"Amount"`
	Type     bool    `json:"Type"`
	Reason   string  `json:"Reason"`
}

// GetRegisterByDevice returns the register bound to a device id.
func (rc *RegisterClient) GetRegisterByDevice(ctx context.Context, deviceID string) (*entity.Register, error) {
	env, err := rc.c.get(ctx, "/cashregister/get/"+url.PathEscape(deviceID), true)
	if err != nil {
		return nil, err
	}

	var reg entity.Register
	if err := decodeData(env, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// CreateRegister binds a new register to this device.
func (rc *RegisterClient) CreateRegister(ctx context.Context, locationID int64, registerName, deviceID string) (*entity.Register, error) {
	env, err := rc.c.post(ctx, "/cashregister/create", createRegisterPayload{
		LocationID:   locationID,
		RegisterName: registerName,
		DeviceID:     deviceID,
	}, true)
	if err != nil {
		return nil, err
	}

	var reg entity.Register
	if err := decodeData(env, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// IsOpen reports whether the register currently has an open session.
func (rc *RegisterClient) IsOpen(ctx context.Context, deviceID string) (bool, error) {
	env, err := rc.c.get(ctx, "/cashregister/isOpen/"+url.PathEscape(deviceID), true)
	if err != nil {
		return false, err
	}

	var open bool
	if err := decodeData(env, &open); err != nil {
		return false, err
	}
	return open, nil
}

// IsClosed reports whether the register's last session is closed.
func (rc *RegisterClient) IsClosed(ctx context.Context, deviceID string) (bool, error) {
	env, err := rc.c.get(ctx, "/cashregister/isClosed/"+url.PathEscape(deviceID), false)
	if err != nil {
		return false, err
	}

	var closed bool
	if err := decodeData(env, &closed); err != nil {
		return false, err
	}
	return closed, nil
}

// SetOpeningAmount opens a register session and returns its id.
func (rc *RegisterClient) SetOpeningAmount(ctx context.Context, deviceID string, amount decimal.Decimal) (int64, error) {
	env, err := rc.c.post(ctx, "/cashregister/setOpeningAmount", openingAmountPayload{
		DeviceID:      deviceID,
		OpeningAmount: amount.Round(2).InexactFloat64(),
	}, true)
	if err != nil {
		return 0, err
	}

	var sessionID int64
	if err := decodeData(env, &sessionID); err != nil {
		return 0, err
	}
	return sessionID, nil
}

// SetClosingAmount closes the current session with the counted total and the
// per-denomination note counts.
func (rc *RegisterClient) SetClosingAmount(ctx context.Context, deviceID string, amount decimal.Decimal, notes entity.DenominationCounts) error {
	_, err := rc.c.post(ctx, "/cashregister/setClosingAmount", closingAmountPayload{
		DeviceID:      deviceID,
		ClosingAmount: amount.Round(2).InexactFloat64(),
		Notes:         notes,
	}, true)
	return err
}

// CashInOut records a drawer movement outside a sale. in=true adds cash,
// in=false removes it.
func (rc *RegisterClient) CashInOut(ctx context.Context, deviceID string, amount decimal.Decimal, in bool, reason string) (int64, error) {
	env, err := rc.c.post(ctx, "/cashregister/cashInOut", cashInOutPayload{
		DeviceID: deviceID,
		Amount:   amount.Round(2).InexactFloat64(),
		Type:     in,
		Reason:   reason,
	}, true)
	if err != nil {
		return 0, err
	}

	var transactionID int64
	if err := decodeData(env, &transactionID); err != nil {
		return 0, err
	}
	return transactionID, nil
}
