package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
	"github.com/puwasa/pos-terminal/internal/domain/remote"
	"github.com/puwasa/pos-terminal/internal/session"
	"github.com/puwasa/pos-terminal/pkg/apperror"
)

// InventoryService wraps the remote inventory lookups that feed the cart:
// barcode scans, name search and stock checks, always scoped to the
// session's location.
type InventoryService struct {
	api                remote.InventoryAPI
	sess               *session.Session
	logger             *zap.Logger
	fallbackLocationID int64
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(api remote.InventoryAPI, sess *session.Session, fallbackLocationID int64, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		api:                api,
		sess:               sess,
		fallbackLocationID: fallbackLocationID,
		logger:             logger,
	}
}

func (s *InventoryService) locationID() int64 {
	return s.sess.LocationID(s.fallbackLocationID)
}

// ScanBarcode looks up the items for a scanned barcode.
func (s *InventoryService) ScanBarcode(ctx context.Context, barcode string) ([]entity.InventoryItem, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, apperror.NewBadRequestError("Barcode is required")
	}
	return s.api.GetItemByBarcode(ctx, barcode, s.locationID())
}

// StockOnHand returns the quantity available for a barcode.
func (s *InventoryService) StockOnHand(ctx context.Context, barcode string) (int, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return 0, apperror.NewBadRequestError("Barcode is required")
	}
	return s.api.GetItemQuantity(ctx, barcode, s.locationID())
}

// Search finds items by (partial) title.
func (s *InventoryService) Search(ctx context.Context, name string) ([]entity.InventoryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Search term is required")
	}
	return s.api.SearchByName(ctx, name, s.locationID())
}

// All returns the full inventory for the session's location.
func (s *InventoryService) All(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.api.GetAll(ctx, s.locationID())
}
