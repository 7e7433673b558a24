// Package remote defines the terminal's view of the billing backend. The
// backend is an external collaborator; these interfaces are its contract,
// implemented over HTTP in internal/infrastructure/remote.
package remote

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
)

// BillingAPI covers the bill lifecycle endpoints.
type BillingAPI interface {
	// CreateBill opens a new bill and returns its id.
	CreateBill(ctx context.Context, locationID, customerID, cashierID int64) (int64, error)
	// AddBillDetails attaches the full item list to a bill in one call.
	// Item discounts are absolute currency amounts, never percentages.
	AddBillDetails(ctx context.Context, billID int64, items []entity.BillDetail) error
	// GetBill fetches a bill with its details.
	GetBill(ctx context.Context, billID int64) (*entity.Bill, error)
	// CompleteBill finalises payment and returns the balance plus the
	// backend's confirmation message.
	CompleteBill(ctx context.Context, billID int64, cash, card decimal.Decimal) (decimal.Decimal, string, error)
	// CancelBill deletes a not-yet-completed bill.
	CancelBill(ctx context.Context, billID int64) error
	// GetTemporaryBills lists held bills for a location.
	GetTemporaryBills(ctx context.Context, locationID int64) ([]entity.TemporaryBill, error)
}

// InventoryAPI covers the lookups that feed the cart.
type InventoryAPI interface {
	GetItemByBarcode(ctx context.Context, barcode string, locationID int64) ([]entity.InventoryItem, error)
	GetItemQuantity(ctx context.Context, barcode string, locationID int64) (int, error)
	GetAll(ctx context.Context, locationID int64) ([]entity.InventoryItem, error)
	SearchByName(ctx context.Context, name string, locationID int64) ([]entity.InventoryItem, error)
}

// RegisterAPI covers cash-register session management, keyed by the
// terminal's device id.
type RegisterAPI interface {
	GetRegisterByDevice(ctx context.Context, deviceID string) (*entity.Register, error)
	CreateRegister(ctx context.Context, locationID int64, registerName, deviceID string) (*entity.Register, error)
	IsOpen(ctx context.Context, deviceID string) (bool, error)
	IsClosed(ctx context.Context, deviceID string) (bool, error)
	SetOpeningAmount(ctx context.Context, deviceID string, amount decimal.Decimal) (int64, error)
	SetClosingAmount(ctx context.Context, deviceID string, amount decimal.Decimal, notes entity.DenominationCounts) error
	CashInOut(ctx context.Context, deviceID string, amount decimal.Decimal, in bool, reason string) (int64, error)
}

// LoginResult is what the backend returns on a successful login.
type LoginResult struct {
	User         *entity.User
	Location     *entity.Location
	AccessToken  string
	RefreshToken string
}

// AuthAPI covers cashier authentication.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (accessToken, newRefreshToken string, err error)
	Logout(ctx context.Context) error
}
