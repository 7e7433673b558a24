package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/puwasa/pos-terminal/internal/domain/enum"
)

// BillDetail is one line of a remote bill. Discount here is always an
// absolute currency amount, already clamped to the line subtotal; the
// percentage representation never crosses this boundary.
type BillDetail struct {
	InventoryID int64           `json:"InventoryID"`
	ItemName    string          `json:"ItemName,omitempty"`
	UnitPrice   decimal.Decimal `json:"UnitPrice"`
	Discount    decimal.Decimal `json:"Discount"`
	Quantity    int             `json:"QTY"`
}

// Bill is the remote-owned sales transaction record, referenced locally by
// id. Totals and balance are authoritative on the remote side.
type Bill struct {
	BillID     int64           `json:"BillID"`
	LocationID int64           `json:"LocationID"`
	CustomerID int64           `json:"CustomerID"`
	CashierID  int64           `json:"CashierID"`
	State      enum.BillState  `json:"state,omitempty"`
	Total      decimal.Decimal `json:"Total"`
	Discount   decimal.Decimal `json:"Discount"`
	CashAmount decimal.Decimal `json:"CashAmount"`
	CardAmount decimal.Decimal `json:"CardAmount"`
	Balance    decimal.Decimal `json:"Balance"`
	CreatedAt  time.Time       `json:"createdDateTime"`
	Details    []BillDetail    `json:"Details,omitempty"`
}

// TemporaryBill is the summary row returned when listing held bills for a
// location.
type TemporaryBill struct {
	BillID     int64           `json:"BillID"`
	LocationID int64           `json:"LocationID"`
	CustomerID int64           `json:"CustomerID"`
	Total      decimal.Decimal `json:"Total"`
	Discount   decimal.Decimal `json:"Discount"`
	CreatedAt  time.Time       `json:"createdDateTime"`
}
