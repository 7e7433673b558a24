package entity

import "time"

// PrintAttempt is the local journal row recorded for every print or
// write-only invocation, kept for terminal-side troubleshooting. It lives in
// the embedded journal database, never on the remote backend.
type PrintAttempt struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	BillID    string    `gorm:"size:64;index" json:"bill_id"`
	Mode      string    `gorm:"size:16" json:"mode"` // "render" or "write-only"
	Success   bool      `json:"success"`
	Printed   bool      `json:"printed"`
	Message   string    `gorm:"type:text" json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CompletedSale is the local journal row summarising a completed bill.
type CompletedSale struct {
	ID         uint      `gorm:"primary_key" json:"id"`
	BillID     int64     `gorm:"index" json:"bill_id"`
	CashierID  int64     `json:"cashier_id"`
	LocationID int64     `json:"location_id"`
	Total      float64   `json:"total"`
	Discount   float64   `json:"discount"`
	CashAmount float64   `json:"cash_amount"`
	CardAmount float64   `json:"card_amount"`
	Balance    float64   `json:"balance"`
	Items      int       `json:"items"`
	CreatedAt  time.Time `json:"created_at"`
}
