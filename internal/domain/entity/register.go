package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Register is the cash register bound to this terminal's device id.
type Register struct {
	RegisterID   int64  `json:"RegisterID"`
	LocationID   int64  `json:"LocationID"`
	RegisterName string `json:"RegisterName"`
	DeviceID     string `json:"DeviceID"`
}

// RegisterSession is one open/close cycle of a register.
type RegisterSession struct {
	SessionID     int64           `json:"SessionID"`
	RegisterID    int64           `json:"RegisterID"`
	OpeningAmount decimal.Decimal `json:"OpeningAmount"`
	ClosingAmount decimal.Decimal `json:"ClosingAmount"`
	OpenedAt      time.Time       `json:"openedDateTime"`
	ClosedAt      *time.Time      `json:"closedDateTime,omitempty"`
}

// CashMovement records money added to or taken from the drawer outside a
// sale. In is true for cash in, false for cash out.
type CashMovement struct {
	TransactionID int64           `json:"TransactionID"`
	Amount        decimal.Decimal `json:"Amount"`
	In            bool            `json:"Type"`
	Reason        string          `json:"Reason"`
}

// DenominationCounts maps a note/coin value (as its string label, e.g.
// "5000") to how many of it were counted at register close.
type DenominationCounts map[string]int
