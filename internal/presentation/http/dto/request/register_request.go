package request

// EnsureRegisterRequest enrols this device as a named register. The name
// is only needed on first contact; an already-registered device ignores it.
type EnsureRegisterRequest struct {
	RegisterName string `json:"register_name"`
}

// OpenRegisterRequest opens the cash register with a starting float.
type OpenRegisterRequest struct {
	OpeningAmount float64 `json:"opening_amount"`
}

// CloseRegisterRequest closes the register. Denominations maps a note or
// coin label (e.g. "5000") to the counted number of pieces.
type CloseRegisterRequest struct {
	ClosingAmount float64        `json:"closing_amount"`
	Denominations map[string]int `json:"denominations"`
}

// CashMovementRequest records cash taken out of or put into the drawer
// outside of a sale.
type CashMovementRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Reason string  `json:"reason" binding:"required"`
}
