package request

// AddItemRequest adds a scanned or searched inventory item to the cart.
type AddItemRequest struct {
	InventoryID     int64   `json:"inventory_id" binding:"required"`
	Name            string  `json:"name"`
	Barcode         string  `json:"barcode"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
}

// UpdateQuantityRequest changes the quantity of a cart line. Out-of-range
// values are not a binding error; the cart clamps them to a minimum of 1.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateDiscountRequest changes the percentage discount of a cart line.
type UpdateDiscountRequest struct {
	DiscountPercent float64 `json:"discount_percent"`
}

// SetCustomerRequest attaches a customer to the cart.
type SetCustomerRequest struct {
	ID        int64  `json:"id" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// PayRequest settles the current cart. Amounts are in the store currency.
// When both are zero the full total is taken as cash.
type PayRequest struct {
	CashAmount float64 `json:"cash_amount"`
	CardAmount float64 `json:"card_amount"`
}
