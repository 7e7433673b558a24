package entity

import "github.com/shopspring/decimal"

// InventoryItem is an item as returned by the remote inventory lookups
// (barcode scan, name search). It is the candidate shape fed into the cart.
type InventoryItem struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Barcode     string          `json:"barcode"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"cost_price,omitempty"`
	LocationID  int64           `json:"location_id"`
	Quantity    int             `json:"quantity,omitempty"`
}

// ToLineItem converts an inventory record into a fresh cart line. The
// description doubles as the printed name when present, matching what the
// receipt shows.
func (it *InventoryItem) ToLineItem() LineItem {
	name := it.Title
	if it.Description != "" {
		name = it.Description
	}
	return LineItem{
		InventoryID: it.ID,
		Name:        name,
		Barcode:     it.Barcode,
		UnitPrice:   it.Price,
		Quantity:    1,
	}
}
