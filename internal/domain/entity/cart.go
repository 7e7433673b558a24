package entity

import "github.com/shopspring/decimal"

// Cart is the in-memory working set of line items for the current sale.
// It keeps insertion order (the billing screen renders rows in the order
// they were scanned) and recomputes every aggregate on demand. It performs
// no I/O and knows nothing about the remote backend.
type Cart struct {
	items         []LineItem
	customer      *Customer
	currentBillID int64
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem adds a candidate line to the cart. If the inventory id is already
// present the existing line's quantity is incremented by one and every other
// field of the candidate is ignored. A new line starts with quantity 1 and no
// discount unless the candidate carries its own (used when restoring a bill).
func (c *Cart) AddItem(candidate LineItem) {
	for i := range c.items {
		if c.items[i].InventoryID == candidate.InventoryID {
			c.items[i].Quantity++
			return
		}
	}

	if candidate.Quantity < 1 {
		candidate.Quantity = 1
	}
	candidate.DiscountPercent = ClampPercent(candidate.DiscountPercent)
	c.items = append(c.items, candidate)
}

// RemoveItem deletes the line with the given inventory id. Removing an
// absent id is a no-op, not an error.
func (c *Cart) RemoveItem(inventoryID int64) {
	for i := range c.items {
		if c.items[i].InventoryID == inventoryID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of a line, clamped to a minimum of 1.
// Unknown ids are ignored.
func (c *Cart) UpdateQuantity(inventoryID int64, qty int) {
	for i := range c.items {
		if c.items[i].InventoryID == inventoryID {
			if qty < 1 {
				qty = 1
			}
			c.items[i].Quantity = qty
			return
		}
	}
}

// UpdateDiscountPercent sets the discount percentage of a line, clamped to
// [0, 100]. Any fixed discount carried over from a resumed bill is dropped:
// once the cashier edits the discount it is a percentage again.
func (c *Cart) UpdateDiscountPercent(inventoryID int64, percent decimal.Decimal) {
	for i := range c.items {
		if c.items[i].InventoryID == inventoryID {
			c.items[i].DiscountPercent = ClampPercent(percent)
			c.items[i].FixedDiscount = nil
			return
		}
	}
}

// Clear empties the cart and unsets the customer and the bound bill id.
func (c *Cart) Clear() {
	c.items = nil
	c.customer = nil
	c.currentBillID = 0
}

// ClearItems drops only the line items, keeping customer and bill binding.
// Used when a temporary bill is loaded over the current screen.
func (c *Cart) ClearItems() {
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Customer returns the customer bound to the sale, or nil.
func (c *Cart) Customer() *Customer {
	return c.customer
}

// SetCustomer binds a customer to the sale.
func (c *Cart) SetCustomer(customer *Customer) {
	c.customer = customer
}

// CurrentBillID returns the remote bill id bound to this cart, or 0.
func (c *Cart) CurrentBillID() int64 {
	return c.currentBillID
}

// BindBill records the remote bill id this cart belongs to.
func (c *Cart) BindBill(billID int64) {
	c.currentBillID = billID
}

// Subtotal returns the sum of line subtotals before any discount.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for i := range c.items {
		sum = sum.Add(c.items[i].LineSubtotal())
	}
	return sum
}

// TotalDiscount returns the sum of per-line discount amounts.
func (c *Cart) TotalDiscount() decimal.Decimal {
	sum := decimal.Zero
	for i := range c.items {
		sum = sum.Add(c.items[i].LineDiscount())
	}
	return sum
}

// NetTotal returns subtotal minus total discount, never negative.
func (c *Cart) NetTotal() decimal.Decimal {
	net := c.Subtotal().Sub(c.TotalDiscount())
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.items {
		count += c.items[i].Quantity
	}
	return count
}
