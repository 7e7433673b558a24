package entity

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LineItem represents one inventory entry in a cart, with its quantity and
// discount. The discount is normally a percentage (what the cashier edits),
// but a line restored from a held bill carries a fixed currency amount
// instead, because the remote side stores money, not percentages.
type LineItem struct {
	InventoryID     int64           `json:"inventory_id"`
	Name            string          `json:"name"`
	Barcode         string          `json:"barcode,omitempty"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        int             `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`

	// FixedDiscount, when non-nil, overrides DiscountPercent with an absolute
	// currency amount. Set only when resuming a temporary bill; cleared again
	// by UpdateDiscountPercent.
	FixedDiscount *decimal.Decimal `json:"fixed_discount,omitempty"`
}

// LineSubtotal returns unit price times quantity.
func (li *LineItem) LineSubtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// LineDiscount returns the discount for this line as a currency amount,
// clamped to the line subtotal.
func (li *LineItem) LineDiscount() decimal.Decimal {
	subtotal := li.LineSubtotal()

	var amount decimal.Decimal
	if li.FixedDiscount != nil {
		amount = *li.FixedDiscount
	} else {
		amount = subtotal.Mul(li.DiscountPercent).Div(hundred)
	}

	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(subtotal) {
		return subtotal
	}
	return amount
}

// LineTotal returns the line subtotal after discount.
func (li *LineItem) LineTotal() decimal.Decimal {
	return li.LineSubtotal().Sub(li.LineDiscount())
}

// ClampPercent coerces a discount percentage into [0, 100].
func ClampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
