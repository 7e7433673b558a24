package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newLine(id int64, price float64, qty int) LineItem {
	return LineItem{
		InventoryID: id,
		Name:        "Item",
		UnitPrice:   decimal.NewFromFloat(price),
		Quantity:    qty,
	}
}

func TestAddItem_DuplicateIncrementsQuantity(t *testing.T) {
	cart := NewCart()

	first := newLine(7, 100, 1)
	cart.AddItem(first)

	// Second add carries different price and name; both must be ignored.
	again := newLine(7, 999, 5)
	again.Name = "Renamed"
	cart.AddItem(again)

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Item", items[0].Name)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(100)))
}

func TestAddItem_NewLineStartsAtQuantityOne(t *testing.T) {
	cart := NewCart()
	cart.AddItem(newLine(1, 50, 0))

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveItem_AbsentIDIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(newLine(1, 50, 1))

	cart.RemoveItem(99)
	assert.Len(t, cart.Items(), 1)

	cart.RemoveItem(1)
	assert.True(t, cart.IsEmpty())
}

func TestUpdateQuantity_ClampsToMinimumOne(t *testing.T) {
	cart := NewCart()
	cart.AddItem(newLine(1, 50, 1))

	cart.UpdateQuantity(1, 0)
	assert.Equal(t, 1, cart.Items()[0].Quantity)

	cart.UpdateQuantity(1, -3)
	assert.Equal(t, 1, cart.Items()[0].Quantity)

	cart.UpdateQuantity(1, 4)
	assert.Equal(t, 4, cart.Items()[0].Quantity)
}

func TestUpdateDiscountPercent_Clamped(t *testing.T) {
	cart := NewCart()
	cart.AddItem(newLine(1, 50, 1))

	cart.UpdateDiscountPercent(1, decimal.NewFromInt(-10))
	assert.True(t, cart.Items()[0].DiscountPercent.IsZero())

	cart.UpdateDiscountPercent(1, decimal.NewFromInt(150))
	assert.True(t, cart.Items()[0].DiscountPercent.Equal(decimal.NewFromInt(100)))
}

func TestUpdateDiscountPercent_DropsFixedDiscount(t *testing.T) {
	cart := NewCart()
	fixed := decimal.NewFromInt(30)
	line := newLine(1, 100, 2)
	line.FixedDiscount = &fixed
	cart.AddItem(line)

	// Fixed amount wins while present.
	assert.True(t, cart.TotalDiscount().Equal(decimal.NewFromInt(30)))

	// Editing the percentage makes the line a percentage line again.
	cart.UpdateDiscountPercent(1, decimal.NewFromInt(10))
	items := cart.Items()
	assert.Nil(t, items[0].FixedDiscount)
	assert.True(t, cart.TotalDiscount().Equal(decimal.NewFromInt(20)))
}

func TestAggregates(t *testing.T) {
	cart := NewCart()

	// 2 x 100 with 20% off = 200 - 40
	a := newLine(1, 100, 2)
	a.DiscountPercent = decimal.NewFromInt(20)
	cart.AddItem(a)

	// 1 x 50, no discount
	cart.AddItem(newLine(2, 50, 1))

	assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(250)))
	assert.True(t, cart.TotalDiscount().Equal(decimal.NewFromInt(40)))
	assert.True(t, cart.NetTotal().Equal(decimal.NewFromInt(210)))
	assert.Equal(t, 3, cart.ItemCount())
}

func TestLineDiscount_ClampedToSubtotal(t *testing.T) {
	fixed := decimal.NewFromInt(500)
	line := newLine(1, 100, 2)
	line.FixedDiscount = &fixed

	assert.True(t, line.LineDiscount().Equal(decimal.NewFromInt(200)))
	assert.True(t, line.LineTotal().IsZero())
}

func TestLineDiscount_NegativeFixedTreatedAsZero(t *testing.T) {
	fixed := decimal.NewFromInt(-5)
	line := newLine(1, 100, 1)
	line.FixedDiscount = &fixed

	assert.True(t, line.LineDiscount().IsZero())
	assert.True(t, line.LineTotal().Equal(decimal.NewFromInt(100)))
}

func TestClear_ResetsEverything(t *testing.T) {
	cart := NewCart()
	cart.AddItem(newLine(1, 10, 1))
	cart.SetCustomer(&Customer{ID: 5, FirstName: "Ann"})
	cart.BindBill(42)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Nil(t, cart.Customer())
	assert.Zero(t, cart.CurrentBillID())
}

func TestClearItems_KeepsCustomerAndBill(t *testing.T) {
	cart := NewCart()
	cart.AddItem(newLine(1, 10, 1))
	cart.SetCustomer(&Customer{ID: 5})
	cart.BindBill(42)

	cart.ClearItems()

	assert.True(t, cart.IsEmpty())
	assert.NotNil(t, cart.Customer())
	assert.Equal(t, int64(42), cart.CurrentBillID())
}

func TestNetTotal_NeverNegative(t *testing.T) {
	cart := NewCart()
	fixed := decimal.NewFromInt(1000)
	line := newLine(1, 100, 1)
	line.FixedDiscount = &fixed
	cart.AddItem(line)

	assert.True(t, cart.NetTotal().GreaterThanOrEqual(decimal.Zero))
}
