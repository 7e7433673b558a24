package remote

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
)

// BillingClient implements remote.BillingAPI over the backend's /billing
// endpoints.
type BillingClient struct {
	c *Client
}

// NewBillingClient creates a billing client on the shared backend client.
func NewBillingClient(c *Client) *BillingClient {
	return &BillingClient{c: c}
}

type createBillPayload struct {
	LocationID int64 `json:"LocationID"`
	CustomerID int64 `json:"CustomerID"`
	CashierID  int64 `json:"CashierID"`
}

type billItemPayload struct {
	InventoryID int64   `json:"InventoryID"`
	Discount    float64 `json:"Discount"`
	Quantity    int     `json:"QTY"`
}

type billDetailsPayload struct {
	BillID int64             `json:"BillID"`
	Items  []billItemPayload `json:"Items"`
}

type completeBillPayload struct {
	CashAmount float64 `json:"CashAmount"`
	CardAmount float64 `json:"CardAmount"`
}

// CreateBill opens a new bill and returns the remote id.
func (bc *BillingClient) CreateBill(ctx context.Context, locationID, customerID, cashierID int64) (int64, error) {
	env, err := bc.c.post(ctx, "/billing/billing", createBillPayload{
		LocationID: locationID,
		CustomerID: customerID,
		CashierID:  cashierID,
	}, true)
	if err != nil {
		return 0, err
	}

	var billID int64
	if err := decodeData(env, &billID); err != nil {
		return 0, err
	}
	return billID, nil
}

// AddBillDetails attaches the full item list in one call. Discounts arrive
// here already as absolute amounts; they are rounded to two decimals on the
// wire.
func (bc *BillingClient) AddBillDetails(ctx context.Context, billID int64, items []entity.BillDetail) error {
	payload := billDetailsPayload{
		BillID: billID,
		Items:  make([]billItemPayload, 0, len(items)),
	}
	for _, it := range items {
		payload.Items = append(payload.Items, billItemPayload{
			InventoryID: it.InventoryID,
			Discount:    it.Discount.Round(2).InexactFloat64(),
			Quantity:    it.Quantity,
		})
	}

	_, err := bc.c.post(ctx, "/billing/details", payload, true)
	return err
}

// GetBill fetches a bill with its details.
func (bc *BillingClient) GetBill(ctx context.Context, billID int64) (*entity.Bill, error) {
	env, err := bc.c.get(ctx, fmt.Sprintf("/billing/billing/%d", billID), true)
	if err != nil {
		return nil, err
	}

	var bill entity.Bill
	if err := decodeData(env, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// CompleteBill finalises payment. The returned balance may be change due or
// an outstanding amount; the sign is not interpreted here.
func (bc *BillingClient) CompleteBill(ctx context.Context, billID int64, cash, card decimal.Decimal) (decimal.Decimal, string, error) {
	env, err := bc.c.post(ctx, fmt.Sprintf("/billing/billing/complete/%d", billID), completeBillPayload{
		CashAmount: cash.Round(2).InexactFloat64(),
		CardAmount: card.Round(2).InexactFloat64(),
	}, true)
	if err != nil {
		return decimal.Zero, "", err
	}

	var balance decimal.Decimal
	if err := decodeData(env, &balance); err != nil {
		return decimal.Zero, "", err
	}
	return balance, env.Message, nil
}

// CancelBill deletes a not-yet-completed bill.
func (bc *BillingClient) CancelBill(ctx context.Context, billID int64) error {
	_, err := bc.c.delete(ctx, fmt.Sprintf("/billing/billing/cancel/%d", billID), true)
	return err
}

// GetTemporaryBills lists held bills for a location, as stored remotely.
func (bc *BillingClient) GetTemporaryBills(ctx context.Context, locationID int64) ([]entity.TemporaryBill, error) {
	env, err := bc.c.get(ctx, fmt.Sprintf("/billing/tempbills/%d", locationID), true)
	if err != nil {
		return nil, err
	}

	var bills []entity.TemporaryBill
	if err := decodeData(env, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}
