package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
	"github.com/puwasa/pos-terminal/internal/events"
	"github.com/puwasa/pos-terminal/internal/session"
	"github.com/puwasa/pos-terminal/pkg/apperror"
	"github.com/puwasa/pos-terminal/pkg/printhelper"
)

type mockBillingAPI struct {
	mock.Mock
}

func (m *mockBillingAPI) CreateBill(ctx context.Context, locationID, customerID, cashierID int64) (int64, error) {
	args := m.Called(ctx, locationID, customerID, cashierID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBillingAPI) AddBillDetails(ctx context.Context, billID int64, items []entity.BillDetail) error {
	args := m.Called(ctx, billID, items)
	return args.Error(0)
}

func (m *mockBillingAPI) GetBill(ctx context.Context, billID int64) (*entity.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bill), args.Error(1)
}

func (m *mockBillingAPI) CompleteBill(ctx context.Context, billID int64, cash, card decimal.Decimal) (decimal.Decimal, string, error) {
	args := m.Called(ctx, billID, cash, card)
	return args.Get(0).(decimal.Decimal), args.String(1), args.Error(2)
}

func (m *mockBillingAPI) CancelBill(ctx context.Context, billID int64) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

func (m *mockBillingAPI) GetTemporaryBills(ctx context.Context, locationID int64) ([]entity.TemporaryBill, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TemporaryBill), args.Error(1)
}

func newBillingService(api *mockBillingAPI, t *testing.T) *BillingService {
	printer := NewPrinterService(printingConfig(t.TempDir()), printhelper.NewNullRunner(), events.NewHub(), nil, zap.NewNop())
	return NewBillingService(api, printer, nil, session.New("dev-1"), 1, zap.NewNop())
}

func addItem(svc *BillingService, id int64, price float64, qty int) {
	svc.AddItem(entity.InventoryItem{ID: id, Title: "Item", Price: decimal.NewFromFloat(price)})
	if qty > 1 {
		svc.UpdateQuantity(id, qty)
	}
}

func TestPayAndPrint_EmptyCart(t *testing.T) {
	api := new(mockBillingAPI)
	svc := newBillingService(api, t)

	_, err := svc.PayAndPrint(context.Background(), decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
	api.AssertNotCalled(t, "CreateBill", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPayAndPrint_FullSequence(t *testing.T) {
	api := new(mockBillingAPI)
	svc := newBillingService(api, t)

	addItem(svc, 10, 100, 2)
	svc.UpdateDiscount(10, decimal.NewFromInt(10))

	api.On("CreateBill", mock.Anything, int64(1), int64(1), int64(1)).Return(int64(77), nil)
	api.On("AddBillDetails", mock.Anything, int64(77), mock.MatchedBy(func(items []entity.BillDetail) bool {
		// 2 x 100 at 10% crosses the wire as an absolute 20.00.
		return len(items) == 1 &&
			items[0].InventoryID == 10 &&
			items[0].Quantity == 2 &&
			items[0].Discount.Equal(decimal.NewFromInt(20))
	})).Return(nil)
	// Both amounts zero: full total is taken as cash.
	api.On("CompleteBill", mock.Anything, int64(77),
		mock.MatchedBy(func(cash decimal.Decimal) bool { return cash.Equal(decimal.NewFromInt(180)) }),
		mock.MatchedBy(func(card decimal.Decimal) bool { return card.IsZero() }),
	).Return(decimal.Zero, "Bill completed", nil)

	result, err := svc.PayAndPrint(context.Background(), decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, int64(77), result.BillID)
	assert.Equal(t, "Bill completed", result.Message)
	require.NotNil(t, result.Print)
	assert.True(t, result.Print.Success)

	// The write succeeded, so the cart is reset for the next sale.
	assert.Empty(t, svc.Cart().Items)
	api.AssertExpectations(t)
}

func TestPayAndPrint_CreateFailureKeepsCart(t *testing.T) {
	api := new(mockBillingAPI)
	svc := newBillingService(api, t)
	addItem(svc, 10, 50, 1)

	api.On("CreateBill", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), apperror.NewRemoteError("bill not created"))

	_, err := svc.PayAndPrint(context.Background(), decimal.Zero, decimal.Zero)
	require.Error(t, err)
	assert.Equal(t, "bill not created", apperror.GetAppError(err).Message)
	assert.Len(t, svc.Cart().Items, 1)
}

func TestHoldAndResume_RoundTrip(t *testing.T) {
	api := new(mockBillingAPI)
	svc := newBillingService(api, t)

	addItem(svc, 10, 100, 2)
	svc.UpdateDiscount(10, decimal.NewFromInt(10))

	api.On("CreateBill", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(int64(5), nil)
	api.On("AddBillDetails", mock.Anything, int64(5), mock.Anything).Return(nil)

	billID, err := svc.HoldAsTemporary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), billID)

	// Holding does not clear the cart.
	assert.Len(t, svc.Cart().Items, 1)
	svc.ClearCart()

	api.On("GetBill", mock.Anything, int64(5)).Return(&entity.Bill{
		BillID: 5,
		Details: []entity.BillDetail{{
			InventoryID: 10,
			ItemName:    "Item",
			UnitPrice:   decimal.NewFromInt(100),
			Discount:    decimal.NewFromInt(20),
			Quantity:    2,
		}},
	}, nil)

	summary, err := svc.ResumeTemporary(context.Background(), 5)
	require.NoError(t, err)

	// The restored line carries the absolute amount, not a percentage.
	require.Len(t, summary.Items, 1)
	require.NotNil(t, summary.Items[0].FixedDiscount)
	assert.True(t, summary.Items[0].FixedDiscount.Equal(decimal.NewFromInt(20)))
	assert.True(t, summary.TotalDiscount.Equal(decimal.NewFromInt(20)))
	assert.True(t, summary.NetTotal.Equal(decimal.NewFromInt(180)))
	assert.Equal(t, int64(5), summary.CurrentBillID)
}

func TestResumeTemporary_ReplacesCart(t *testing.T) {
	api := new(mockBillingAPI)
	svc := newBillingService(api, t)
	addItem(svc, 99, 10, 3)

	api.On("GetBill", mock.Anything, int64(7)).Return(&entity.Bill{
		BillID: 7,
		Details: []entity.BillDetail{{
			InventoryID: 1,
			UnitPrice:   decimal.NewFromInt(25),
			Quantity:    1,
		}},
	}, nil)

	summary, err := svc.ResumeTemporary(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, summary.Items, 1)
	assert.Equal(t, int64(1), summary.Items[0].InventoryID)
	// A detail without a name falls back to a generated one.
	assert.Equal(t, "Item 1", summary.Items[0].Name)
}

func TestCancel_ClearsCartOnlyWhenBound(t *testing.T) {
	api := new(mockBillingAPI)
	svc := newBillingService(api, t)
	addItem(svc, 10, 50, 1)

	api.On("CancelBill", mock.Anything, int64(123)).Return(nil)

	// Cart is not bound to bill 123, so it survives.
	require.NoError(t, svc.Cancel(context.Background(), 123))
	assert.Len(t, svc.Cart().Items, 1)

	api.On("CreateBill", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(int64(55), nil)
	api.On("AddBillDetails", mock.Anything, int64(55), mock.Anything).Return(nil)
	_, err := svc.HoldAsTemporary(context.Background())
	require.NoError(t, err)

	api.On("CancelBill", mock.Anything, int64(55)).Return(nil)
	require.NoError(t, svc.Cancel(context.Background(), 55))
	assert.Empty(t, svc.Cart().Items)
}

func TestListTemporary_SortedNewestFirst(t *testing.T) {
	api := new(mockBillingAPI)
	svc := newBillingService(api, t)

	now := time.Now()
	api.On("GetTemporaryBills", mock.Anything, int64(1)).Return([]entity.TemporaryBill{
		{BillID: 1, CreatedAt: now.Add(-2 * time.Hour)},
		{BillID: 3, CreatedAt: now},
		{BillID: 2, CreatedAt: now},
	}, nil)

	bills, err := svc.ListTemporary(context.Background())
	require.NoError(t, err)

	require.Len(t, bills, 3)
	assert.Equal(t, int64(3), bills[0].BillID)
	assert.Equal(t, int64(2), bills[1].BillID)
	assert.Equal(t, int64(1), bills[2].BillID)
}

func TestCartSummary_Aggregates(t *testing.T) {
	api := new(mockBillingAPI)
	svc := newBillingService(api, t)

	addItem(svc, 1, 100, 2)
	svc.UpdateDiscount(1, decimal.NewFromInt(20))
	addItem(svc, 2, 50, 1)

	summary := svc.Cart()
	assert.True(t, summary.Subtotal.Equal(decimal.NewFromInt(250)))
	assert.True(t, summary.TotalDiscount.Equal(decimal.NewFromInt(40)))
	assert.True(t, summary.NetTotal.Equal(decimal.NewFromInt(210)))
	assert.Equal(t, 3, summary.ItemCount)
}
