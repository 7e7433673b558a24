package service

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
	"github.com/puwasa/pos-terminal/internal/domain/remote"
	"github.com/puwasa/pos-terminal/internal/domain/repository"
	"github.com/puwasa/pos-terminal/internal/session"
	"github.com/puwasa/pos-terminal/pkg/apperror"
)

// BillingService owns the cart and sequences the remote calls that move it
// through the bill lifecycle: create, attach items, complete, hold, resume,
// cancel. Each remote step proceeds only when the previous one succeeded,
// and nothing is retried automatically; the cashier re-triggers the action.
type BillingService struct {
	mu      sync.Mutex // cooperative exclusion: one billing operation at a time
	cart    *entity.Cart
	billing remote.BillingAPI
	printer *PrinterService
	journal repository.JournalRepository
	sess    *session.Session
	logger  *zap.Logger

	defaultLocationID int64
}

// NewBillingService creates a new billing service bound to a session.
func NewBillingService(
	billing remote.BillingAPI,
	printer *PrinterService,
	journal repository.JournalRepository,
	sess *session.Session,
	defaultLocationID int64,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		cart:              entity.NewCart(),
		billing:           billing,
		printer:           printer,
		journal:           journal,
		sess:              sess,
		defaultLocationID: defaultLocationID,
		logger:            logger,
	}
}

// --- Cart operations (local, no I/O) ---

// AddItem adds an inventory item to the cart (or bumps its quantity).
func (s *BillingService) AddItem(item entity.InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddItem(item.ToLineItem())
}

// RemoveItem removes a line from the cart.
func (s *BillingService) RemoveItem(inventoryID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(inventoryID)
}

// UpdateQuantity sets a line's quantity (minimum 1).
func (s *BillingService) UpdateQuantity(inventoryID int64, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(inventoryID, qty)
}

// UpdateDiscount sets a line's discount percentage (clamped to [0, 100]).
func (s *BillingService) UpdateDiscount(inventoryID int64, percent decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateDiscountPercent(inventoryID, percent)
}

// SetCustomer binds a customer to the current sale.
func (s *BillingService) SetCustomer(customer *entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetCustomer(customer)
}

// ClearCart resets the transaction: items, customer and bill binding.
func (s *BillingService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// CartSummary is the cart plus its derived aggregates, recomputed on every
// call.
type CartSummary struct {
	Items         []entity.LineItem `json:"items"`
	Customer      *entity.Customer  `json:"customer,omitempty"`
	CurrentBillID int64             `json:"current_bill_id,omitempty"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	TotalDiscount decimal.Decimal   `json:"total_discount"`
	NetTotal      decimal.Decimal   `json:"net_total"`
	ItemCount     int               `json:"item_count"`
}

// Cart returns a snapshot of the cart and its aggregates.
func (s *BillingService) Cart() *CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked()
}

func (s *BillingService) summaryLocked() *CartSummary {
	return &CartSummary{
		Items:         s.cart.Items(),
		Customer:      s.cart.Customer(),
		CurrentBillID: s.cart.CurrentBillID(),
		Subtotal:      s.cart.Subtotal().Round(2),
		TotalDiscount: s.cart.TotalDiscount().Round(2),
		NetTotal:      s.cart.NetTotal().Round(2),
		ItemCount:     s.cart.ItemCount(),
	}
}

// --- Bill lifecycle (remote) ---

// billDetailsLocked converts cart lines to the wire representation: the
// discount crosses this boundary as an absolute amount clamped to the line
// subtotal, rounded to two decimals, never as a percentage.
func (s *BillingService) billDetailsLocked() []entity.BillDetail {
	items := s.cart.Items()
	details := make([]entity.BillDetail, 0, len(items))
	for i := range items {
		details = append(details, entity.BillDetail{
			InventoryID: items[i].InventoryID,
			ItemName:    items[i].Name,
			UnitPrice:   items[i].UnitPrice,
			Discount:    items[i].LineDiscount().Round(2),
			Quantity:    items[i].Quantity,
		})
	}
	return details
}

func (s *BillingService) customerIDLocked() int64 {
	if c := s.cart.Customer(); c != nil {
		return c.ID
	}
	return 1 // backend's walk-in customer
}

// PayResult is the outcome of the pay-and-print sequence.
type PayResult struct {
	BillID  int64               `json:"bill_id"`
	Balance decimal.Decimal     `json:"balance"`
	Message string              `json:"message,omitempty"`
	Print   *entity.PrintResult `json:"print,omitempty"`
}

// PayAndPrint runs the full "Pay Now" sequence: create the bill, attach the
// cart, complete payment, then print the receipt. The cart is reset only
// when the receipt made it to the printer; a failed print leaves the sale
// completed remotely and the cart intact so the cashier can re-print.
func (s *BillingService) PayAndPrint(ctx context.Context, cash, card decimal.Decimal) (*PayResult, error) {
	if !s.mu.TryLock() {
		return nil, apperror.ErrBusy
	}
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return nil, apperror.ErrEmptyCart
	}

	locationID := s.sess.LocationID(s.defaultLocationID)
	cashierID := s.sess.CashierID()
	customerID := s.customerIDLocked()

	billID, err := s.billing.CreateBill(ctx, locationID, customerID, cashierID)
	if err != nil {
		return nil, err
	}
	s.cart.BindBill(billID)
	s.logger.Info("bill created", zap.Int64("bill_id", billID))

	if err := s.billing.AddBillDetails(ctx, billID, s.billDetailsLocked()); err != nil {
		return nil, err
	}

	total := s.cart.NetTotal().Round(2)
	if cash.IsZero() && card.IsZero() {
		cash = total
	}

	balance, message, err := s.billing.CompleteBill(ctx, billID, cash, card)
	if err != nil {
		return nil, err
	}
	s.logger.Info("bill completed",
		zap.Int64("bill_id", billID),
		zap.String("balance", balance.String()),
	)

	s.journalSaleLocked(ctx, billID, locationID, cashierID, cash, card, balance)

	job := s.printJobLocked(billID, cash, card, balance)
	printRes, err := s.printer.Print(ctx, job)
	if err != nil {
		return &PayResult{BillID: billID, Balance: balance, Message: message}, err
	}

	if printRes.Success {
		s.cart.Clear()
	}

	return &PayResult{
		BillID:  billID,
		Balance: balance,
		Message: message,
		Print:   printRes,
	}, nil
}

// HoldAsTemporary parks the current cart as a held bill: create plus attach,
// no completion. The cart stays as it is so the cashier can keep selling or
// clear it explicitly.
func (s *BillingService) HoldAsTemporary(ctx context.Context) (int64, error) {
	if !s.mu.TryLock() {
		return 0, apperror.ErrBusy
	}
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return 0, apperror.ErrEmptyCart
	}

	billID, err := s.billing.CreateBill(ctx,
		s.sess.LocationID(s.defaultLocationID),
		s.customerIDLocked(),
		s.sess.CashierID(),
	)
	if err != nil {
		return 0, err
	}
	s.cart.BindBill(billID)

	if err := s.billing.AddBillDetails(ctx, billID, s.billDetailsLocked()); err != nil {
		return 0, err
	}

	s.logger.Info("bill held", zap.Int64("bill_id", billID))
	return billID, nil
}

// ResumeTemporary discards the in-progress cart and repopulates it from a
// held bill. The remote record's unit price and absolute discount amount are
// authoritative: each line's discount becomes a fixed amount clamped to the
// line subtotal, not a reconstructed percentage.
func (s *BillingService) ResumeTemporary(ctx context.Context, billID int64) (*CartSummary, error) {
	if !s.mu.TryLock() {
		return nil, apperror.ErrBusy
	}
	defer s.mu.Unlock()

	bill, err := s.billing.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}

	s.cart.Clear()
	for _, d := range bill.Details {
		name := d.ItemName
		if name == "" {
			name = "Item " + strconv.FormatInt(d.InventoryID, 10)
		}
		fixed := d.Discount
		s.cart.AddItem(entity.LineItem{
			InventoryID:   d.InventoryID,
			Name:          name,
			UnitPrice:     d.UnitPrice,
			Quantity:      d.Quantity,
			FixedDiscount: &fixed,
		})
	}
	s.cart.BindBill(bill.BillID)

	s.logger.Info("bill resumed",
		zap.Int64("bill_id", bill.BillID),
		zap.Int("items", len(bill.Details)),
	)
	return s.summaryLocked(), nil
}

// Cancel deletes a held bill remotely. When it is the bill bound to the
// current cart the cart is cleared as well.
func (s *BillingService) Cancel(ctx context.Context, billID int64) error {
	if !s.mu.TryLock() {
		return apperror.ErrBusy
	}
	defer s.mu.Unlock()

	if err := s.billing.CancelBill(ctx, billID); err != nil {
		return err
	}
	if s.cart.CurrentBillID() == billID {
		s.cart.Clear()
	}
	s.logger.Info("bill cancelled", zap.Int64("bill_id", billID))
	return nil
}

// ListTemporary returns the held bills for the session's location, newest
// first, ties broken by descending bill id.
func (s *BillingService) ListTemporary(ctx context.Context) ([]entity.TemporaryBill, error) {
	bills, err := s.billing.GetTemporaryBills(ctx, s.sess.LocationID(s.defaultLocationID))
	if err != nil {
		return nil, err
	}

	sort.SliceStable(bills, func(i, j int) bool {
		if !bills[i].CreatedAt.Equal(bills[j].CreatedAt) {
			return bills[i].CreatedAt.After(bills[j].CreatedAt)
		}
		return bills[i].BillID > bills[j].BillID
	})
	return bills, nil
}

// SaveForLater writes the current cart to the bill artifact without
// rendering (the write-only flow behind the Save button).
func (s *BillingService) SaveForLater(ctx context.Context) (*entity.PrintResult, error) {
	s.mu.Lock()
	job := s.printJobLocked(s.cart.CurrentBillID(), decimal.Zero, decimal.Zero, decimal.Zero)
	s.mu.Unlock()

	return s.printer.Save(ctx, job)
}

// printJobLocked builds the immutable receipt snapshot from the current
// cart and payment outcome.
func (s *BillingService) printJobLocked(billID int64, cash, card, balance decimal.Decimal) *entity.PrintJob {
	job := &entity.PrintJob{
		CashierID:  strconv.FormatInt(s.sess.CashierID(), 10),
		Subtotal:   s.cart.Subtotal().Round(2).InexactFloat64(),
		Total:      s.cart.NetTotal().Round(2).InexactFloat64(),
		Discount:   s.cart.TotalDiscount().Round(2).InexactFloat64(),
		CashAmount: cash.Round(2).InexactFloat64(),
		CardAmount: card.Round(2).InexactFloat64(),
		Balance:    balance.Round(2).InexactFloat64(),
	}
	if billID != 0 {
		job.BillID = strconv.FormatInt(billID, 10)
	}
	if u := s.sess.User(); u != nil {
		job.CashierName = u.FirstName + " " + u.LastName
	}
	if c := s.cart.Customer(); c != nil {
		job.CustomerFName = c.FirstName
		job.CustomerLName = c.LastName
		job.CustomerName = c.FullName()
	}

	for _, item := range s.cart.Items() {
		job.Details = append(job.Details, entity.PrintJobItem{
			ItemName:  item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Round(2).InexactFloat64(),
			Discount:  item.LineDiscount().Round(2).InexactFloat64(),
		})
	}
	return job
}

func (s *BillingService) journalSaleLocked(ctx context.Context, billID, locationID, cashierID int64, cash, card, balance decimal.Decimal) {
	if s.journal == nil {
		return
	}
	err := s.journal.RecordCompletedSale(ctx, &entity.CompletedSale{
		BillID:     billID,
		CashierID:  cashierID,
		LocationID: locationID,
		Total:      s.cart.NetTotal().Round(2).InexactFloat64(),
		Discount:   s.cart.TotalDiscount().Round(2).InexactFloat64(),
		CashAmount: cash.Round(2).InexactFloat64(),
		CardAmount: card.Round(2).InexactFloat64(),
		Balance:    balance.Round(2).InexactFloat64(),
		Items:      s.cart.ItemCount(),
	})
	if err != nil {
		s.logger.Warn("failed to journal completed sale", zap.Error(err))
	}
}
