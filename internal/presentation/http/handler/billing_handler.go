package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/puwasa/pos-terminal/internal/application/service"
	"github.com/puwasa/pos-terminal/internal/presentation/http/dto/request"
	"github.com/puwasa/pos-terminal/internal/presentation/http/dto/response"
)

// BillingHandler handles bill lifecycle HTTP requests.
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler.
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Pay settles the current cart: the bill is created remotely, its lines
// attached, payment completed and the receipt printed.
func (h *BillingHandler) Pay(c *gin.Context) {
	var req request.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.billingService.PayAndPrint(
		c.Request.Context(),
		decimal.NewFromFloat(req.CashAmount),
		decimal.NewFromFloat(req.CardAmount),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale completed", result)
}

// Hold parks the current cart as a temporary bill on the backend. The cart
// stays as-is so the cashier can keep working with it.
func (h *BillingHandler) Hold(c *gin.Context) {
	billID, err := h.billingService.HoldAsTemporary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill held", gin.H{"bill_id": billID})
}

// Resume replaces the cart with the lines of a previously held bill.
func (h *BillingHandler) Resume(c *gin.Context) {
	billID, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	summary, err := h.billingService.ResumeTemporary(c.Request.Context(), billID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill resumed", summary)
}

// Cancel voids a bill on the backend. If the cancelled bill is the one the
// cart is bound to, the cart is cleared as well.
func (h *BillingHandler) Cancel(c *gin.Context) {
	billID, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.billingService.Cancel(c.Request.Context(), billID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill cancelled", nil)
}

// ListTemporary returns the held bills for this location, newest first.
func (h *BillingHandler) ListTemporary(c *gin.Context) {
	bills, err := h.billingService.ListTemporary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Temporary bills retrieved", bills)
}

// Save writes the current cart to the receipt artifact without printing,
// so an external watcher can pick it up.
func (h *BillingHandler) Save(c *gin.Context) {
	result, err := h.billingService.SaveForLater(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill saved", result)
}
