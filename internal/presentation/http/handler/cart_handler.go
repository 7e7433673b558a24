package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/puwasa/pos-terminal/internal/application/service"
	"github.com/puwasa/pos-terminal/internal/domain/entity"
	"github.com/puwasa/pos-terminal/internal/presentation/http/dto/request"
	"github.com/puwasa/pos-terminal/internal/presentation/http/dto/response"
)

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	billingService *service.BillingService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(billingService *service.BillingService) *CartHandler {
	return &CartHandler{billingService: billingService}
}

// GetCart returns the current cart with its recomputed aggregates.
func (h *CartHandler) GetCart(c *gin.Context) {
	response.OK(c, "Cart retrieved", h.billingService.Cart())
}

// AddItem adds an inventory item to the cart. Adding an item that is
// already in the cart bumps its quantity instead of creating a second line.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	h.billingService.AddItem(entity.InventoryItem{
		ID:          req.InventoryID,
		Description: req.Name,
		Barcode:     req.Barcode,
		Price:       decimal.NewFromFloat(req.UnitPrice),
	})
	if req.DiscountPercent != 0 {
		h.billingService.UpdateDiscount(req.InventoryID, decimal.NewFromFloat(req.DiscountPercent))
	}

	response.OK(c, "Item added to cart", h.billingService.Cart())
}

// RemoveItem removes a cart line by inventory ID.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	h.billingService.RemoveItem(id)
	response.OK(c, "Item removed from cart", h.billingService.Cart())
}

// UpdateQuantity changes the quantity of a cart line.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	h.billingService.UpdateQuantity(id, req.Quantity)
	response.OK(c, "Quantity updated", h.billingService.Cart())
}

// UpdateDiscount changes the percentage discount of a cart line.
func (h *CartHandler) UpdateDiscount(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	h.billingService.UpdateDiscount(id, decimal.NewFromFloat(req.DiscountPercent))
	response.OK(c, "Discount updated", h.billingService.Cart())
}

// SetCustomer attaches a customer to the cart.
func (h *CartHandler) SetCustomer(c *gin.Context) {
	var req request.SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	h.billingService.SetCustomer(&entity.Customer{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	response.OK(c, "Customer attached", h.billingService.Cart())
}

// ClearCustomer detaches the customer from the cart.
func (h *CartHandler) ClearCustomer(c *gin.Context) {
	h.billingService.SetCustomer(nil)
	response.OK(c, "Customer removed", h.billingService.Cart())
}

// Clear empties the cart and detaches the customer.
func (h *CartHandler) Clear(c *gin.Context) {
	h.billingService.ClearCart()
	response.OK(c, "Cart cleared", h.billingService.Cart())
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
