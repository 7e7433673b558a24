package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/puwasa/pos-terminal/internal/application/service"
	"github.com/puwasa/pos-terminal/internal/presentation/http/dto/response"
)

// InventoryHandler handles inventory lookup HTTP requests.
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Scan looks up items by barcode.
func (h *InventoryHandler) Scan(c *gin.Context) {
	items, err := h.inventoryService.ScanBarcode(c.Request.Context(), c.Query("barcode"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved", items)
}

// Stock returns the on-hand quantity for a barcode.
func (h *InventoryHandler) Stock(c *gin.Context) {
	qty, err := h.inventoryService.StockOnHand(c.Request.Context(), c.Query("barcode"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock retrieved", gin.H{"quantity": qty})
}

// Search looks up items by name.
func (h *InventoryHandler) Search(c *gin.Context) {
	items, err := h.inventoryService.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved", items)
}

// All returns the full item list for this location.
func (h *InventoryHandler) All(c *gin.Context) {
	items, err := h.inventoryService.All(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved", items)
}
