package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/puwasa/pos-terminal/internal/application/service"
	"github.com/puwasa/pos-terminal/internal/presentation/http/dto/response"
)

// PrintHandler handles print-related HTTP requests.
type PrintHandler struct {
	printerService *service.PrinterService
}

// NewPrintHandler creates a new print handler.
func NewPrintHandler(printerService *service.PrinterService) *PrintHandler {
	return &PrintHandler{printerService: printerService}
}

// Reprint re-renders the last saved receipt artifact without touching it.
func (h *PrintHandler) Reprint(c *gin.Context) {
	result, err := h.printerService.Reprint(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reprint finished", result)
}
