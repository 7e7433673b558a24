package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/puwasa/pos-terminal/internal/application/service"
	"github.com/puwasa/pos-terminal/internal/presentation/http/dto/request"
	"github.com/puwasa/pos-terminal/internal/presentation/http/dto/response"
)

// RegisterHandler handles cash register HTTP requests.
type RegisterHandler struct {
	registerService *service.RegisterService
}

// NewRegisterHandler creates a new register handler.
func NewRegisterHandler(registerService *service.RegisterService) *RegisterHandler {
	return &RegisterHandler{registerService: registerService}
}

// Ensure binds this device to its register, creating one on first contact.
func (h *RegisterHandler) Ensure(c *gin.Context) {
	var req request.EnsureRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	reg, err := h.registerService.EnsureRegister(c.Request.Context(), req.RegisterName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Register ready", reg)
}

// Status reports whether this terminal's register is open.
func (h *RegisterHandler) Status(c *gin.Context) {
	open, err := h.registerService.IsOpen(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Register status retrieved", gin.H{"open": open})
}

// Open starts a register session with an opening float.
func (h *RegisterHandler) Open(c *gin.Context) {
	var req request.OpenRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	sessionID, err := h.registerService.Open(c.Request.Context(), decimal.NewFromFloat(req.OpeningAmount))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Register opened", gin.H{"session_id": sessionID})
}

// Close ends the current register session with the counted drawer amount.
func (h *RegisterHandler) Close(c *gin.Context) {
	var req request.CloseRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.registerService.Close(c.Request.Context(), decimal.NewFromFloat(req.ClosingAmount), req.Denominations); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Register closed", nil)
}

// CashIn records cash added to the drawer outside of a sale.
func (h *RegisterHandler) CashIn(c *gin.Context) {
	h.cashMovement(c, true)
}

// CashOut records cash taken from the drawer outside of a sale.
func (h *RegisterHandler) CashOut(c *gin.Context) {
	h.cashMovement(c, false)
}

func (h *RegisterHandler) cashMovement(c *gin.Context, in bool) {
	var req request.CashMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	movementID, err := h.registerService.CashInOut(c.Request.Context(), decimal.NewFromFloat(req.Amount), in, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cash movement recorded", gin.H{"movement_id": movementID})
}
