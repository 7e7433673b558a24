package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/puwasa/pos-terminal/internal/domain/repository"
	"github.com/puwasa/pos-terminal/internal/presentation/http/dto/response"
)

// JournalHandler exposes the terminal's local activity journal.
type JournalHandler struct {
	journal repository.JournalRepository
}

// NewJournalHandler creates a new journal handler.
func NewJournalHandler(journal repository.JournalRepository) *JournalHandler {
	return &JournalHandler{journal: journal}
}

// PrintAttempts lists recent print attempts, newest first.
func (h *JournalHandler) PrintAttempts(c *gin.Context) {
	attempts, err := h.journal.ListPrintAttempts(c.Request.Context(), limitQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Print attempts retrieved", attempts)
}

// CompletedSales lists recent completed sales, newest first.
func (h *JournalHandler) CompletedSales(c *gin.Context) {
	sales, err := h.journal.ListCompletedSales(c.Request.Context(), limitQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Completed sales retrieved", sales)
}

func limitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
