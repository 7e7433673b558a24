package repository

import (
	"context"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
)

// JournalRepository defines the interface for the terminal's local activity
// journal (print attempts and completed-sale summaries).
type JournalRepository interface {
	RecordPrintAttempt(ctx context.Context, attempt *entity.PrintAttempt) error
	RecordCompletedSale(ctx context.Context, sale *entity.CompletedSale) error
	ListPrintAttempts(ctx context.Context, limit int) ([]entity.PrintAttempt, error)
	ListCompletedSales(ctx context.Context, limit int) ([]entity.CompletedSale, error)
}
