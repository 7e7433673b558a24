package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
	domainRepo "github.com/puwasa/pos-terminal/internal/domain/repository"
)

type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *gorm.DB) domainRepo.JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) RecordPrintAttempt(ctx context.Context, attempt *entity.PrintAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *journalRepository) RecordCompletedSale(ctx context.Context, sale *entity.CompletedSale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *journalRepository) ListPrintAttempts(ctx context.Context, limit int) ([]entity.PrintAttempt, error) {
	if limit <= 0 {
		limit = 50
	}
	var attempts []entity.PrintAttempt
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

func (r *journalRepository) ListCompletedSales(ctx context.Context, limit int) ([]entity.CompletedSale, error) {
	if limit <= 0 {
		limit = 50
	}
	var sales []entity.CompletedSale
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&sales).Error
	return sales, err
}
