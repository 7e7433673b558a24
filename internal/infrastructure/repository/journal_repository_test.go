package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
	domainRepo "github.com/puwasa/pos-terminal/internal/domain/repository"
)

func newTestRepo(t *testing.T) domainRepo.JournalRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.PrintAttempt{}, &entity.CompletedSale{}))
	return NewJournalRepository(db)
}

func TestRecordAndListPrintAttempts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	old := &entity.PrintAttempt{BillID: "77", Mode: "write-only", Success: true, CreatedAt: time.Now().Add(-time.Hour)}
	recent := &entity.PrintAttempt{BillID: "78", Mode: "render", Success: true, Printed: true, CreatedAt: time.Now()}
	require.NoError(t, repo.RecordPrintAttempt(ctx, old))
	require.NoError(t, repo.RecordPrintAttempt(ctx, recent))

	attempts, err := repo.ListPrintAttempts(ctx, 0)
	require.NoError(t, err)

	require.Len(t, attempts, 2)
	assert.Equal(t, "78", attempts[0].BillID)
	assert.Equal(t, "77", attempts[1].BillID)
}

func TestListPrintAttempts_Limit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.RecordPrintAttempt(ctx, &entity.PrintAttempt{
			BillID:    "x",
			Mode:      "render",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	attempts, err := repo.ListPrintAttempts(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, attempts, 3)
}

func TestRecordAndListCompletedSales(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordCompletedSale(ctx, &entity.CompletedSale{
		BillID:     42,
		CashierID:  1,
		LocationID: 2,
		Total:      180,
		Discount:   20,
		CashAmount: 200,
		Balance:    20,
		Items:      3,
	}))

	sales, err := repo.ListCompletedSales(ctx, 0)
	require.NoError(t, err)

	require.Len(t, sales, 1)
	assert.Equal(t, int64(42), sales[0].BillID)
	assert.Equal(t, 180.0, sales[0].Total)
	assert.Equal(t, 3, sales[0].Items)
}
