package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
)

// NewSQLiteDB opens (creating if needed) the terminal's embedded journal
// database at the given path.
func NewSQLiteDB(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}
	return db, nil
}

// AutoMigrate runs GORM auto-migration for the journal entities
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.PrintAttempt{},
		&entity.CompletedSale{},
	)
}
