package config

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/magicvilla/villa-api/internal/domain"
)

// Migrate creates the villas table and the case-insensitive unique index
// on names. The index is what makes the name de-duplication hold under
// concurrent creates; the application-level check alone cannot.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Villa{}); err != nil {
		return fmt.Errorf("failed to migrate villas table: %w", err)
	}

	err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_villas_name_lower ON villas (LOWER(name))").Error
	if err != nil {
		return fmt.Errorf("failed to create villa name index: %w", err)
	}

	return nil
}
