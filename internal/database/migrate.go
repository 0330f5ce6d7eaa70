package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pjreceita/receitas-backend/internal/models"
)

// Migrate creates or updates the receitas and users tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Receita{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
