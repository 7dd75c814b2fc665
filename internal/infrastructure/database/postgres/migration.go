// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// Migration handles database schema setup for the catalog
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration handler
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{db: db}
}

// RunAutoMigrations creates or updates the catalog schema
func (m *Migration) RunAutoMigrations() error {
	if err := m.db.AutoMigrate(&catalog.Product{}); err != nil {
		return fmt.Errorf("failed to migrate products table: %w", err)
	}

	log.Println("✅ Database migrations completed")
	return nil
}

// SeedInitialData populates the catalog on first boot. Existing products
// are left untouched so the catalog stays stable across restarts.
func (m *Migration) SeedInitialData() error {
	var count int64
	if err := m.db.Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect products table: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := catalog.DefaultProducts()
	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Printf("✅ Seeded %d catalog products", len(products))
	return nil
}
