// internal/domain/catalog/catalog.go
package catalog

import (
	"fmt"

	"gorm.io/gorm"
)

// Catalog is the read-only product listing consumed by the stock and cart
// ledgers. Implementations must return stable data for the lifetime of the
// process; ledger seeding depends on the enumeration being fixed.
type Catalog interface {
	// Products returns every product in display order.
	Products() []Product

	// Get returns the product with the given id.
	Get(id string) (Product, bool)
}

// Static is a Catalog backed by a fixed slice. Used by tests and as the
// development seed data source.
type Static struct {
	products []Product
	byID     map[string]Product
}

// NewStatic creates a catalog from a fixed product list
func NewStatic(products []Product) *Static {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &Static{
		products: products,
		byID:     byID,
	}
}

// Products returns every product in display order
func (s *Static) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id
func (s *Static) Get(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Repository is the production Catalog. It loads the products table once at
// startup and serves every lookup from memory, so ledger reads never touch
// the database.
type Repository struct {
	static *Static
}

// NewRepository loads all products from the database
func NewRepository(db *gorm.DB) (*Repository, error) {
	var products []Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}

	return &Repository{
		static: NewStatic(products),
	}, nil
}

// Products returns every product in display order
func (r *Repository) Products() []Product {
	return r.static.Products()
}

// Get returns the product with the given id
func (r *Repository) Get(id string) (Product, bool) {
	return r.static.Get(id)
}
