// internal/domain/catalog/entity.go
package catalog

// Product represents one sellable item. The catalog is read-only at
// runtime: products are the fixed reference data that stock and cart
// entries join against by ID.
type Product struct {
	ID         string   `gorm:"primaryKey;size:100" json:"id"`
	Name       string   `gorm:"not null;size:200" json:"name"`
	Price      int64    `gorm:"not null" json:"price"` // minor currency units
	Image      string   `gorm:"size:500" json:"image"`
	Sizes      []string `gorm:"serializer:json" json:"sizes"`
	Rating     float64  `gorm:"default:0" json:"rating"`
	Reviews    int      `gorm:"default:0" json:"reviews"`
	Collection string   `gorm:"size:100" json:"collection"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}
