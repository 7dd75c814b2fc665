// internal/domain/catalog/seed.go
package catalog

// DefaultProducts is the development catalog, seeded into the database on
// first boot so the storefront renders something out of the box.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:         "scarf-01",
			Name:       "Handwoven Wool Scarf",
			Price:      249900,
			Image:      "/images/scarf-01.jpg",
			Sizes:      []string{"S", "M", "L"},
			Rating:     4.6,
			Reviews:    112,
			Collection: "winter",
		},
		{
			ID:         "kurta-emerald",
			Name:       "Emerald Embroidered Kurta",
			Price:      589900,
			Image:      "/images/kurta-emerald.jpg",
			Sizes:      []string{"S", "M", "L", "XL"},
			Rating:     4.8,
			Reviews:    86,
			Collection: "festive",
		},
		{
			ID:         "dupatta-rose",
			Name:       "Rose Silk Dupatta",
			Price:      179900,
			Image:      "/images/dupatta-rose.jpg",
			Sizes:      []string{"One Size"},
			Rating:     4.3,
			Reviews:    41,
			Collection: "classics",
		},
		{
			ID:         "shawl-heritage",
			Name:       "Heritage Pashmina Shawl",
			Price:      1249900,
			Image:      "/images/shawl-heritage.jpg",
			Sizes:      []string{"One Size"},
			Rating:     4.9,
			Reviews:    203,
			Collection: "winter",
		},
		{
			ID:         "stole-indigo",
			Name:       "Indigo Block Print Stole",
			Price:      149900,
			Image:      "/images/stole-indigo.jpg",
			Sizes:      []string{"S", "M"},
			Rating:     4.1,
			Reviews:    27,
			Collection: "classics",
		},
	}
}
