// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/stock"
)

// ProductHandler handles product listing endpoints
type ProductHandler struct {
	catalog      catalog.Catalog
	stockService *stock.Service
	config       *config.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(cat catalog.Catalog, stockService *stock.Service, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		catalog:      cat,
		stockService: stockService,
		config:       cfg,
	}
}

// ProductResponse joins a catalog product with its live stock count
type ProductResponse struct {
	catalog.Product
	InStock int `json:"in_stock"`
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	quantities := h.stockService.GetAll()

	products := h.catalog.Products()
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{
			Product: p,
			InStock: quantities[p.ID],
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    response,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	p, ok := h.catalog.Get(productID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data": ProductResponse{
			Product: p,
			InStock: h.stockService.Get(productID),
		},
	})
}
