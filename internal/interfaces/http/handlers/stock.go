// internal/interfaces/http/handlers/stock.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/stock"
)

// StockHandler handles the administrative stock surface. These endpoints
// bypass cart-based reservation, so routes mounting them must sit behind
// the admin guard.
type StockHandler struct {
	stockService *stock.Service
	config       *config.Config
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *stock.Service, cfg *config.Config) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		config:       cfg,
	}
}

// SetStockRequest represents a manual stock overwrite. Zero is a valid
// target (sold out), and out-of-range values are clamped by the ledger, so
// the quantity carries no binding constraints.
type SetStockRequest struct {
	Quantity float64 `json:"quantity"`
}

// GetStocks handles GET /admin/stock
func (h *StockHandler) GetStocks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Stock retrieved successfully",
		"data":    h.stockService.GetAll(),
	})
}

// SetStock handles PUT /admin/stock/:id
func (h *StockHandler) SetStock(c *gin.Context) {
	productID := c.Param("id")

	var req SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.stockService.Set(productID, floorQty(req.Quantity))

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock updated successfully",
		"data":    h.stockService.GetAll(),
	})
}

// ResetStocks handles POST /admin/stock/reset
func (h *StockHandler) ResetStocks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Stock reset successfully",
		"data":    h.stockService.ResetAllRandom(),
	})
}
