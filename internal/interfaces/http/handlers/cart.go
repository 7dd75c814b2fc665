// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	catalog     catalog.Catalog
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, cat catalog.Catalog, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		catalog:     cat,
		config:      cfg,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Size      *string `json:"size"`
	Quantity  float64 `json:"quantity"`
}

// UpdateCartItemRequest represents update cart item request. Out-of-range
// quantities are clamped by the ledger, never rejected.
type UpdateCartItemRequest struct {
	Quantity float64 `json:"quantity"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	owner := h.resolveOwner(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartService.Get(owner),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	owner := h.resolveOwner(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item := cart.Item{
		ProductID: req.ProductID,
		Size:      req.Size,
	}
	// Capture display metadata from the catalog when the product is known;
	// unknown ids still produce a line, which the display layer filters.
	if p, ok := h.catalog.Get(req.ProductID); ok {
		item.Name = p.Name
		item.Price = p.Price
		item.Image = p.Image
		item.Collection = p.Collection
	}

	qty := floorQty(req.Quantity)
	if qty < 1 {
		qty = 1
	}

	lines := h.cartService.AddItem(owner, item, qty)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    viewOf(lines),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	owner := h.resolveOwner(c)
	productID := c.Param("id")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	lines := h.cartService.UpdateQty(owner, productID, floorQty(req.Quantity))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    viewOf(lines),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	owner := h.resolveOwner(c)
	productID := c.Param("id")

	lines := h.cartService.RemoveItem(owner, productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    viewOf(lines),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	owner := h.resolveOwner(c)

	h.cartService.Clear(owner)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    viewOf(nil),
	})
}

// RemoveFromUserCart handles DELETE /users/me/cart/items/:id. With a size
// query parameter only the matching variant line is removed; without one,
// every line for the product goes. Stock is not touched on this path.
func (h *CartHandler) RemoveFromUserCart(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	productID := c.Param("id")

	var size *string
	if v, exists := c.GetQuery("size"); exists {
		size = &v
	}

	lines := h.cartService.RemoveItemFromUserCart(userID, productID, size)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from user cart successfully",
		"data":    viewOf(lines),
	})
}

// resolveOwner targets the authenticated user's cart namespace when a valid
// token is present, the anonymous session cart otherwise.
func (h *CartHandler) resolveOwner(c *gin.Context) cart.Owner {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		return cart.UserOwner(userID)
	}
	return cart.SessionOwner(h.getOrCreateSessionID(c))
}

// getOrCreateSessionID gets session ID from cookie or creates a new one
func (h *CartHandler) getOrCreateSessionID(c *gin.Context) string {
	// Try to get session ID from cookie
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		// Generate new session ID
		sessionID = uuid.New().String()

		// Set session cookie (24 hours)
		c.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
	}

	return sessionID
}

func viewOf(lines []cart.Line) cart.View {
	if lines == nil {
		lines = []cart.Line{}
	}
	return cart.View{
		Items:    lines,
		Count:    cart.Count(lines),
		Subtotal: cart.Subtotal(lines),
	}
}

// floorQty coerces a JSON number to an integer quantity
func floorQty(q float64) int {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	return int(math.Floor(q))
}
