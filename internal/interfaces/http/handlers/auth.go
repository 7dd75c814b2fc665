// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// AuthHandler handles admin authentication
type AuthHandler struct {
	jwtManager      *auth.JWTManager
	passwordManager *auth.PasswordManager
	config          *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		jwtManager:      auth.NewJWTManager(cfg),
		passwordManager: auth.NewPasswordManager(cfg),
		config:          cfg,
	}
}

// LoginRequest represents admin login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login. The only credentialed principal is the
// configured admin; everything else the API serves is public or
// session-scoped.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if h.config.Admin.PasswordHash == "" || req.Email != h.config.Admin.Email {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	if err := h.passwordManager.VerifyPassword(req.Password, h.config.Admin.PasswordHash); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken("admin", req.Email, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int(h.config.JWT.AccessTokenExpiry.Seconds()),
		},
	})
}
