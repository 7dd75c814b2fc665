// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
)

// CORS returns a middleware that lets the configured storefront origins
// call the API with credentials (the session cookie rides on cart requests,
// so Allow-Origin must echo the origin rather than use a wildcard).
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowMethods := strings.Join(cfg.Security.CORSAllowedMethods, ", ")
	allowHeaders := strings.Join(cfg.Security.CORSAllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if originAllowed(origin, cfg.Security.CORSAllowedOrigins) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}

		// Preflight requests are answered here and go no further.
		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", allowMethods)
			c.Header("Access-Control-Allow-Headers", allowHeaders)
			c.Header("Access-Control-Max-Age", "86400")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// originAllowed matches an origin against the allow list, honoring "*" and
// "*.domain" wildcard entries.
func originAllowed(origin string, allowed []string) bool {
	if origin == "" {
		return false
	}
	for _, entry := range allowed {
		if entry == "*" || entry == origin {
			return true
		}
		if domain, ok := strings.CutPrefix(entry, "*."); ok && strings.HasSuffix(origin, domain) {
			return true
		}
	}
	return false
}
