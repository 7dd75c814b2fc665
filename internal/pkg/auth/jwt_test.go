package auth

import (
	"testing"
	"time"

	"github.com/your-org/storefront-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Storefront Backend"},
		JWT: config.JWTConfig{
			Secret:            "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry: time.Hour,
		},
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken("admin", "admin@example.com", true)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != "admin" || claims.Email != "admin@example.com" || !claims.IsAdmin {
		t.Fatalf("claims round-trip lost data: %+v", claims)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig())
	token, err := manager.GenerateAccessToken("admin", "admin@example.com", true)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	other := testConfig()
	other.JWT.Secret = "ffffffffffffffffffffffffffffffff"
	if _, err := NewJWTManager(other).ValidateAccessToken(token); err == nil {
		t.Fatalf("token accepted under a different secret")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	if got := ExtractTokenFromHeader("Bearer abc.def.ghi"); got != "abc.def.ghi" {
		t.Fatalf("extract returned %q", got)
	}
	if got := ExtractTokenFromHeader("bearer abc"); got != "abc" {
		t.Fatalf("case-insensitive scheme failed: %q", got)
	}
	if got := ExtractTokenFromHeader("Basic abc"); got != "" {
		t.Fatalf("non-bearer header produced %q", got)
	}
	if got := ExtractTokenFromHeader(""); got != "" {
		t.Fatalf("empty header produced %q", got)
	}
}
