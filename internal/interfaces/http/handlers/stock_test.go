package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/stock"
	"github.com/your-org/storefront-backend/internal/pkg/bus"
	"github.com/your-org/storefront-backend/internal/pkg/store"
)

func newStockTestRouter(t *testing.T) (*gin.Engine, *stock.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemory()
	emitter := bus.NewEmitter()
	cat := catalog.NewStatic([]catalog.Product{
		{ID: "scarf-01", Name: "Scarf", Price: 2500},
	})
	stockSvc := stock.NewService(mem, emitter, cat, "test", nil)

	handler := NewStockHandler(stockSvc, &config.Config{})
	router := gin.New()
	router.PUT("/admin/stock/:id", handler.SetStock)

	return router, stockSvc
}

func putStock(t *testing.T, router *gin.Engine, productID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/admin/stock/"+productID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSetStockToZeroSucceeds(t *testing.T) {
	router, stockSvc := newStockTestRouter(t)

	stockSvc.Set("scarf-01", 7)

	w := putStock(t, router, "scarf-01", `{"quantity": 0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("zeroing stock returned %d: %s", w.Code, w.Body.String())
	}
	if got := stockSvc.Get("scarf-01"); got != 0 {
		t.Fatalf("stock after zeroing = %d, want 0", got)
	}
}

func TestSetStockCoercesQuantity(t *testing.T) {
	router, stockSvc := newStockTestRouter(t)

	// Negative values clamp to zero rather than erroring.
	if w := putStock(t, router, "scarf-01", `{"quantity": -3}`); w.Code != http.StatusOK {
		t.Fatalf("negative quantity returned %d: %s", w.Code, w.Body.String())
	}
	if got := stockSvc.Get("scarf-01"); got != 0 {
		t.Fatalf("stock after negative set = %d, want 0", got)
	}

	// Fractional values floor.
	if w := putStock(t, router, "scarf-01", `{"quantity": 4.9}`); w.Code != http.StatusOK {
		t.Fatalf("fractional quantity returned %d: %s", w.Code, w.Body.String())
	}
	if got := stockSvc.Get("scarf-01"); got != 4 {
		t.Fatalf("stock after fractional set = %d, want 4", got)
	}
}

func TestSetStockResponseCarriesLedger(t *testing.T) {
	router, _ := newStockTestRouter(t)

	w := putStock(t, router, "scarf-01", `{"quantity": 5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("set returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data map[string]int `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data["scarf-01"] != 5 {
		t.Fatalf("response ledger = %v, want scarf-01:5", resp.Data)
	}
}

func TestSetStockRejectsMalformedBody(t *testing.T) {
	router, _ := newStockTestRouter(t)

	if w := putStock(t, router, "scarf-01", `{not json`); w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body returned %d", w.Code)
	}
}
