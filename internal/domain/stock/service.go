// internal/domain/stock/service.go
package stock

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/pkg/bus"
	"github.com/your-org/storefront-backend/internal/pkg/store"
)

// Service owns the product-id -> remaining-quantity ledger. The ledger is
// one JSON object in the shared store; every mutation is a bare
// read-compute-write followed by a stock-changed signal. Quantities are
// never negative and entries are never deleted, only adjusted or reset.
type Service struct {
	mu      sync.Mutex
	store   store.Store
	bus     bus.Bus
	catalog catalog.Catalog
	key     string
	log     *logrus.Logger
	now     func() time.Time
}

// NewService creates a stock ledger over the given store. All dependencies
// are required; operating an unwired ledger is a programming error.
func NewService(st store.Store, b bus.Bus, cat catalog.Catalog, keyPrefix string, log *logrus.Logger) *Service {
	if st == nil || b == nil || cat == nil {
		panic("stock: nil dependency")
	}
	if log == nil {
		log = logrus.New()
	}

	return &Service{
		store:   st,
		bus:     b,
		catalog: cat,
		key:     keyPrefix + ":stock",
		log:     log,
		now:     time.Now,
	}
}

// read returns the persisted ledger, treating absent or corrupt values as
// an empty mapping.
func (s *Service) read() map[string]int {
	raw, ok := s.store.Read(s.key)
	if !ok || raw == "" {
		return map[string]int{}
	}

	quantities := map[string]int{}
	if err := json.Unmarshal([]byte(raw), &quantities); err != nil {
		s.log.WithError(err).Warn("corrupt stock record, treating as empty")
		return map[string]int{}
	}

	return quantities
}

func (s *Service) write(quantities map[string]int) {
	raw, err := json.Marshal(quantities)
	if err != nil {
		s.log.WithError(err).Warn("failed to encode stock record")
		return
	}
	s.store.Write(s.key, string(raw))
}

// ensureSeeded gives every catalog product a deterministic initial
// quantity, persisting only when something new was seeded. Idempotent:
// repeated calls without intervening mutations return identical mappings.
func (s *Service) ensureSeeded() map[string]int {
	quantities := s.read()

	changed := false
	for _, p := range s.catalog.Products() {
		if _, ok := quantities[p.ID]; !ok {
			qty := seededQty(seedMin, seedMax, hashSeed(p.ID))
			if qty < 0 {
				qty = 0
			}
			quantities[p.ID] = qty
			changed = true
		}
	}

	if changed {
		s.write(quantities)
	}

	return quantities
}

// GetAll returns the full ledger, seeding any products not yet present
func (s *Service) GetAll() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ensureSeeded()
}

// Get returns the remaining quantity for a product. Ids outside the catalog
// report zero.
func (s *Service) Get(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ensureSeeded()[productID]
}

// Set overwrites a product's quantity, clamped to be non-negative
func (s *Service) Set(productID string, qty int) {
	s.mu.Lock()

	quantities := s.ensureSeeded()
	if qty < 0 {
		qty = 0
	}
	quantities[productID] = qty
	s.write(quantities)

	s.mu.Unlock()

	s.bus.Publish(bus.TopicStockChanged, "")
}

// Adjust applies delta to a product's quantity and returns the result.
// The result is clamped at zero, so a sufficiently negative delta is
// silently truncated rather than rejected; callers that need "decrease by
// exactly N only if N are available" must check Get first.
func (s *Service) Adjust(productID string, delta int) int {
	s.mu.Lock()

	quantities := s.ensureSeeded()
	qty := quantities[productID] + delta
	if qty < 0 {
		qty = 0
	}
	quantities[productID] = qty
	s.write(quantities)

	s.mu.Unlock()

	s.bus.Publish(bus.TopicStockChanged, "")
	return qty
}

// ResetAllRandom regenerates every product's quantity from a fresh
// time-salted seed and overwrites the ledger wholesale. Administrative
// operation: it discards any quantities currently reserved in carts.
func (s *Service) ResetAllRandom() map[string]int {
	s.mu.Lock()

	salt := strconv.FormatInt(s.now().UnixMilli(), 10)
	quantities := make(map[string]int)
	for _, p := range s.catalog.Products() {
		qty := seededQty(seedMin, seedMax, hashSeed(p.ID+salt))
		if qty < 0 {
			qty = 0
		}
		quantities[p.ID] = qty
	}
	s.write(quantities)

	s.mu.Unlock()

	s.bus.Publish(bus.TopicStockChanged, "")
	return quantities
}
