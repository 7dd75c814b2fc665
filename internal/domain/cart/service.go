// internal/domain/cart/service.go
package cart

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/stock"
	"github.com/your-org/storefront-backend/internal/pkg/bus"
	"github.com/your-org/storefront-backend/internal/pkg/store"
)

// Service owns the cart ledger and keeps it conserved against the stock
// ledger: every quantity a cart gains, stock loses, and vice versa, within
// the same logical operation. For any product,
//
//	qty in cart + qty in stock == qty at last explicit reset
//
// holds across AddItem/RemoveItem/UpdateQty/Clear under single-context
// sequential use. Out-of-stock and over-request conditions are clamped,
// never surfaced as errors.
type Service struct {
	mu     sync.Mutex
	store  store.Store
	bus    bus.Bus
	stock  *stock.Service
	prefix string
	log    *logrus.Logger
}

// NewService creates a cart ledger bound to the given stock ledger
func NewService(st store.Store, b bus.Bus, stk *stock.Service, keyPrefix string, log *logrus.Logger) *Service {
	if st == nil || b == nil || stk == nil {
		panic("cart: nil dependency")
	}
	if log == nil {
		log = logrus.New()
	}

	return &Service{
		store:  st,
		bus:    b,
		stock:  stk,
		prefix: keyPrefix,
		log:    log,
	}
}

// read returns the persisted lines for an owner, treating absent or corrupt
// values as an empty cart.
func (s *Service) read(owner Owner) []Line {
	raw, ok := s.store.Read(owner.key(s.prefix))
	if !ok || raw == "" {
		return []Line{}
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.log.WithError(err).Warn("corrupt cart record, treating as empty")
		return []Line{}
	}

	return lines
}

func (s *Service) write(owner Owner, lines []Line) {
	raw, err := json.Marshal(lines)
	if err != nil {
		s.log.WithError(err).Warn("failed to encode cart record")
		return
	}
	s.store.Write(owner.key(s.prefix), string(raw))
}

func (s *Service) changed(owner Owner) {
	s.bus.Publish(bus.TopicCartChanged, owner.UserID)
}

// Items returns the owner's cart lines in insertion order
func (s *Service) Items(owner Owner) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read(owner)
}

// Get returns the owner's cart with derived totals
func (s *Service) Get(owner Owner) View {
	lines := s.Items(owner)
	return View{
		Items:    lines,
		Count:    Count(lines),
		Subtotal: Subtotal(lines),
	}
}

// AddItem reserves up to qty units of item's product and adds them to the
// cart. The reservation is hard: if fewer units remain in stock than
// requested, exactly the remaining amount is taken, and at zero stock the
// call is a no-op. Lines merge by (product, size).
func (s *Service) AddItem(owner Owner, item Item, qty int) []Line {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()

	available := s.stock.Get(item.ProductID)
	if available <= 0 {
		lines := s.read(owner)
		s.mu.Unlock()
		return lines
	}

	actual := qty
	if actual > available {
		actual = available
	}
	s.stock.Adjust(item.ProductID, -actual)

	lines := s.read(owner)
	merged := false
	for i := range lines {
		if lines[i].ProductID == item.ProductID && sameVariant(lines[i].Size, item.Size) {
			newQty := lines[i].Qty + actual
			if newQty < 1 {
				newQty = 1
			}
			lines[i].Qty = newQty
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, Line{Item: item, Qty: actual})
	}

	s.write(owner, lines)
	s.mu.Unlock()

	s.changed(owner)
	return lines
}

// RemoveItem deletes every line for a product, all sizes, and returns the
// summed quantity to stock.
func (s *Service) RemoveItem(owner Owner, productID string) []Line {
	s.mu.Lock()

	lines := s.read(owner)
	returned := 0
	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID == productID {
			returned += l.Qty
			continue
		}
		kept = append(kept, l)
	}

	if returned > 0 {
		s.stock.Adjust(productID, returned)
	}
	s.write(owner, kept)
	s.mu.Unlock()

	s.changed(owner)
	return kept
}

// UpdateQty sets the total quantity held for a product across all its
// lines. The target is floored at 1 and capped by what the whole product
// can claim (current cart total plus remaining stock); the difference moves
// between cart and stock.
//
// This operates on the product-level total, not a single (product, size)
// line: the surplus or deficit is concentrated on existing lines in order.
func (s *Service) UpdateQty(owner Owner, productID string, requested int) []Line {
	target := requested
	if target < 1 {
		target = 1
	}

	s.mu.Lock()

	lines := s.read(owner)
	current := 0
	for _, l := range lines {
		if l.ProductID == productID {
			current += l.Qty
		}
	}

	if current == 0 {
		// Nothing in the cart to resize.
		s.mu.Unlock()
		return lines
	}

	ceiling := current + s.stock.Get(productID)
	desired := target
	if desired > ceiling {
		desired = ceiling
	}

	delta := desired - current
	if delta == 0 {
		s.mu.Unlock()
		return lines
	}
	s.stock.Adjust(productID, -delta)

	if delta > 0 {
		// Grow the first matching line.
		for i := range lines {
			if lines[i].ProductID == productID {
				lines[i].Qty += delta
				break
			}
		}
	} else {
		// Shrink matching lines front to back, dropping drained ones.
		toRemove := -delta
		kept := lines[:0]
		for _, l := range lines {
			if l.ProductID == productID && toRemove > 0 {
				take := l.Qty
				if take > toRemove {
					take = toRemove
				}
				l.Qty -= take
				toRemove -= take
				if l.Qty == 0 {
					continue
				}
			}
			kept = append(kept, l)
		}
		lines = kept
	}

	s.write(owner, lines)
	s.mu.Unlock()

	s.changed(owner)
	return lines
}

// Clear empties the cart, returning every line's quantity to stock
func (s *Service) Clear(owner Owner) {
	s.mu.Lock()

	lines := s.read(owner)
	for _, l := range lines {
		s.stock.Adjust(l.ProductID, l.Qty)
	}
	s.write(owner, []Line{})
	s.mu.Unlock()

	s.changed(owner)
}

// RemoveItemFromUserCart removes lines from a user's cart namespace by
// product, and by size when one is given; a nil size removes the product
// across all sizes. Unlike RemoveItem this is pure list filtering: the
// removed quantity is not returned to stock, matching the namespace's
// original isolation semantics.
func (s *Service) RemoveItemFromUserCart(userID, productID string, size *string) []Line {
	owner := UserOwner(userID)

	s.mu.Lock()

	lines := s.read(owner)
	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID == productID && (size == nil || sameVariant(l.Size, size)) {
			continue
		}
		kept = append(kept, l)
	}
	s.write(owner, kept)
	s.mu.Unlock()

	s.changed(owner)
	return kept
}
