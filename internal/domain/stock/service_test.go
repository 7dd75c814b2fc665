package stock

import (
	"reflect"
	"testing"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/pkg/bus"
	"github.com/your-org/storefront-backend/internal/pkg/store"
)

func testCatalog() catalog.Catalog {
	return catalog.NewStatic([]catalog.Product{
		{ID: "prod-a", Name: "A", Price: 1000},
		{ID: "prod-b", Name: "B", Price: 2000},
		{ID: "prod-c", Name: "C", Price: 3000},
	})
}

func newTestService(t *testing.T) (*Service, *store.Memory, *bus.Emitter) {
	t.Helper()
	mem := store.NewMemory()
	emitter := bus.NewEmitter()
	svc := NewService(mem, emitter, testCatalog(), "test", nil)
	return svc, mem, emitter
}

func TestSeedingIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)

	first := svc.GetAll()
	second := svc.GetAll()

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated GetAll diverged: %v vs %v", first, second)
	}
	for id, qty := range first {
		if qty < seedMin || qty > seedMax {
			t.Errorf("seeded quantity for %q out of range: %d", id, qty)
		}
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 seeded entries, got %d", len(first))
	}
}

func TestSeededQuantitiesMatchContract(t *testing.T) {
	svc, _, _ := newTestService(t)

	want := map[string]int{"prod-a": 18, "prod-b": 14, "prod-c": 11}
	if got := svc.GetAll(); !reflect.DeepEqual(got, want) {
		t.Fatalf("seeded ledger = %v, want %v", got, want)
	}
}

func TestGetUnknownProductIsZero(t *testing.T) {
	svc, _, _ := newTestService(t)

	if qty := svc.Get("no-such-product"); qty != 0 {
		t.Fatalf("unknown product quantity = %d, want 0", qty)
	}
}

func TestSetClampsNegative(t *testing.T) {
	svc, _, _ := newTestService(t)

	svc.Set("prod-a", -5)
	if qty := svc.Get("prod-a"); qty != 0 {
		t.Fatalf("negative set left quantity %d, want 0", qty)
	}

	svc.Set("prod-a", 7)
	if qty := svc.Get("prod-a"); qty != 7 {
		t.Fatalf("set quantity = %d, want 7", qty)
	}
}

func TestAdjustTruncatesAtZero(t *testing.T) {
	svc, _, _ := newTestService(t)

	svc.Set("prod-a", 4)
	if got := svc.Adjust("prod-a", -10); got != 0 {
		t.Fatalf("over-negative adjust returned %d, want 0", got)
	}
	if got := svc.Adjust("prod-a", 3); got != 3 {
		t.Fatalf("adjust returned %d, want 3", got)
	}
}

func TestMutationsPublishStockChanged(t *testing.T) {
	svc, _, emitter := newTestService(t)

	signals := 0
	unsubscribe := emitter.Subscribe(bus.TopicStockChanged, func(string) {
		signals++
	})
	defer unsubscribe()

	svc.Set("prod-a", 5)
	svc.Adjust("prod-a", -1)
	svc.ResetAllRandom()

	if signals != 3 {
		t.Fatalf("expected 3 stock-changed signals, got %d", signals)
	}
}

func TestCorruptRecordTreatedAsEmpty(t *testing.T) {
	svc, mem, _ := newTestService(t)

	mem.Write("test:stock", "{definitely not json")

	// A corrupt record behaves like a fresh store: everything re-seeds.
	want := map[string]int{"prod-a": 18, "prod-b": 14, "prod-c": 11}
	if got := svc.GetAll(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ledger after corrupt record = %v, want %v", got, want)
	}
}

func TestResetAllRandomDiverges(t *testing.T) {
	svc, _, _ := newTestService(t)

	svc.now = func() time.Time { return time.UnixMilli(1000) }
	first := svc.ResetAllRandom()

	svc.now = func() time.Time { return time.UnixMilli(2000) }
	second := svc.ResetAllRandom()

	if reflect.DeepEqual(first, second) {
		t.Fatalf("resets with different salts produced identical ledgers: %v", first)
	}

	// Same salt replays the same ledger.
	svc.now = func() time.Time { return time.UnixMilli(1000) }
	replay := svc.ResetAllRandom()
	if !reflect.DeepEqual(first, replay) {
		t.Fatalf("same salt diverged: %v vs %v", first, replay)
	}
}

func TestResetOverwritesWholesale(t *testing.T) {
	svc, _, _ := newTestService(t)

	svc.Set("prod-a", 999)
	svc.now = func() time.Time { return time.UnixMilli(1000) }

	want := map[string]int{"prod-a": 9, "prod-b": 14, "prod-c": 6}
	if got := svc.ResetAllRandom(); !reflect.DeepEqual(got, want) {
		t.Fatalf("reset ledger = %v, want %v", got, want)
	}
	if qty := svc.Get("prod-a"); qty != 9 {
		t.Fatalf("manual quantity survived reset: %d", qty)
	}
}

func TestNewServicePanicsOnNilDependency(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on nil store")
		}
	}()
	NewService(nil, bus.NewEmitter(), testCatalog(), "test", nil)
}
