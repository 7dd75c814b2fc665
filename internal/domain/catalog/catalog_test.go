package catalog

import "testing"

func TestStaticLookup(t *testing.T) {
	cat := NewStatic([]Product{
		{ID: "scarf-01", Name: "Scarf", Price: 2500},
		{ID: "shawl-02", Name: "Shawl", Price: 9000},
	})

	p, ok := cat.Get("shawl-02")
	if !ok || p.Name != "Shawl" {
		t.Fatalf("lookup returned (%+v, %v)", p, ok)
	}

	if _, ok := cat.Get("missing"); ok {
		t.Fatalf("unknown id reported as present")
	}
}

func TestStaticProductsPreservesOrder(t *testing.T) {
	cat := NewStatic([]Product{{ID: "b"}, {ID: "a"}, {ID: "c"}})

	products := cat.Products()
	if products[0].ID != "b" || products[1].ID != "a" || products[2].ID != "c" {
		t.Fatalf("order changed: %+v", products)
	}
}

func TestStaticProductsReturnsCopy(t *testing.T) {
	cat := NewStatic([]Product{{ID: "a", Name: "A"}})

	products := cat.Products()
	products[0].Name = "mutated"

	if p, _ := cat.Get("a"); p.Name != "A" {
		t.Fatalf("catalog mutated through returned slice")
	}
}

func TestDefaultProductsHaveStableIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range DefaultProducts() {
		if p.ID == "" {
			t.Fatalf("product without id: %+v", p)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
		if len(p.Sizes) == 0 {
			t.Errorf("product %q has no sizes", p.ID)
		}
	}
}
