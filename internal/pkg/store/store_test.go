package store

import (
	"sync"
	"testing"
)

func TestMemoryAbsentKey(t *testing.T) {
	mem := NewMemory()

	if value, ok := mem.Read("missing"); ok || value != "" {
		t.Fatalf("absent key returned (%q, %v)", value, ok)
	}
}

func TestMemoryWriteRead(t *testing.T) {
	mem := NewMemory()

	mem.Write("stock", `{"scarf-01":7}`)

	value, ok := mem.Read("stock")
	if !ok || value != `{"scarf-01":7}` {
		t.Fatalf("read returned (%q, %v)", value, ok)
	}
}

func TestMemoryOverwrite(t *testing.T) {
	mem := NewMemory()

	mem.Write("k", "old")
	mem.Write("k", "new")

	if value, _ := mem.Read("k"); value != "new" {
		t.Fatalf("overwrite kept %q", value)
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	mem := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			mem.Write("k", "v")
		}()
		go func() {
			defer wg.Done()
			mem.Read("k")
		}()
	}
	wg.Wait()
}
