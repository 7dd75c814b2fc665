// internal/domain/stock/seed.go
package stock

import "math"

// Initial quantities are drawn from [seedMin, seedMax] inclusive.
const (
	seedMin = 3
	seedMax = 20
)

// hashSeed derives a 32-bit seed from a product id using an FNV-1a-style
// mix. The constants are part of the persisted-data contract: changing them
// changes every seeded quantity, so stores written by older deployments
// would re-seed differently.
func hashSeed(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h += (h << 1) + (h << 4) + (h << 7) + (h << 8) + (h << 24)
	}
	return h
}

// seededQty maps a seed to a quantity in [min, max] via one step of a
// linear-congruential generator. Deterministic: the same seed always yields
// the same quantity.
func seededQty(min, max int, seed uint32) int {
	x := uint64(seed)
	if x == 0 {
		x = 123456789
	}
	x = (1664525*x + 1013904223) % 0xffffffff
	r := float64(x) / float64(0xffffffff)
	return int(math.Floor(float64(min) + r*float64(max-min+1)))
}
