package util

import "math/rand"

// Rand is the process-wide random source used by selection steps.
type Rand struct{}

// IntN returns a uniform int in [0, n).
func (Rand) IntN(n int) int {
	return rand.Intn(n)
}

// IntBetween returns a uniform int in [lo, hi].
func IntBetween(r interface{ IntN(int) int }, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
