package common

import "math"

// Clamp limits v to [lo, hi]. The lower bound is applied first, so when
// hi < lo the result is hi.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
