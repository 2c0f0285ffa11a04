// Package mathx holds small numeric helpers shared by the timeline engine and
// the terminal UI.
package mathx

import "cmp"

// Clamp bounds value to [lo, hi]. Infinite float bounds are allowed, so
// Clamp(v, lo, math.Inf(1)) only enforces a lower bound.
//
// When lo > hi the upper bound wins, which keeps callers that derive hi from
// a shrinking content width from ever producing a value past the content end.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	return min(hi, max(lo, value))
}
