package array

import (
	"math"

	"github.com/samber/lo"
)

// Growth factor bounds. SetGrowthFactor clamps into [MinGrowthFactor, MaxGrowthFactor].
const (
	DefaultGrowthFactor = 2.0
	MinGrowthFactor     = 1.1
	MaxGrowthFactor     = 2.0
)

// Cap returns the size of the backing buffer.
func (a *Array[T]) Cap() int {
	return len(a.items)
}

// SetCapacity resizes the backing buffer to requested slots and returns the resulting capacity.
// A request below Len is raised to Len, so no element is ever discarded.
func (a *Array[T]) SetCapacity(requested int) int {
	if requested < a.length {
		requested = a.length
	}

	if requested != len(a.items) {
		a.resize(requested)
	}

	return requested
}

// GrowthFactor returns the multiplier applied to the capacity when a full array grows.
func (a *Array[T]) GrowthFactor() float64 {
	return a.growth
}

// SetGrowthFactor sets the growth multiplier, clamped into [MinGrowthFactor, MaxGrowthFactor].
func (a *Array[T]) SetGrowthFactor(factor float64) {
	// NaN compares false against both bounds and would slip through Clamp
	if math.IsNaN(factor) {
		factor = MinGrowthFactor
	}

	a.growth = lo.Clamp(factor, MinGrowthFactor, MaxGrowthFactor)
}

// nextCapacity returns the capacity after one growth step.
func (a *Array[T]) nextCapacity() int {
	current := len(a.items)

	next := int(math.Floor(float64(current) * a.growth))
	if next <= current {
		next = current + 1
	}

	return next
}

// ensureRoom grows the buffer when there is no free slot past length.
func (a *Array[T]) ensureRoom() {
	if a.length == len(a.items) {
		a.resize(a.nextCapacity())
	}
}

// resize allocates a buffer of size slots, copies the logical elements into it
// and drops the old buffer.
func (a *Array[T]) resize(size int) {
	buf := make([]T, size)
	copy(buf, a.items[:a.length])
	a.items = buf
}
