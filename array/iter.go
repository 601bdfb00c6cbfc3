package array

import (
	"fmt"
	"iter"

	"golang.org/x/exp/slices"
)

// All returns an iterator over index-value pairs in index order.
// Each iteration observes the elements present when it started.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		snapshot := a.items[:a.length]
		for i, v := range snapshot {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in index order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from the last element to the first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		snapshot := a.items[:a.length]
		for i := len(snapshot) - 1; i >= 0; i-- {
			if !yield(i, snapshot[i]) {
				return
			}
		}
	}
}

// CopyTo copies all elements into dst starting at offset.
func (a *Array[T]) CopyTo(dst []T, offset int) error {
	if offset < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrInvalidArgument, offset)
	}

	if len(dst)-offset < a.length {
		return fmt.Errorf("%w: destination of length %d cannot hold %d elements at offset %d",
			ErrInvalidArgument, len(dst), a.length, offset)
	}

	copy(dst[offset:], a.items[:a.length])
	return nil
}

// Slice returns a copy of the elements.
func (a *Array[T]) Slice() []T {
	out := make([]T, a.length)
	copy(out, a.items[:a.length])
	return out
}

// Clone returns an independent array with the same elements, capacity and growth factor.
func (a *Array[T]) Clone() *Array[T] {
	buf := make([]T, len(a.items))
	copy(buf, a.items[:a.length])

	return &Array[T]{
		items:  buf,
		length: a.length,
		growth: a.growth,
	}
}

// Equal reports whether both arrays hold equal elements in the same order.
// Capacity and growth factor are not compared.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if other == nil {
		return false
	}

	return slices.Equal(a.items[:a.length], other.items[:other.length])
}
