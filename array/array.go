// Package array provides Array, a generic contiguous container with indexed access,
// shift-based insertion and removal, and a configurable capacity growth policy.
package array

import (
	"fmt"
	"iter"

	"github.com/samber/mo"
)

// DefaultCapacity is the capacity of an array created with NewDefault.
const DefaultCapacity = 10

// Array is a resizable array of comparable elements.
//
// The backing buffer is exclusively owned by the array: constructors copy their
// input and accessors that return slices return copies.
// An Array is not safe for concurrent use.
type Array[T comparable] struct {
	items  []T
	length int
	growth float64
}

// New returns an empty array with exactly capacity slots allocated.
func New[T comparable](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
	}

	return &Array[T]{
		items:  make([]T, capacity),
		growth: DefaultGrowthFactor,
	}, nil
}

// NewDefault returns an empty array with DefaultCapacity slots.
func NewDefault[T comparable]() *Array[T] {
	return &Array[T]{
		items:  make([]T, DefaultCapacity),
		growth: DefaultGrowthFactor,
	}
}

// From returns an array holding a copy of items. Its capacity equals len(items).
func From[T comparable](items ...T) *Array[T] {
	buf := make([]T, len(items))
	copy(buf, items)

	return &Array[T]{
		items:  buf,
		length: len(buf),
		growth: DefaultGrowthFactor,
	}
}

// FromSeq consumes seq eagerly and returns an array holding its values in order.
// The capacity is trimmed to the number of values.
func FromSeq[T comparable](seq iter.Seq[T]) *Array[T] {
	var buf []T
	for v := range seq {
		buf = append(buf, v)
	}

	// buf may carry append's spare capacity, From copies it into an exact buffer
	return From(buf...)
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	return a.length
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.length == 0
}

// Get returns the element at index.
func (a *Array[T]) Get(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}

	return a.items[index], nil
}

// Set overwrites the element at index.
func (a *Array[T]) Set(index int, value T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}

	a.items[index] = value
	return nil
}

// At returns the element at index, or None if index is out of range.
func (a *Array[T]) At(index int) mo.Option[T] {
	if index < 0 || index >= a.length {
		return mo.None[T]()
	}

	return mo.Some(a.items[index])
}

// Last returns the final element, or None if the array is empty.
func (a *Array[T]) Last() mo.Option[T] {
	return a.At(a.length - 1)
}

func (a *Array[T]) checkIndex(index int) error {
	if index < 0 || index >= a.length {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, index, a.length)
	}

	return nil
}
