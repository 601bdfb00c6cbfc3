package array

import "fmt"

// The methods below mutate the receiver and return it, so calls can be chained:
//
//	arr.Append(11).Prepend(99).RemoveValue(30)

// Append adds item at the end and returns the receiver.
func (a *Array[T]) Append(item T) *Array[T] {
	a.Add(item)
	return a
}

// Prepend inserts item at index 0 and returns the receiver.
func (a *Array[T]) Prepend(item T) *Array[T] {
	// index 0 is always within [0, Len]
	_ = a.Insert(0, item)
	return a
}

// RemoveValue removes the first element equal to item, if any, and returns the receiver.
func (a *Array[T]) RemoveValue(item T) *Array[T] {
	a.Remove(item)
	return a
}

// DropLast removes the final element and returns the receiver.
// It fails with ErrOutOfRange when the array is empty.
func (a *Array[T]) DropLast() (*Array[T], error) {
	if a.length == 0 {
		return a, fmt.Errorf("%w: drop last of empty array", ErrOutOfRange)
	}

	a.removeAt(a.length - 1)
	return a, nil
}
