package array

import "github.com/samber/lo"

// IndexOf returns the index of the first element equal to item, or -1.
func (a *Array[T]) IndexOf(item T) int {
	return lo.IndexOf(a.items[:a.length], item)
}

// Contains reports whether an element equal to item is present.
func (a *Array[T]) Contains(item T) bool {
	return a.IndexOf(item) >= 0
}
