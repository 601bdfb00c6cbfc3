package util

import "github.com/darray-cli/darray/array"

// Stack implements a Last-In-First-Out structure on top of array.Array.
// The zero value is ready to use.
type Stack[T comparable] struct {
	items *array.Array[T]
}

func (s *Stack[T]) init() {
	if s.items == nil {
		s.items = array.NewDefault[T]()
	}
}

// Push appends a new element to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.init()
	s.items.Add(item)
}

// Pop removes and returns the topmost element of the stack; returns the zero value if the stack is empty.
func (s *Stack[T]) Pop() (item T) {
	if s.Len() == 0 {
		return
	}
	item = s.items.Last().MustGet()
	_, _ = s.items.DropLast()
	return
}

// Peek returns the topmost element without removing it; returns the zero value if the stack is empty.
func (s *Stack[T]) Peek() (item T) {
	if s.Len() == 0 {
		return
	}
	return s.items.Last().MustGet()
}

// Len returns the number of elements currently stored in the stack.
func (s *Stack[T]) Len() int {
	if s.items == nil {
		return 0
	}
	return s.items.Len()
}

// Clear removes all elements from the stack.
func (s *Stack[T]) Clear() {
	if s.items != nil {
		s.items.Clear()
	}
}
