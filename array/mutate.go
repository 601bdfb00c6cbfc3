package array

import "fmt"

// Add appends item, growing the buffer first when it is full.
func (a *Array[T]) Add(item T) {
	a.ensureRoom()
	a.items[a.length] = item
	a.length++
}

// Insert places item at index, shifting the elements at [index, Len) one slot right.
// Valid indices are [0, Len]; inserting at Len is the same as Add.
func (a *Array[T]) Insert(index int, item T) error {
	if index < 0 || index > a.length {
		return fmt.Errorf("%w: insert at %d, length %d", ErrOutOfRange, index, a.length)
	}

	if index == a.length {
		a.Add(item)
		return nil
	}

	a.ensureRoom()
	copy(a.items[index+1:a.length+1], a.items[index:a.length])
	a.items[index] = item
	a.length++

	return nil
}

// Remove deletes the first element equal to item and reports whether one was found.
func (a *Array[T]) Remove(item T) bool {
	index := a.IndexOf(item)
	if index < 0 {
		return false
	}

	a.removeAt(index)
	return true
}

// RemoveAt deletes the element at index, shifting the following elements one slot left.
func (a *Array[T]) RemoveAt(index int) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}

	a.removeAt(index)
	return nil
}

func (a *Array[T]) removeAt(index int) {
	copy(a.items[index:a.length-1], a.items[index+1:a.length])
	a.length--

	var zero T
	a.items[a.length] = zero
}

// Clear removes every element. The capacity is kept.
func (a *Array[T]) Clear() {
	clear(a.items[:a.length])
	a.length = 0
}
