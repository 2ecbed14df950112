package mapz

import (
	"iter"
	"maps"
)

// Set implements a very basic generic set.
//
// The zero value is an empty set ready for use; its backing map is only
// allocated on the first Add.
type Set[T comparable] struct {
	values map[T]struct{}
}

// NewSet returns a new, empty set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{}
}

// Has returns true if the set contains the given value.
func (s *Set[T]) Has(value T) bool {
	_, exists := s.values[value]
	return exists
}

// Add adds the given value to the set and returns true. If
// the value is already present, returns false.
func (s *Set[T]) Add(value T) bool {
	if s.Has(value) {
		return false
	}

	if s.values == nil {
		s.values = map[T]struct{}{}
	}
	s.values[value] = struct{}{}
	return true
}

// Delete removes the value from the set, returning whether
// the element was present when the call was made.
func (s *Set[T]) Delete(value T) bool {
	if !s.Has(value) {
		return false
	}

	delete(s.values, value)
	return true
}

// Clear removes all values from the set, releasing the backing map.
func (s *Set[T]) Clear() {
	s.values = nil
}

// IsEmpty returns true if the set is empty.
func (s *Set[T]) IsEmpty() bool {
	return len(s.values) == 0
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int {
	return len(s.values)
}

// All returns an iterator over the values of the set, in no particular order.
func (s *Set[T]) All() iter.Seq[T] {
	return maps.Keys(s.values)
}

// AsSlice returns the set as a slice of values.
func (s *Set[T]) AsSlice() []T {
	if len(s.values) == 0 {
		return nil
	}

	slice := make([]T, 0, len(s.values))
	for value := range s.values {
		slice = append(slice, value)
	}
	return slice
}
