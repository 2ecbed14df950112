package mapz

import (
	"iter"
	"sync"
)

// CountingMultiMap is a multimap that counts the number of distinct values for each
// key, removing the key from the map when the count reaches zero. Safe for concurrent
// use.
type CountingMultiMap[T comparable, Q comparable] struct {
	valuesByKey map[T]*Set[Q]
	size        int
	lock        sync.RWMutex
}

// NewCountingMultiMap constructs a new counting multimap.
func NewCountingMultiMap[T comparable, Q comparable]() *CountingMultiMap[T, Q] {
	return &CountingMultiMap[T, Q]{
		valuesByKey: map[T]*Set[Q]{},
		lock:        sync.RWMutex{},
	}
}

// Add adds the given value to the map at the given key. Returns true if the value
// already existed in the map for the given key.
func (cmm *CountingMultiMap[T, Q]) Add(key T, value Q) bool {
	cmm.lock.Lock()
	defer cmm.lock.Unlock()

	values, ok := cmm.valuesByKey[key]
	if !ok {
		values = NewSet[Q]()
		cmm.valuesByKey[key] = values
	}

	added := values.Add(value)
	if added {
		cmm.size++
	}
	return !added
}

// Remove removes the given value for the given key from the map. If, after this removal,
// the key has no additional values, it is removed entirely from the map. Returns
// true if the value was present.
func (cmm *CountingMultiMap[T, Q]) Remove(key T, value Q) bool {
	cmm.lock.Lock()
	defer cmm.lock.Unlock()

	values, ok := cmm.valuesByKey[key]
	if !ok {
		return false
	}

	removed := values.Delete(value)
	if removed {
		cmm.size--
	}
	if values.IsEmpty() {
		delete(cmm.valuesByKey, key)
	}
	return removed
}

// Has returns true if the given value is stored for the given key.
func (cmm *CountingMultiMap[T, Q]) Has(key T, value Q) bool {
	cmm.lock.RLock()
	defer cmm.lock.RUnlock()

	values, ok := cmm.valuesByKey[key]
	return ok && values.Has(value)
}

// Get returns a copy of the distinct values stored for the given key.
func (cmm *CountingMultiMap[T, Q]) Get(key T) []Q {
	cmm.lock.RLock()
	defer cmm.lock.RUnlock()

	values, ok := cmm.valuesByKey[key]
	if !ok {
		return nil
	}
	return values.AsSlice()
}

// CountOf returns the number of distinct values stored for the given key.
func (cmm *CountingMultiMap[T, Q]) CountOf(key T) int {
	cmm.lock.RLock()
	defer cmm.lock.RUnlock()

	values, ok := cmm.valuesByKey[key]
	if !ok {
		return 0
	}
	return values.Len()
}

// Len returns the number of (key, value) entries in the map.
func (cmm *CountingMultiMap[T, Q]) Len() int {
	cmm.lock.RLock()
	defer cmm.lock.RUnlock()
	return cmm.size
}

// KeyCount returns the number of distinct keys in the map.
func (cmm *CountingMultiMap[T, Q]) KeyCount() int {
	cmm.lock.RLock()
	defer cmm.lock.RUnlock()
	return len(cmm.valuesByKey)
}

// Keys returns an iterator over the keys of the map. The map must not be
// modified while the iterator is in use.
func (cmm *CountingMultiMap[T, Q]) Keys() iter.Seq[T] {
	return func(yield func(T) bool) {
		cmm.lock.RLock()
		defer cmm.lock.RUnlock()

		for key := range cmm.valuesByKey {
			if !yield(key) {
				return
			}
		}
	}
}
