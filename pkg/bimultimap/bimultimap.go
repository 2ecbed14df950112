package bimultimap

import (
	"fmt"
	"hash/maphash"
	"iter"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	log "github.com/goose121/bimultimap/internal/logging"
	"github.com/goose121/bimultimap/pkg/bmerrors"
)

// BiMultiMap is a many-to-many relation between keys of type K and values of
// type V, queryable in both directions. Each relation is stored at most once.
//
// The zero value is not usable; construct one with New or NewWithHashers.
type BiMultiMap[K comparable, V comparable] struct {
	buckets     *grid[K, V]
	keyHasher   Hasher[K]
	valueHasher Hasher[V]

	size int

	// version is bumped on every change to the stored relations and is
	// checked by outstanding sequences.
	version uint64
}

// New creates a BiMultiMap backed by a rows x cols bucket grid, hashing keys
// and values with a SeededHasher sharing one random seed.
//
// Returns ErrInvalidCapacity if rows or cols is less than one.
func New[K comparable, V comparable](rows, cols int) (*BiMultiMap[K, V], error) {
	seed := maphash.MakeSeed()
	return NewWithHashers(rows, cols, NewSeededHasherFromSeed[K](seed), NewSeededHasherFromSeed[V](seed))
}

// NewWithHashers creates a BiMultiMap backed by a rows x cols bucket grid,
// using the given hashers to place keys in rows and values in columns.
//
// Returns ErrInvalidCapacity if rows or cols is less than one.
func NewWithHashers[K comparable, V comparable](rows, cols int, keyHasher Hasher[K], valueHasher Hasher[V]) (*BiMultiMap[K, V], error) {
	if keyHasher == nil || valueHasher == nil {
		return nil, bmerrors.MustBugf("bimultimap requires both a key and a value hasher")
	}

	buckets, err := newGrid[K, V](rows, cols)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("rows", rows).Int("cols", cols).Msg("allocated bucket grid")

	return &BiMultiMap[K, V]{
		buckets:     buckets,
		keyHasher:   keyHasher,
		valueHasher: valueHasher,
	}, nil
}

func (m *BiMultiMap[K, V]) bucket(key K, value V) *bucket[K, V] {
	row, col := m.buckets.coordinate(m.keyHasher.Hash(key), m.valueHasher.Hash(value))
	return m.buckets.bucketAt(row, col)
}

// Insert adds the relation between key and value. Returns true if the relation
// was not already present.
func (m *BiMultiMap[K, V]) Insert(key K, value V) bool {
	if !m.bucket(key, value).Add(Relation[K, V]{Key: key, Value: value}) {
		return false
	}

	m.size++
	m.version++
	return true
}

// Remove removes the given relation. Returns true if the relation was present.
func (m *BiMultiMap[K, V]) Remove(relation Relation[K, V]) bool {
	if !m.bucket(relation.Key, relation.Value).Delete(relation) {
		return false
	}

	m.size--
	m.version++
	bmerrors.DebugAssertf(func() bool { return m.size >= 0 }, "relation count went negative after removing %v", relation)
	return true
}

// Contains returns true if the relation between key and value is present.
func (m *BiMultiMap[K, V]) Contains(key K, value V) bool {
	return m.bucket(key, value).Has(Relation[K, V]{Key: key, Value: value})
}

// Clear removes every relation. The grid dimensions and hashers are kept.
func (m *BiMultiMap[K, V]) Clear() {
	m.buckets.clear()
	m.size = 0
	m.version++

	log.Trace().Int("rows", m.buckets.rows).Int("cols", m.buckets.cols).Msg("cleared bucket grid")
}

// Len returns the number of relations in the map.
func (m *BiMultiMap[K, V]) Len() int { return m.size }

// IsEmpty returns true if the map holds no relations.
func (m *BiMultiMap[K, V]) IsEmpty() bool { return m.size == 0 }

// Rows returns the number of rows (key fan-out) of the bucket grid.
func (m *BiMultiMap[K, V]) Rows() int { return m.buckets.rows }

// Cols returns the number of columns (value fan-out) of the bucket grid.
func (m *BiMultiMap[K, V]) Cols() int { return m.buckets.cols }

// KeyIter returns a sequence of every value related to key, in no particular
// order. The sequence scans the single row the key hashes to.
func (m *BiMultiMap[K, V]) KeyIter(key K) iter.Seq[V] {
	row := m.buckets.rowOf(m.keyHasher.Hash(key))
	version := m.version

	return func(yield func(V) bool) {
		m.checkUnmodified(version)

		buckets := m.buckets.row(row)
		for i := range buckets {
			for relation := range buckets[i].All() {
				if relation.Key != key {
					continue
				}
				if !yield(relation.Value) {
					return
				}
				m.checkUnmodified(version)
			}
		}
	}
}

// ValueIter returns a sequence of every key related to value, in no
// particular order. The sequence strides down the single column the value
// hashes to, which is less cache friendly than KeyIter.
func (m *BiMultiMap[K, V]) ValueIter(value V) iter.Seq[K] {
	col := m.buckets.colOf(m.valueHasher.Hash(value))
	version := m.version

	return func(yield func(K) bool) {
		m.checkUnmodified(version)

		for b := range m.buckets.column(col) {
			for relation := range b.All() {
				if relation.Value != value {
					continue
				}
				if !yield(relation.Key) {
					return
				}
				m.checkUnmodified(version)
			}
		}
	}
}

// All returns a sequence of every relation in the map, scanning the grid in
// row-major order.
func (m *BiMultiMap[K, V]) All() iter.Seq[Relation[K, V]] {
	version := m.version

	return func(yield func(Relation[K, V]) bool) {
		m.checkUnmodified(version)

		for i := range m.buckets.cells {
			for relation := range m.buckets.cells[i].All() {
				if !yield(relation) {
					return
				}
				m.checkUnmodified(version)
			}
		}
	}
}

// ValuesOf collects the values related to key.
func (m *BiMultiMap[K, V]) ValuesOf(key K) []V {
	return slices.Collect(m.KeyIter(key))
}

// KeysOf collects the keys related to value.
func (m *BiMultiMap[K, V]) KeysOf(value V) []K {
	return slices.Collect(m.ValueIter(value))
}

func (m *BiMultiMap[K, V]) checkUnmodified(version uint64) {
	if m.version != version {
		bmerrors.MustPanicErr(fmt.Errorf("%w: sequence created at version %d, map is at version %d",
			ErrConcurrentModification, version, m.version))
	}
}

// String renders the map as {key: value, ...} for debugging. The order of the
// relations is unspecified.
func (m *BiMultiMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for relation := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(relation.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// MarshalZerologObject implements zerolog object marshalling.
func (m *BiMultiMap[K, V]) MarshalZerologObject(e *zerolog.Event) {
	e.Int("rows", m.buckets.rows).Int("cols", m.buckets.cols).Int("relations", m.size)
}
