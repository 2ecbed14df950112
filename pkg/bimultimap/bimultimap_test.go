package bimultimap

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/goose121/bimultimap/pkg/bmerrors"
)

func identityHasher() HasherFunc[int] {
	return func(value int) uint64 { return uint64(value) }
}

func constantHasher() HasherFunc[int] {
	return func(int) uint64 { return 0 }
}

func requireConcurrentModification(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.True(t, ok, "expected an error panic value, got %T", r)
		require.ErrorIs(t, err, ErrConcurrentModification)
	}()

	fn()
}

func TestNewInvalidCapacity(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows int
		cols int
	}{
		{"zero rows", 0, 10},
		{"zero cols", 10, 0},
		{"both zero", 0, 0},
		{"negative rows", -1, 4},
		{"negative cols", 4, -3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New[int, int](tc.rows, tc.cols)
			require.Nil(t, m)
			require.Error(t, err)

			var capErr ErrInvalidCapacity
			require.ErrorAs(t, err, &capErr)
			require.Equal(t, tc.rows, capErr.Rows())
			require.Equal(t, tc.cols, capErr.Cols())
		})
	}
}

func TestNewWithHashersInvalidCapacity(t *testing.T) {
	_, err := NewWithHashers[int, int](0, 1, identityHasher(), identityHasher())
	require.ErrorAs(t, err, &ErrInvalidCapacity{})
}

func TestNewWithoutHasherIsABug(t *testing.T) {
	require.Panics(t, func() {
		_, _ = NewWithHashers[int, int](1, 1, nil, identityHasher())
	})
}

func TestInvalidCapacityErrorDetails(t *testing.T) {
	err := NewInvalidCapacityErr(0, 7)
	require.Contains(t, err.Error(), "0x7")

	var capErr ErrInvalidCapacity
	require.True(t, errors.As(err, &capErr))
	require.Equal(t, map[string]string{"rows": "0", "cols": "7"}, capErr.DetailsMetadata())

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)
	logger.Error().EmbedObject(capErr).Msg("construction failed")
	require.Contains(t, buf.String(), `"rows":0`)
	require.Contains(t, buf.String(), `"cols":7`)
}

func TestSingleBucketGrid(t *testing.T) {
	m, err := New[string, string](1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 1, m.Cols())

	require.True(t, m.Insert("a", "x"))
	require.True(t, m.Insert("a", "y"))
	require.True(t, m.Insert("b", "x"))

	require.Equal(t, 3, m.buckets.bucketAt(0, 0).Len())
	require.ElementsMatch(t, []string{"x", "y"}, m.ValuesOf("a"))
	require.ElementsMatch(t, []string{"a", "b"}, m.KeysOf("x"))
	require.Empty(t, m.ValuesOf("c"))
}

func TestKeyIterScenario(t *testing.T) {
	m, err := New[int, int](10, 10)
	require.NoError(t, err)

	require.True(t, m.Insert(10, 10))
	require.True(t, m.Insert(12, 32))
	require.True(t, m.Insert(10, 3389283))

	require.ElementsMatch(t, []int{10, 3389283}, slices.Collect(m.KeyIter(10)))
	require.ElementsMatch(t, []int{32}, slices.Collect(m.KeyIter(12)))
}

func TestValueIterScenario(t *testing.T) {
	m, err := New[int, int](10, 10)
	require.NoError(t, err)

	require.True(t, m.Insert(10, 10))
	require.True(t, m.Insert(12, 10))
	require.True(t, m.Insert(9, 3))

	require.ElementsMatch(t, []int{10, 12}, slices.Collect(m.ValueIter(10)))
	require.ElementsMatch(t, []int{9}, slices.Collect(m.ValueIter(3)))
}

func TestInsertIsIdempotent(t *testing.T) {
	m, err := New[string, int](4, 4)
	require.NoError(t, err)

	require.True(t, m.Insert("a", 1))
	require.Equal(t, 1, m.Len())

	require.False(t, m.Insert("a", 1))
	require.Equal(t, 1, m.Len())
	require.Len(t, slices.Collect(m.All()), 1)
}

func TestRemove(t *testing.T) {
	m, err := New[string, int](4, 4)
	require.NoError(t, err)

	require.False(t, m.Remove(NewRelation("a", 1)), "removing from an empty map is a no-op")

	require.True(t, m.Insert("a", 1))
	require.True(t, m.Insert("a", 2))
	require.True(t, m.Contains("a", 1))

	require.True(t, m.Remove(NewRelation("a", 1)))
	require.False(t, m.Contains("a", 1))
	require.False(t, m.Remove(NewRelation("a", 1)), "removing twice is a no-op")

	require.Equal(t, 1, m.Len())
	require.Equal(t, []int{2}, m.ValuesOf("a"))
	require.Equal(t, []string{"a"}, m.KeysOf(2))
	require.Empty(t, m.KeysOf(1))
}

func TestRelationPlacement(t *testing.T) {
	m, err := NewWithHashers[int, int](3, 5, identityHasher(), identityHasher())
	require.NoError(t, err)

	for key := range 9 {
		for value := range 11 {
			require.True(t, m.Insert(key, value))
		}
	}

	for key := range 9 {
		for value := range 11 {
			b := m.buckets.bucketAt(key%3, value%5)
			require.True(t, b.Has(NewRelation(key, value)), "relation (%d, %d) misplaced", key, value)
		}
	}
	require.Equal(t, 99, m.Len())
}

func TestCollisionsAreFilteredByEquality(t *testing.T) {
	m, err := NewWithHashers[int, int](8, 8, constantHasher(), constantHasher())
	require.NoError(t, err)

	m.Insert(1, 100)
	m.Insert(1, 101)
	m.Insert(2, 100)
	m.Insert(3, 102)

	require.Equal(t, 4, m.buckets.bucketAt(0, 0).Len())
	require.ElementsMatch(t, []int{100, 101}, m.ValuesOf(1))
	require.ElementsMatch(t, []int{100}, m.ValuesOf(2))
	require.ElementsMatch(t, []int{1, 2}, m.KeysOf(100))
	require.ElementsMatch(t, []int{3}, m.KeysOf(102))
	require.Empty(t, m.KeysOf(999))
}

func TestAllIsComplete(t *testing.T) {
	m, err := New[int, string](3, 2)
	require.NoError(t, err)

	expected := []Relation[int, string]{}
	for key := range 10 {
		for _, value := range []string{"a", "b", "c"} {
			m.Insert(key, value)
			expected = append(expected, NewRelation(key, value))
		}
	}
	m.Remove(NewRelation(4, "b"))
	expected = slices.DeleteFunc(expected, func(r Relation[int, string]) bool {
		return r == NewRelation(4, "b")
	})

	require.ElementsMatch(t, expected, slices.Collect(m.All()))
	require.Equal(t, len(expected), m.Len())
}

func TestAllIsRowMajor(t *testing.T) {
	m, err := NewWithHashers[int, int](3, 3, identityHasher(), identityHasher())
	require.NoError(t, err)

	m.Insert(2, 0)
	m.Insert(0, 2)
	m.Insert(1, 1)
	m.Insert(0, 0)

	require.Equal(t, []Relation[int, int]{
		NewRelation(0, 0),
		NewRelation(0, 2),
		NewRelation(1, 1),
		NewRelation(2, 0),
	}, slices.Collect(m.All()))
}

func TestEarlyBreak(t *testing.T) {
	m, err := New[int, int](2, 2)
	require.NoError(t, err)
	for value := range 10 {
		m.Insert(1, value)
		m.Insert(value, 1)
	}

	for _, seq := range []func() int{
		func() int {
			count := 0
			for range m.KeyIter(1) {
				count++
				if count == 3 {
					break
				}
			}
			return count
		},
		func() int {
			count := 0
			for range m.ValueIter(1) {
				count++
				if count == 3 {
					break
				}
			}
			return count
		},
		func() int {
			count := 0
			for range m.All() {
				count++
				if count == 3 {
					break
				}
			}
			return count
		},
	} {
		require.Equal(t, 3, seq())
	}

	// Mutating after an abandoned iteration is fine.
	require.True(t, m.Insert(50, 50))
}

func TestClear(t *testing.T) {
	m, err := New[int, int](4, 4)
	require.NoError(t, err)

	for i := range 20 {
		m.Insert(i, i*2)
	}
	require.False(t, m.IsEmpty())

	m.Clear()
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Len())
	require.Empty(t, slices.Collect(m.All()))
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 4, m.Cols())

	require.True(t, m.Insert(1, 2))
	require.Equal(t, []int{2}, m.ValuesOf(1))
}

func TestSequenceInvalidatedByMutation(t *testing.T) {
	newMap := func(t *testing.T) *BiMultiMap[int, int] {
		m, err := New[int, int](4, 4)
		require.NoError(t, err)
		m.Insert(1, 1)
		m.Insert(1, 2)
		m.Insert(2, 1)
		return m
	}

	t.Run("insert before consuming KeyIter", func(t *testing.T) {
		m := newMap(t)
		seq := m.KeyIter(1)
		m.Insert(1, 3)
		requireConcurrentModification(t, func() {
			for range seq {
			}
		})
	})

	t.Run("remove before consuming ValueIter", func(t *testing.T) {
		m := newMap(t)
		seq := m.ValueIter(1)
		m.Remove(NewRelation(2, 1))
		requireConcurrentModification(t, func() {
			for range seq {
			}
		})
	})

	t.Run("clear before consuming All", func(t *testing.T) {
		m := newMap(t)
		seq := m.All()
		m.Clear()
		requireConcurrentModification(t, func() {
			for range seq {
			}
		})
	})

	t.Run("insert while ranging", func(t *testing.T) {
		m := newMap(t)
		requireConcurrentModification(t, func() {
			for value := range m.KeyIter(1) {
				m.Insert(1, value+100)
			}
		})
	})

	t.Run("remove while ranging All", func(t *testing.T) {
		m := newMap(t)
		requireConcurrentModification(t, func() {
			for relation := range m.All() {
				m.Remove(relation)
			}
		})
	})

	t.Run("no-op mutations keep sequences valid", func(t *testing.T) {
		m := newMap(t)
		seq := m.KeyIter(1)
		require.False(t, m.Insert(1, 1))
		require.False(t, m.Remove(NewRelation(9, 9)))
		require.ElementsMatch(t, []int{1, 2}, slices.Collect(seq))
	})

	t.Run("fresh sequence after mutation", func(t *testing.T) {
		m := newMap(t)
		m.Insert(1, 3)
		require.ElementsMatch(t, []int{1, 2, 3}, slices.Collect(m.KeyIter(1)))
	})
}

func TestString(t *testing.T) {
	m, err := New[string, int](2, 2)
	require.NoError(t, err)
	require.Equal(t, "{}", m.String())

	m.Insert("a", 1)
	require.Equal(t, "{a: 1}", m.String())

	m.Insert("b", 2)
	require.Contains(t, []string{"{a: 1, b: 2}", "{b: 2, a: 1}"}, m.String())
}

func TestMarshalZerologObject(t *testing.T) {
	m, err := New[string, int](3, 5)
	require.NoError(t, err)
	m.Insert("a", 1)

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)
	logger.Info().Object("map", m).Msg("inspect")

	require.Contains(t, buf.String(), `"map":{"rows":3,"cols":5,"relations":1}`)
}

func TestRemoveAssertsNonNegativeCount(t *testing.T) {
	m, err := New[string, string](2, 2)
	require.NoError(t, err)
	m.Insert("a", "x")

	m.size = 0
	if bmerrors.DebugAssertionsEnabled {
		require.Panics(t, func() {
			m.Remove(NewRelation("a", "x"))
		})
		return
	}

	require.True(t, m.Remove(NewRelation("a", "x")))
	require.Equal(t, -1, m.Len())
}
