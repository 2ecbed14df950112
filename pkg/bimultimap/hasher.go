package bimultimap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher produces a 64-bit digest for a value. A Hasher must be deterministic
// for its own lifetime: the same value always yields the same digest from the
// same Hasher. Digests need not agree across Hasher instances.
type Hasher[T any] interface {
	Hash(value T) uint64
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc[T any] func(value T) uint64

// Hash calls f(value).
func (f HasherFunc[T]) Hash(value T) uint64 {
	return f(value)
}

// SeededHasher hashes any comparable value with a randomized seed. It is the
// default Hasher of a BiMultiMap.
type SeededHasher[T comparable] struct {
	seed maphash.Seed
}

// NewSeededHasher returns a SeededHasher with a fresh random seed.
func NewSeededHasher[T comparable]() SeededHasher[T] {
	return SeededHasher[T]{seed: maphash.MakeSeed()}
}

// NewSeededHasherFromSeed returns a SeededHasher using the given seed, allowing
// several hashers to share one seed.
func NewSeededHasherFromSeed[T comparable](seed maphash.Seed) SeededHasher[T] {
	return SeededHasher[T]{seed: seed}
}

func (h SeededHasher[T]) Hash(value T) uint64 {
	return maphash.Comparable(h.seed, value)
}

// StringHasher hashes string-like values with xxHash64. A zero seed produces
// the same digests as xxhash.Sum64String, which are stable across processes.
type StringHasher[T ~string] struct {
	seed uint64
}

// NewStringHasher returns a StringHasher using the given seed.
func NewStringHasher[T ~string](seed uint64) StringHasher[T] {
	return StringHasher[T]{seed: seed}
}

func (h StringHasher[T]) Hash(value T) uint64 {
	if h.seed == 0 {
		return xxhash.Sum64String(string(value))
	}

	digest := xxhash.NewWithSeed(h.seed)
	_, _ = digest.WriteString(string(value))
	return digest.Sum64()
}
