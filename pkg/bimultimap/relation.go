package bimultimap

import "fmt"

// Relation is a single (key, value) pair stored in a BiMultiMap.
type Relation[K comparable, V comparable] struct {
	Key   K
	Value V
}

// NewRelation returns the relation between key and value.
func NewRelation[K comparable, V comparable](key K, value V) Relation[K, V] {
	return Relation[K, V]{Key: key, Value: value}
}

func (r Relation[K, V]) String() string {
	return fmt.Sprintf("%v: %v", r.Key, r.Value)
}
