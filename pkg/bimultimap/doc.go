// Package bimultimap implements a bidirectional multimap: a set of (key, value)
// relations that can be queried efficiently by key and by value.
//
// Relations are stored in a fixed rows x cols grid of buckets. A relation
// (k, v) always lives in the bucket at (hash(k) mod rows, hash(v) mod cols),
// so all values of a key share a row and all keys of a value share a column.
// Looking up by key scans one contiguous row; looking up by value strides down
// a column and is therefore expected to be slower at equal fan-out.
//
// The grid is never resized. Choosing rows and cols close to the expected
// number of distinct keys and values keeps buckets small; exceeding them only
// increases collisions.
//
// A BiMultiMap is not safe for concurrent mutation. Sequences returned by
// KeyIter, ValueIter and All panic with ErrConcurrentModification when they
// are consumed after (or while) the map is modified.
package bimultimap
