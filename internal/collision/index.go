// Package collision provides a hash-keyed index that stays correct when two
// distinct keys share a 64-bit hash.
package collision

// Key identifies an entry independently of its hash: the owning parent's
// sequence number and the entry's own name.
type Key struct {
	Parent int
	Name   string
}

type entry[V any] struct {
	key   Key
	value V
}

// Index maps hashed composite keys to values. Every lookup verifies the full
// Key, so colliding hashes chain instead of merging. The zero value is not
// usable; create one with NewIndex.
type Index[V any] struct {
	buckets    map[uint64][]entry[V]
	count      int
	collisions int
}

// NewIndex creates an empty index sized for roughly capacity entries.
func NewIndex[V any](capacity int) *Index[V] {
	return &Index[V]{
		buckets: make(map[uint64][]entry[V], capacity),
	}
}

// Get returns the value stored under hash whose Key equals key.
func (ix *Index[V]) Get(hash uint64, key Key) (V, bool) {
	for _, e := range ix.buckets[hash] {
		if e.key == key {
			return e.value, true
		}
	}

	var zero V

	return zero, false
}

// Put stores value under hash and key, replacing any value with an equal Key.
//
// It reports whether the hash was already used by a different Key. Such a
// collision is not an error: the new entry is chained next to the old one.
func (ix *Index[V]) Put(hash uint64, key Key, value V) bool {
	bucket := ix.buckets[hash]
	for i := range bucket {
		if bucket[i].key == key {
			bucket[i].value = value
			return false
		}
	}

	collided := len(bucket) > 0
	if collided {
		ix.collisions++
	}

	ix.buckets[hash] = append(bucket, entry[V]{key: key, value: value})
	ix.count++

	return collided
}

// Len returns the number of distinct keys stored.
func (ix *Index[V]) Len() int {
	return ix.count
}

// Collisions returns how many Put calls landed on an occupied hash with a
// different Key.
func (ix *Index[V]) Collisions() int {
	return ix.collisions
}

// HasCollision returns true if any collision has been observed.
func (ix *Index[V]) HasCollision() bool {
	return ix.collisions > 0
}

// Reset clears all entries and counters. Map capacity is kept.
func (ix *Index[V]) Reset() {
	clear(ix.buckets)
	ix.count = 0
	ix.collisions = 0
}
