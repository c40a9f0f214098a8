// Package cuckoogo provides probabilistic set-membership filters for Go.
//
// A cuckoo filter answers "has this item possibly been seen?" with a
// bounded false positive rate and no false negatives for stored items.
// Unlike a Bloom filter it also supports deletion. Items are stored as
// short fingerprints in a table of small buckets; each item has two
// candidate buckets, and inserts into full buckets relocate existing
// fingerprints cuckoo-hashing style.
//
// Three variants are provided:
//
//   - classic.Filter: fixed capacity, object buckets (simple, more memory)
//   - compact.Filter: fixed capacity, one packed bit array
//     (~fingerprintBits bits per slot)
//   - ScalableFilter: unbounded capacity, composes compact sub-filters
//     of geometrically increasing size
//
// # Quick Start
//
//	f, _ := cuckoogo.New(10_000, 0.001)
//	_ = f.Insert([]byte("alice"))
//	f.Contains([]byte("alice")) // true
//	f.Contains([]byte("mallory")) // false (with probability ~0.999)
//	f.Delete([]byte("alice"))
//
// A fixed-capacity filter is a drop-in substitution:
//
//	f, _ := compact.New(10_000, 0.001, func(o *compact.Options) {
//	    o.BucketSize = 2
//	})
//
// Items are byte sequences; callers convert values to bytes before
// hashing. The hash primitive defaults to murmur3 and can be replaced
// via WithHasher (or Options.Hasher on the fixed-capacity filters).
//
// All filters assume a single owner: they are not safe for concurrent
// use without external locking.
package cuckoogo
