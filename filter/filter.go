// Package filter provides interfaces and shared types for cuckoo filter
// implementations.
package filter

import (
	"encoding/binary"
	"math/bits"

	"github.com/spaolacci/murmur3"
)

// Hasher maps an arbitrary byte sequence to a uniformly distributed uint64.
// It must be deterministic within a single process run; cryptographic
// strength is not required.
type Hasher func(data []byte) uint64

// DefaultHasher is the hash primitive used when none is supplied.
var DefaultHasher Hasher = murmur3.Sum64

const (
	// DefaultBucketSize is the number of fingerprint slots per bucket.
	// Four closely approaches the best size for false positive rates
	// between 0.00001 and 0.002 (see Fan et al.); for a target rate
	// above 0.002 a bucket size of 2 is more space efficient.
	DefaultBucketSize = 4

	// DefaultMaxKicks is the relocation budget used by Fan et al.
	DefaultMaxKicks = 500
)

// Filter is the common contract of the cuckoo filter implementations.
type Filter interface {
	// Insert adds an item to the filter. It returns *ErrFilterFull when
	// the relocation budget is exhausted; the filter remains valid.
	Insert(item []byte) error

	// Contains reports whether the item might be in the filter. False
	// means the item is definitely not present.
	Contains(item []byte) bool

	// Delete removes one previously inserted occurrence of the item.
	// It returns false if the item is not present.
	Delete(item []byte) bool

	// Count returns the number of items currently stored.
	Count() int

	// Capacity returns the total number of fingerprint slots.
	Capacity() int

	// LoadFactor returns Count divided by Capacity.
	LoadFactor() float64
}

// Params holds the resolved shape of a single cuckoo filter table. It is
// produced by the implementation constructors and consumed by the index
// and fingerprint derivation below, which both implementations share so
// that their behavior is identical under the same hasher and seed.
type Params struct {
	// NumBuckets is the bucket count. It is always a power of two so
	// index wraparound reduces to masking.
	NumBuckets int

	// BucketSize is the number of fingerprint slots per bucket.
	BucketSize int

	// FingerprintBits is the stored fingerprint width, in [1, 64].
	FingerprintBits int

	// MaxKicks bounds the relocation walk during Insert.
	MaxKicks int

	// Hasher is the hash primitive for items and fingerprints.
	Hasher Hasher

	// Seed initializes the per-instance PRNG that picks eviction
	// victims, keeping relocation walks reproducible.
	Seed uint64
}

// Validate reports the first configuration fault, if any.
func (p Params) Validate() error {
	if p.NumBuckets < 1 || bits.OnesCount(uint(p.NumBuckets)) != 1 {
		return ErrInvalidCapacity
	}
	if p.BucketSize < 1 {
		return ErrInvalidBucketSize
	}
	if p.FingerprintBits < 1 || p.FingerprintBits > 64 {
		return ErrInvalidFingerprintBits
	}
	if p.MaxKicks < 1 {
		return ErrInvalidMaxKicks
	}
	if p.Hasher == nil {
		return ErrNilHasher
	}
	return nil
}

// Capacity returns the total slot count of the table.
func (p Params) Capacity() int {
	return p.NumBuckets * p.BucketSize
}

func (p Params) indexMask() uint64 {
	return uint64(p.NumBuckets - 1)
}

func (p Params) fingerprintMask() uint64 {
	if p.FingerprintBits == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << p.FingerprintBits) - 1
}

// Fingerprint truncates the item hash to FingerprintBits. Zero is
// reserved as the empty-slot sentinel of the packed layout, so a
// truncation that yields zero is forced to one; both layouts apply the
// rule to stay interchangeable.
func (p Params) Fingerprint(h uint64) uint64 {
	fp := h & p.fingerprintMask()
	if fp == 0 {
		fp = 1
	}
	return fp
}

// PrimaryIndex returns the first candidate bucket for the item hash.
func (p Params) PrimaryIndex(h uint64) int {
	return int(h & p.indexMask())
}

// AltIndex returns the partner bucket of index i for the given
// fingerprint. XOR-ing with the fingerprint hash makes the mapping an
// involution: AltIndex(AltIndex(i, fp), fp) == i, which is what lets a
// relocated fingerprint find its other bucket without the original item
// (partial-key cuckoo hashing).
func (p Params) AltIndex(i int, fp uint64) int {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], fp)
	return i ^ int(p.Hasher(buf[:])&p.indexMask())
}
