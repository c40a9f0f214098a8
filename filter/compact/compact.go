// Package compact provides the bit-packed cuckoo filter: the whole table
// is one contiguous bit array of numBuckets*bucketSize*fingerprintBits
// bits, with bucket b slot s at bit offset (b*bucketSize+s)*fingerprintBits.
// The all-zero field is the empty-slot sentinel, which is why fingerprints
// are never zero. Behavior is identical to the classic package under the
// same hasher and seed; only the storage differs.
package compact

import (
	"fmt"
	"math/rand/v2"

	"github.com/hupe1980/cuckoogo/filter"
	"github.com/hupe1980/cuckoogo/internal/bitfield"
)

// Compile-time check to ensure Filter satisfies the filter contract.
var _ filter.Filter = (*Filter)(nil)

// Options contains configuration options for the compact filter.
type Options struct {
	// BucketSize is the number of fingerprint slots per bucket.
	BucketSize int

	// MaxKicks bounds the relocation walk during Insert.
	MaxKicks int

	// Hasher is the hash primitive for items and fingerprints.
	Hasher filter.Hasher

	// Seed initializes the eviction PRNG.
	Seed uint64
}

// DefaultOptions contains the default configuration options for the
// compact filter.
var DefaultOptions = Options{
	BucketSize: filter.DefaultBucketSize,
	MaxKicks:   filter.DefaultMaxKicks,
	Hasher:     filter.DefaultHasher,
	Seed:       0,
}

// Filter is a fixed-capacity cuckoo filter over a packed bit array.
// It is not safe for concurrent use; callers that share a filter across
// goroutines must provide their own mutual exclusion.
type Filter struct {
	params filter.Params
	fields *bitfield.Array
	count  int
	rng    *rand.Rand

	// scratch for victim selection, reused across swaps
	candidates []int
}

// New creates a compact cuckoo filter sized for the given item capacity
// and target false positive rate.
func New(capacity int, errorRate float64, optFns ...func(o *Options)) (*Filter, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	fpBits, err := filter.FingerprintBits(errorRate, opts.BucketSize)
	if err != nil {
		return nil, err
	}

	numBuckets, err := filter.NumBuckets(capacity, opts.BucketSize)
	if err != nil {
		return nil, err
	}

	params := filter.Params{
		NumBuckets:      numBuckets,
		BucketSize:      opts.BucketSize,
		FingerprintBits: fpBits,
		MaxKicks:        opts.MaxKicks,
		Hasher:          opts.Hasher,
		Seed:            opts.Seed,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Filter{
		params:     params,
		fields:     bitfield.New(numBuckets*opts.BucketSize, fpBits),
		rng:        rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
		candidates: make([]int, 0, opts.BucketSize),
	}, nil
}

// Insert adds an item to the filter. It returns *filter.ErrFilterFull
// when the relocation budget is exhausted. The table stays valid either
// way: every relocation step is a net-neutral exchange, so no stored
// fingerprint is lost or duplicated by a failed insert.
func (f *Filter) Insert(item []byte) error {
	h := f.params.Hasher(item)
	fp := f.params.Fingerprint(h)
	i1 := f.params.PrimaryIndex(h)
	i2 := f.params.AltIndex(i1, fp)

	if f.bucketInsert(i1, fp) || f.bucketInsert(i2, fp) {
		f.count++
		return nil
	}

	// Both candidate buckets are full; relocate residents to make room.
	index := i1
	for kick := 0; kick < f.params.MaxKicks; kick++ {
		fp = f.bucketSwap(index, fp)
		index = f.params.AltIndex(index, fp)

		if f.bucketInsert(index, fp) {
			f.count++
			return nil
		}
	}

	return &filter.ErrFilterFull{Count: f.count, Capacity: f.Capacity()}
}

// Contains reports whether the item might be in the filter.
func (f *Filter) Contains(item []byte) bool {
	h := f.params.Hasher(item)
	fp := f.params.Fingerprint(h)
	i1 := f.params.PrimaryIndex(h)
	i2 := f.params.AltIndex(i1, fp)

	return f.bucketContains(i1, fp) || f.bucketContains(i2, fp)
}

// Delete removes one occurrence of the item and reports whether one was
// found.
func (f *Filter) Delete(item []byte) bool {
	h := f.params.Hasher(item)
	fp := f.params.Fingerprint(h)
	i1 := f.params.PrimaryIndex(h)
	i2 := f.params.AltIndex(i1, fp)

	if f.bucketRemove(i1, fp) || f.bucketRemove(i2, fp) {
		f.count--
		return true
	}
	return false
}

// Count returns the number of items currently stored.
func (f *Filter) Count() int {
	return f.count
}

// Capacity returns the total number of fingerprint slots.
func (f *Filter) Capacity() int {
	return f.params.Capacity()
}

// LoadFactor returns the occupancy ratio of the filter, in [0, 1].
func (f *Filter) LoadFactor() float64 {
	return float64(f.count) / float64(f.Capacity())
}

// FingerprintBits returns the stored fingerprint width.
func (f *Filter) FingerprintBits() int {
	return f.params.FingerprintBits
}

// SizeInBits returns the storage footprint of the packed table.
func (f *Filter) SizeInBits() uint64 {
	return f.fields.Bits()
}

// Reset removes all items without reallocating the table.
func (f *Filter) Reset() {
	f.fields.Reset()
	f.count = 0
}

// String returns a diagnostic summary of the filter.
func (f *Filter) String() string {
	return fmt.Sprintf("CompactFilter(count=%d, capacity=%d, fingerprintBits=%d, bucketSize=%d)",
		f.count, f.Capacity(), f.params.FingerprintBits, f.params.BucketSize)
}

// slot returns the field index of slot s of bucket b.
func (f *Filter) slot(b, s int) int {
	return b*f.params.BucketSize + s
}

// bucketInsert stores fp in the first empty slot of bucket b, reporting
// false when the bucket is full.
func (f *Filter) bucketInsert(b int, fp uint64) bool {
	for s := 0; s < f.params.BucketSize; s++ {
		idx := f.slot(b, s)
		if f.fields.Get(idx) == 0 {
			f.fields.Set(idx, fp)
			return true
		}
	}
	return false
}

func (f *Filter) bucketContains(b int, fp uint64) bool {
	for s := 0; s < f.params.BucketSize; s++ {
		if f.fields.Get(f.slot(b, s)) == fp {
			return true
		}
	}
	return false
}

// bucketRemove clears the first slot of bucket b matching fp and reports
// whether one was found.
func (f *Filter) bucketRemove(b int, fp uint64) bool {
	for s := 0; s < f.params.BucketSize; s++ {
		idx := f.slot(b, s)
		if f.fields.Get(idx) == fp {
			f.fields.Set(idx, 0)
			return true
		}
	}
	return false
}

// bucketSwap stores fp into a uniformly random occupied slot of bucket b
// and returns the evicted fingerprint. Slots already holding fp are
// avoided when any other occupied slot exists: swapping a fingerprint
// with its own copy makes no relocation progress. The bucket must not be
// empty.
func (f *Filter) bucketSwap(b int, fp uint64) uint64 {
	f.candidates = f.candidates[:0]
	for s := 0; s < f.params.BucketSize; s++ {
		idx := f.slot(b, s)
		if v := f.fields.Get(idx); v != 0 && v != fp {
			f.candidates = append(f.candidates, idx)
		}
	}
	if len(f.candidates) == 0 {
		for s := 0; s < f.params.BucketSize; s++ {
			idx := f.slot(b, s)
			if f.fields.Get(idx) != 0 {
				f.candidates = append(f.candidates, idx)
			}
		}
	}

	idx := f.candidates[f.rng.IntN(len(f.candidates))]
	victim := f.fields.Get(idx)
	f.fields.Set(idx, fp)
	return victim
}
