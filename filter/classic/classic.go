// Package classic provides the object-bucket cuckoo filter: each bucket
// owns a slot list holding its fingerprints. It trades memory overhead
// for simplicity; the compact package stores the same table bit-packed.
package classic

import (
	"fmt"
	"math/rand/v2"

	"github.com/hupe1980/cuckoogo/filter"
)

// Compile-time check to ensure Filter satisfies the filter contract.
var _ filter.Filter = (*Filter)(nil)

// Options contains configuration options for the classic filter.
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
// classic filter.
var DefaultOptions = Options{
	BucketSize: filter.DefaultBucketSize,
	MaxKicks:   filter.DefaultMaxKicks,
	Hasher:     filter.DefaultHasher,
	Seed:       0,
}

// Filter is a fixed-capacity cuckoo filter over object buckets.
// It is not safe for concurrent use; callers that share a filter across
// goroutines must provide their own mutual exclusion.
type Filter struct {
	params  filter.Params
	buckets []bucket
	count   int
	rng     *rand.Rand
}

// New creates a classic cuckoo filter sized for the given item capacity
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

	buckets := make([]bucket, numBuckets)
	for i := range buckets {
		buckets[i] = newBucket(opts.BucketSize)
	}

	return &Filter{
		params:  params,
		buckets: buckets,
		rng:     rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
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

	if f.buckets[i1].insert(fp) || f.buckets[i2].insert(fp) {
		f.count++
		return nil
	}

	// Both candidate buckets are full; relocate residents to make room.
	index := i1
	for kick := 0; kick < f.params.MaxKicks; kick++ {
		fp = f.buckets[index].swap(fp, f.rng)
		index = f.params.AltIndex(index, fp)

		if f.buckets[index].insert(fp) {
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

	return f.buckets[i1].contains(fp) || f.buckets[i2].contains(fp)
}

// Delete removes one occurrence of the item and reports whether one was
// found.
func (f *Filter) Delete(item []byte) bool {
	h := f.params.Hasher(item)
	fp := f.params.Fingerprint(h)
	i1 := f.params.PrimaryIndex(h)
	i2 := f.params.AltIndex(i1, fp)

	if f.buckets[i1].remove(fp) || f.buckets[i2].remove(fp) {
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

// Reset removes all items without reallocating the table.
func (f *Filter) Reset() {
	for i := range f.buckets {
		f.buckets[i].reset()
	}
	f.count = 0
}

// String returns a diagnostic summary of the filter.
func (f *Filter) String() string {
	return fmt.Sprintf("ClassicFilter(count=%d, capacity=%d, fingerprintBits=%d, bucketSize=%d)",
		f.count, f.Capacity(), f.params.FingerprintBits, f.params.BucketSize)
}
