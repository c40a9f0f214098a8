package cuckoogo

import (
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/cuckoogo/filter"
	"github.com/hupe1980/cuckoogo/filter/compact"
)

// ScalableFilter is a cuckoo filter without a fixed capacity bound. It
// composes an append-only sequence of bit-packed sub-filters of
// geometrically increasing capacity: inserts always target the newest
// sub-filter, and a new, larger sub-filter is appended when the tail
// saturates. Once created, a sub-filter's capacity and fingerprint width
// never change.
//
// ScalableFilter is not safe for concurrent use; callers that share one
// across goroutines must provide their own mutual exclusion, covering
// growth the same as inserts and deletes.
type ScalableFilter struct {
	filters      []*compact.Filter
	errorRate    float64
	tailCapacity int
	opts         options
}

// New creates a ScalableFilter whose first sub-filter is sized for
// initialCapacity items at the given target false positive rate.
func New(initialCapacity int, errorRate float64, optFns ...Option) (*ScalableFilter, error) {
	opts := options{
		bucketSize:      filter.DefaultBucketSize,
		maxKicks:        filter.DefaultMaxKicks,
		growthFactor:    2,
		growthThreshold: 0.9,
		hasher:          filter.DefaultHasher,
		seed:            0,
		logger:          NoopLogger(),
		metrics:         NoopMetricsCollector{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.growthFactor < 2 {
		return nil, ErrInvalidGrowthFactor
	}
	if opts.growthThreshold <= 0 || opts.growthThreshold > 1 {
		return nil, ErrInvalidGrowthThreshold
	}

	s := &ScalableFilter{
		errorRate:    errorRate,
		tailCapacity: initialCapacity,
		opts:         opts,
	}

	first, err := s.newSubFilter(initialCapacity)
	if err != nil {
		return nil, err
	}
	s.filters = append(s.filters, first)

	return s, nil
}

// Insert adds an item to the filter, growing it as needed. It only
// fails when a freshly appended sub-filter cannot store the item, which
// does not happen for well-behaved input.
func (s *ScalableFilter) Insert(item []byte) error {
	start := time.Now()
	err := s.insert(item)
	s.opts.metrics.RecordInsert(time.Since(start), err)
	return err
}

func (s *ScalableFilter) insert(item []byte) error {
	tail := s.filters[len(s.filters)-1]

	// Grow proactively before the tail saturates; relocation walks get
	// expensive and failure-prone near capacity.
	if tail.LoadFactor() >= s.opts.growthThreshold {
		if err := s.grow(); err != nil {
			return err
		}
		tail = s.filters[len(s.filters)-1]
	}

	err := tail.Insert(item)

	var full *filter.ErrFilterFull
	if errors.As(err, &full) {
		s.opts.logger.LogInsertRetry(err, len(s.filters))
		if err := s.grow(); err != nil {
			return err
		}
		return s.filters[len(s.filters)-1].Insert(item)
	}

	return err
}

// Contains reports whether the item might be in the filter. Sub-filters
// are scanned newest first: recently inserted items tend to be queried
// soon after insertion, and scan order does not change the outcome.
func (s *ScalableFilter) Contains(item []byte) bool {
	start := time.Now()

	hit := false
	for i := len(s.filters) - 1; i >= 0; i-- {
		if s.filters[i].Contains(item) {
			hit = true
			break
		}
	}

	s.opts.metrics.RecordContains(time.Since(start), hit)
	return hit
}

// Delete removes one occurrence of the item from the first sub-filter
// that holds it, scanning newest first. It returns false if the item is
// in none of them.
func (s *ScalableFilter) Delete(item []byte) bool {
	start := time.Now()

	found := false
	for i := len(s.filters) - 1; i >= 0; i-- {
		if s.filters[i].Delete(item) {
			found = true
			break
		}
	}

	s.opts.metrics.RecordDelete(time.Since(start), found)
	s.opts.logger.LogDelete(found)
	return found
}

// Count returns the number of items stored across all sub-filters.
func (s *ScalableFilter) Count() int {
	count := 0
	for _, f := range s.filters {
		count += f.Count()
	}
	return count
}

// Capacity returns the total number of fingerprint slots across all
// sub-filters.
func (s *ScalableFilter) Capacity() int {
	capacity := 0
	for _, f := range s.filters {
		capacity += f.Capacity()
	}
	return capacity
}

// LoadFactor returns the aggregate occupancy ratio across all
// sub-filters.
func (s *ScalableFilter) LoadFactor() float64 {
	return float64(s.Count()) / float64(s.Capacity())
}

// NumFilters returns the number of sub-filters, for diagnostics.
func (s *ScalableFilter) NumFilters() int {
	return len(s.filters)
}

// String returns a diagnostic summary of the filter.
func (s *ScalableFilter) String() string {
	return fmt.Sprintf("ScalableFilter(count=%d, capacity=%d, filters=%d)",
		s.Count(), s.Capacity(), s.NumFilters())
}

func (s *ScalableFilter) newSubFilter(capacity int) (*compact.Filter, error) {
	// Each sub-filter gets its own PRNG stream so relocation walks stay
	// reproducible as the sequence grows.
	seed := s.opts.seed + uint64(len(s.filters))

	return compact.New(capacity, s.errorRate, func(o *compact.Options) {
		o.BucketSize = s.opts.bucketSize
		o.MaxKicks = s.opts.maxKicks
		o.Hasher = s.opts.hasher
		o.Seed = seed
	})
}

func (s *ScalableFilter) grow() error {
	newCapacity := s.tailCapacity * s.opts.growthFactor

	f, err := s.newSubFilter(newCapacity)
	if err != nil {
		return err
	}

	s.filters = append(s.filters, f)
	s.tailCapacity = newCapacity

	s.opts.logger.LogGrow(f.Capacity(), len(s.filters))
	s.opts.metrics.RecordGrow(f.Capacity(), len(s.filters))
	return nil
}
