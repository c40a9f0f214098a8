package cuckoogo

import "github.com/hupe1980/cuckoogo/filter"

type options struct {
	bucketSize      int
	maxKicks        int
	growthFactor    int
	growthThreshold float64
	hasher          filter.Hasher
	seed            uint64
	logger          *Logger
	metrics         MetricsCollector
}

// Option configures ScalableFilter constructor behavior.
type Option func(*options)

// WithBucketSize configures the number of fingerprint slots per bucket.
//
// The default of 4 closely approaches the best size for false positive
// rates between 0.00001 and 0.002; for a target rate above 0.002 a
// bucket size of 2 is more space efficient.
func WithBucketSize(size int) Option {
	return func(o *options) {
		o.bucketSize = size
	}
}

// WithMaxKicks configures the relocation budget of each sub-filter.
func WithMaxKicks(kicks int) Option {
	return func(o *options) {
		o.maxKicks = kicks
	}
}

// WithGrowthFactor configures how much larger each appended sub-filter
// is than its predecessor. The default is 2.
func WithGrowthFactor(factor int) Option {
	return func(o *options) {
		o.growthFactor = factor
	}
}

// WithGrowthThreshold configures the tail sub-filter load factor at
// which the filter grows proactively, before relocation walks start
// failing near saturation. The default is 0.9.
func WithGrowthThreshold(threshold float64) Option {
	return func(o *options) {
		o.growthThreshold = threshold
	}
}

// WithHasher configures the hash primitive. The default is murmur3.
// Supplying a deterministic stand-in makes behavior fully reproducible
// in tests.
//
// If nil is passed, filter.DefaultHasher is used.
func WithHasher(h filter.Hasher) Option {
	return func(o *options) {
		if h == nil {
			h = filter.DefaultHasher
		}
		o.hasher = h
	}
}

// WithSeed configures the seed of the per-sub-filter eviction PRNG.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLogger configures structured logging. The default discards all
// output.
//
// If nil is passed, NoopLogger() is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures operational metrics collection.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
