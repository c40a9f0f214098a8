package cuckoogo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    insertCounter prometheus.Counter
//	    growCounter   prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordInsert(duration time.Duration, err error) {
//	    p.insertCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordContains is called after each membership query.
	// hit reports whether the filter answered "maybe present".
	RecordContains(duration time.Duration, hit bool)

	// RecordDelete is called after each delete operation.
	// found reports whether an item was removed.
	RecordDelete(duration time.Duration, found bool)

	// RecordGrow is called after a new sub-filter is appended.
	RecordGrow(newCapacity, numFilters int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)  {}
func (NoopMetricsCollector) RecordContains(time.Duration, bool) {}
func (NoopMetricsCollector) RecordDelete(time.Duration, bool)   {}
func (NoopMetricsCollector) RecordGrow(int, int)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount        atomic.Int64
	InsertErrors       atomic.Int64
	InsertTotalNanos   atomic.Int64
	ContainsCount      atomic.Int64
	ContainsHits       atomic.Int64
	ContainsTotalNanos atomic.Int64
	DeleteCount        atomic.Int64
	DeleteFound        atomic.Int64
	GrowCount          atomic.Int64
	LastGrowCapacity   atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordContains implements MetricsCollector.
func (b *BasicMetricsCollector) RecordContains(duration time.Duration, hit bool) {
	b.ContainsCount.Add(1)
	b.ContainsTotalNanos.Add(duration.Nanoseconds())
	if hit {
		b.ContainsHits.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, found bool) {
	b.DeleteCount.Add(1)
	if found {
		b.DeleteFound.Add(1)
	}
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(newCapacity, _ int) {
	b.GrowCount.Add(1)
	b.LastGrowCapacity.Store(int64(newCapacity))
}
