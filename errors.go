package cuckoogo

import "errors"

var (
	// ErrInvalidGrowthFactor is returned when the growth factor is below 2.
	// A factor of 1 would append sub-filters that never gain capacity.
	ErrInvalidGrowthFactor = errors.New("cuckoo: growth factor must be at least 2")

	// ErrInvalidGrowthThreshold is returned when the growth threshold is
	// outside (0, 1].
	ErrInvalidGrowthThreshold = errors.New("cuckoo: growth threshold must be in (0, 1]")
)
