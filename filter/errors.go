package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidErrorRate is returned when the target false positive
	// rate is outside (0, 1).
	ErrInvalidErrorRate = errors.New("cuckoo: error rate must be in (0, 1)")

	// ErrInvalidBucketSize is returned when the bucket size is below 1.
	ErrInvalidBucketSize = errors.New("cuckoo: bucket size must be at least 1")

	// ErrInvalidCapacity is returned when the requested capacity is not
	// positive or the resolved bucket count is not a power of two.
	ErrInvalidCapacity = errors.New("cuckoo: capacity must be positive")

	// ErrInvalidFingerprintBits is returned when the fingerprint width
	// falls outside [1, 64].
	ErrInvalidFingerprintBits = errors.New("cuckoo: fingerprint bits must be in [1, 64]")

	// ErrInvalidMaxKicks is returned when the relocation budget is below 1.
	ErrInvalidMaxKicks = errors.New("cuckoo: max kicks must be at least 1")

	// ErrNilHasher is returned when no hash primitive is configured.
	ErrNilHasher = errors.New("cuckoo: hasher must not be nil")
)

// ErrFilterFull indicates that an insert exhausted its relocation budget.
// The filter is still valid and all previously stored items remain
// retrievable; only the new item was not stored.
type ErrFilterFull struct {
	Count    int // Items stored when the insert failed
	Capacity int // Total fingerprint slots
}

func (e *ErrFilterFull) Error() string {
	return fmt.Sprintf("cuckoo: filter is approaching its capacity (%d/%d)", e.Count, e.Capacity)
}
