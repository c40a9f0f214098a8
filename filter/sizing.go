package filter

import "math"

// FingerprintBits returns the minimal fingerprint width that sustains the
// target false positive rate:
//
//	f = ceil(log2(1/errorRate) + log2(2*bucketSize))
//
// A longer fingerprint lowers the false positive rate but barely affects
// the achievable load factor, so the minimum is the right choice.
func FingerprintBits(errorRate float64, bucketSize int) (int, error) {
	if errorRate <= 0 || errorRate >= 1 {
		return 0, ErrInvalidErrorRate
	}
	if bucketSize < 1 {
		return 0, ErrInvalidBucketSize
	}

	f := int(math.Ceil(math.Log2(1/errorRate) + math.Log2(2*float64(bucketSize))))
	if f < 1 {
		f = 1
	}
	if f > 64 {
		return 0, ErrInvalidFingerprintBits
	}
	return f, nil
}

// NumBuckets returns the bucket count for the requested item capacity:
// the smallest power of two that is at least ceil(capacity/bucketSize).
// Power-of-two sizing lets index wraparound use masking instead of
// modulo, which the partial-key XOR trick depends on.
func NumBuckets(capacity, bucketSize int) (int, error) {
	if capacity < 1 {
		return 0, ErrInvalidCapacity
	}
	if bucketSize < 1 {
		return 0, ErrInvalidBucketSize
	}

	n := (capacity + bucketSize - 1) / bucketSize
	return nextPowerOfTwo(n), nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
