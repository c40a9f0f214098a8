package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintBits(t *testing.T) {
	t.Run("KnownSizes", func(t *testing.T) {
		tests := []struct {
			name       string
			errorRate  float64
			bucketSize int
			want       int
		}{
			// ceil(log2(1e6) + log2(12)) = ceil(19.93 + 3.59) = 24
			{"LowErrorRateWideBucket", 0.000001, 6, 24},
			// ceil(log2(100) + log2(4)) = ceil(6.65 + 2) = 9
			{"OnePercentPairBucket", 0.01, 2, 9},
			// ceil(log2(1000) + log2(8)) = ceil(9.97 + 3) = 13
			{"DefaultBucket", 0.001, 4, 13},
			// ceil(log2(10) + log2(2)) = ceil(3.33 + 1) = 5
			{"HighErrorRateSingleSlot", 0.1, 1, 5},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := FingerprintBits(tt.errorRate, tt.bucketSize)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("InvalidErrorRate", func(t *testing.T) {
		for _, rate := range []float64{0, 1, -0.5, 1.5} {
			_, err := FingerprintBits(rate, 4)
			assert.ErrorIs(t, err, ErrInvalidErrorRate, "rate %v", rate)
		}
	})

	t.Run("InvalidBucketSize", func(t *testing.T) {
		_, err := FingerprintBits(0.01, 0)
		assert.ErrorIs(t, err, ErrInvalidBucketSize)
	})
}

func TestNumBuckets(t *testing.T) {
	t.Run("RoundsUpToPowerOfTwo", func(t *testing.T) {
		tests := []struct {
			capacity   int
			bucketSize int
			want       int
		}{
			{16, 2, 8},
			{1000, 4, 256},
			{1, 1, 1},
			{5, 4, 2},
			{9, 4, 4},
			{1024, 4, 256},
		}

		for _, tt := range tests {
			got, err := NumBuckets(tt.capacity, tt.bucketSize)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "capacity=%d bucketSize=%d", tt.capacity, tt.bucketSize)
		}
	})

	t.Run("InvalidCapacity", func(t *testing.T) {
		_, err := NumBuckets(0, 4)
		assert.ErrorIs(t, err, ErrInvalidCapacity)

		_, err = NumBuckets(-5, 4)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("InvalidBucketSize", func(t *testing.T) {
		_, err := NumBuckets(16, 0)
		assert.ErrorIs(t, err, ErrInvalidBucketSize)
	})
}

func TestParams(t *testing.T) {
	valid := Params{
		NumBuckets:      8,
		BucketSize:      2,
		FingerprintBits: 9,
		MaxKicks:        DefaultMaxKicks,
		Hasher:          DefaultHasher,
	}

	t.Run("Validate", func(t *testing.T) {
		require.NoError(t, valid.Validate())

		p := valid
		p.NumBuckets = 6 // not a power of two
		assert.ErrorIs(t, p.Validate(), ErrInvalidCapacity)

		p = valid
		p.BucketSize = 0
		assert.ErrorIs(t, p.Validate(), ErrInvalidBucketSize)

		p = valid
		p.FingerprintBits = 65
		assert.ErrorIs(t, p.Validate(), ErrInvalidFingerprintBits)

		p = valid
		p.MaxKicks = 0
		assert.ErrorIs(t, p.Validate(), ErrInvalidMaxKicks)

		p = valid
		p.Hasher = nil
		assert.ErrorIs(t, p.Validate(), ErrNilHasher)
	})

	t.Run("FingerprintNeverZero", func(t *testing.T) {
		// A hash whose low bits are zero must not produce the empty
		// sentinel.
		assert.Equal(t, uint64(1), valid.Fingerprint(0))
		assert.Equal(t, uint64(1), valid.Fingerprint(1<<9))
		assert.Equal(t, uint64(0x1FF), valid.Fingerprint(0x1FF))
	})

	t.Run("FingerprintTruncates", func(t *testing.T) {
		assert.Equal(t, uint64(0x155), valid.Fingerprint(0xFFF555))
	})

	t.Run("AltIndexIsInvolution", func(t *testing.T) {
		for fp := uint64(1); fp < 1<<9; fp += 37 {
			for i := 0; i < valid.NumBuckets; i++ {
				alt := valid.AltIndex(i, fp)
				require.Less(t, alt, valid.NumBuckets)
				require.Equal(t, i, valid.AltIndex(alt, fp), "i=%d fp=%d", i, fp)
			}
		}
	})

	t.Run("PrimaryIndexMasks", func(t *testing.T) {
		assert.Equal(t, 5, valid.PrimaryIndex(5))
		assert.Equal(t, 5, valid.PrimaryIndex(8+5))
		assert.Equal(t, 0, valid.PrimaryIndex(1<<32))
	})

	t.Run("Capacity", func(t *testing.T) {
		assert.Equal(t, 16, valid.Capacity())
	})
}
