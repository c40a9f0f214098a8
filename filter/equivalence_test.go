package filter_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/cuckoogo/filter"
	"github.com/hupe1980/cuckoogo/filter/classic"
	"github.com/hupe1980/cuckoogo/filter/compact"
	"github.com/stretchr/testify/require"
)

// TestClassicCompactEquivalence drives both implementations through the
// same operation sequence with the same hasher and seed, asserting that
// every observable answer matches at every step. The two packages share
// only the index and fingerprint derivation; storage and relocation
// bookkeeping are independent, so this is the cross-check that they
// implement the same table.
func TestClassicCompactEquivalence(t *testing.T) {
	newPair := func(t *testing.T, capacity int, errorRate float64, bucketSize int) (filter.Filter, filter.Filter) {
		t.Helper()

		cl, err := classic.New(capacity, errorRate, func(o *classic.Options) {
			o.BucketSize = bucketSize
			o.Seed = 7
		})
		require.NoError(t, err)

		co, err := compact.New(capacity, errorRate, func(o *compact.Options) {
			o.BucketSize = bucketSize
			o.Seed = 7
		})
		require.NoError(t, err)

		return cl, co
	}

	probe := func(t *testing.T, cl, co filter.Filter, rounds int) {
		t.Helper()
		for i := 0; i < rounds; i++ {
			item := []byte(fmt.Sprintf("probe-%d", i))
			require.Equal(t, cl.Contains(item), co.Contains(item), "probe-%d", i)
		}
	}

	t.Run("InsertOnly", func(t *testing.T) {
		cl, co := newPair(t, 2000, 0.01, 4)

		for i := 0; i < 1200; i++ {
			item := []byte(fmt.Sprintf("item-%d", i))
			require.NoError(t, cl.Insert(item))
			require.NoError(t, co.Insert(item))
			require.Equal(t, cl.Count(), co.Count())
		}

		for i := 0; i < 1200; i++ {
			item := []byte(fmt.Sprintf("item-%d", i))
			require.Equal(t, cl.Contains(item), co.Contains(item), "item-%d", i)
		}
		probe(t, cl, co, 2000)
	})

	t.Run("MixedInsertDelete", func(t *testing.T) {
		cl, co := newPair(t, 2000, 0.01, 4)

		for i := 0; i < 900; i++ {
			item := []byte(fmt.Sprintf("item-%d", i))
			require.NoError(t, cl.Insert(item))
			require.NoError(t, co.Insert(item))

			// Interleave deletions of earlier items, including some
			// repeats that must fail identically on both.
			if i%3 == 0 {
				victim := []byte(fmt.Sprintf("item-%d", i/2))
				require.Equal(t, cl.Delete(victim), co.Delete(victim), "delete item-%d at step %d", i/2, i)
				require.Equal(t, cl.Count(), co.Count(), "count after step %d", i)
			}
		}

		for i := 0; i < 900; i++ {
			item := []byte(fmt.Sprintf("item-%d", i))
			require.Equal(t, cl.Contains(item), co.Contains(item), "item-%d", i)
		}
		probe(t, cl, co, 2000)

		require.InDelta(t, cl.LoadFactor(), co.LoadFactor(), 1e-12)
		require.Equal(t, cl.Capacity(), co.Capacity())
	})

	t.Run("NarrowFingerprints", func(t *testing.T) {
		// A high error rate produces short fingerprints and frequent
		// collisions, the regime where layout bugs would diverge.
		cl, co := newPair(t, 512, 0.2, 2)

		for i := 0; i < 300; i++ {
			item := []byte(fmt.Sprintf("item-%d", i))
			require.NoError(t, cl.Insert(item))
			require.NoError(t, co.Insert(item))
		}

		for i := 0; i < 300; i++ {
			item := []byte(fmt.Sprintf("item-%d", i))
			require.Equal(t, cl.Contains(item), co.Contains(item), "item-%d", i)
		}
		probe(t, cl, co, 1000)
	})
}
