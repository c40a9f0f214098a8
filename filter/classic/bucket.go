package classic

import "math/rand/v2"

// bucket keeps up to size fingerprints in a slot list. Duplicate
// fingerprints are allowed; the same fingerprint can arise from distinct
// items or from repeated inserts of one item.
type bucket struct {
	slots []uint64
	size  int
}

func newBucket(size int) bucket {
	return bucket{
		slots: make([]uint64, 0, size),
		size:  size,
	}
}

// insert appends the fingerprint if a slot is free. It returns false
// when the bucket is full; it never fails otherwise.
func (b *bucket) insert(fp uint64) bool {
	if len(b.slots) >= b.size {
		return false
	}
	b.slots = append(b.slots, fp)
	return true
}

func (b *bucket) contains(fp uint64) bool {
	for _, slot := range b.slots {
		if slot == fp {
			return true
		}
	}
	return false
}

// remove deletes the first slot matching the fingerprint and reports
// whether one was found.
func (b *bucket) remove(fp uint64) bool {
	for i, slot := range b.slots {
		if slot == fp {
			b.slots = append(b.slots[:i], b.slots[i+1:]...)
			return true
		}
	}
	return false
}

// swap stores fp into a uniformly random occupied slot and returns the
// evicted fingerprint. Slots already holding fp are avoided when any
// other occupied slot exists: swapping a fingerprint with its own copy
// makes no relocation progress. The bucket must not be empty.
func (b *bucket) swap(fp uint64, rng *rand.Rand) uint64 {
	candidates := make([]int, 0, len(b.slots))
	for i, slot := range b.slots {
		if slot != fp {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		for i := range b.slots {
			candidates = append(candidates, i)
		}
	}

	idx := candidates[rng.IntN(len(candidates))]
	victim := b.slots[idx]
	b.slots[idx] = fp
	return victim
}

func (b *bucket) occupied() int {
	return len(b.slots)
}

func (b *bucket) reset() {
	b.slots = b.slots[:0]
}
