// Package bitfield provides a dense array of fixed-width unsigned fields
// packed into uint64 words.
package bitfield

// Array stores n fields of width bits each in a contiguous []uint64.
// Field i occupies bits [i*width, i*width+width) of the array, so fields
// may straddle a word boundary. It is not safe for concurrent use.
type Array struct {
	words []uint64
	width uint
	n     int
	mask  uint64
}

// New creates an Array of n fields of the given width in bits.
// width must be in [1, 64].
func New(n, width int) *Array {
	if n < 0 || width < 1 || width > 64 {
		panic("bitfield: invalid field count or width")
	}

	totalBits := uint64(n) * uint64(width)
	mask := ^uint64(0)
	if width < 64 {
		mask = (uint64(1) << width) - 1
	}

	return &Array{
		words: make([]uint64, (totalBits+63)/64),
		width: uint(width),
		n:     n,
		mask:  mask,
	}
}

// Get returns field i.
func (a *Array) Get(i int) uint64 {
	off := uint64(i) * uint64(a.width)
	wordIdx := off >> 6
	shift := off & 63

	v := a.words[wordIdx] >> shift
	if shift+uint64(a.width) > 64 {
		v |= a.words[wordIdx+1] << (64 - shift)
	}
	return v & a.mask
}

// Set overwrites field i with v, leaving neighboring fields untouched.
// Bits of v above the field width are discarded.
func (a *Array) Set(i int, v uint64) {
	v &= a.mask

	off := uint64(i) * uint64(a.width)
	wordIdx := off >> 6
	shift := off & 63

	a.words[wordIdx] &^= a.mask << shift
	a.words[wordIdx] |= v << shift

	if shift+uint64(a.width) > 64 {
		spill := 64 - shift
		a.words[wordIdx+1] &^= a.mask >> spill
		a.words[wordIdx+1] |= v >> spill
	}
}

// Len returns the number of fields.
func (a *Array) Len() int {
	return a.n
}

// Width returns the field width in bits.
func (a *Array) Width() int {
	return int(a.width)
}

// Bits returns the total storage size in bits.
func (a *Array) Bits() uint64 {
	return uint64(a.n) * uint64(a.width)
}

// Reset zeroes every field without reallocating.
func (a *Array) Reset() {
	clear(a.words)
}
