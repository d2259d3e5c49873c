package bitset

import "math/bits"

const wordSize = 64

// Bitset is a fixed-length sequence of bits backed by a []uint64 word
// slice. The zero value is not usable; construct one with New.
type Bitset struct {
	words  []uint64
	length int
}

// New returns a Bitset of the given length with every bit cleared.
// New panics if length is negative.
func New(length int) *Bitset {
	if length < 0 {
		panic("bitset: negative length")
	}
	return &Bitset{
		words:  make([]uint64, wordCount(length)),
		length: length,
	}
}

// wordCount returns the number of uint64 words needed to hold length bits.
func wordCount(length int) int {
	return (length + wordSize - 1) / wordSize
}

// Len returns the fixed number of bits in b.
func (b *Bitset) Len() int {
	return b.length
}

// checkIndex panics if i is not a valid bit index for b.
func (b *Bitset) checkIndex(i int) {
	if i < 0 || i >= b.length {
		panic("bitset: index out of range")
	}
}

// wordMaskFor decomposes bit index i into its word index and bit mask.
func wordMaskFor(i int) (word int, mask uint64) {
	return i / wordSize, uint64(1) << uint(i%wordSize)
}

// tailMask returns a mask selecting the valid bits of the final word, so
// that padding bits beyond length are never mistaken for set bits.
func tailMask(length int) uint64 {
	rem := length % wordSize
	if rem == 0 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(rem)) - 1
}

// popcountWords sums the population count of every word in ws.
func popcountWords(ws []uint64) int {
	n := 0
	for _, w := range ws {
		n += bits.OnesCount64(w)
	}
	return n
}
