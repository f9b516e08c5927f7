package sieve

import (
	"iter"

	"github.com/on-the-ground/sieve_ive_go/shared/seqs"
)

const (
	wordBits  = 64
	wordShift = 6
	wordMask  = wordBits - 1
)

// BitPacked sieves odd candidates only, one bit per candidate packed into
// uint64 words. Bit i stands for the value 2*i+3 and is set once that value
// is known to be composite. 2 is yielded ahead of the bit array.
func BitPacked(limit int) iter.Seq[int] {
	if limit < 3 {
		if limit < 2 {
			return func(func(int) bool) {}
		}
		return seqs.Once(2)
	}

	b := newOddBits(limit)
	b.cull()

	odd := seqs.FilterMap2(func(yield func(int, bool) bool) {
		for i := 0; i < b.n; i++ {
			if !yield(i, b.composite(i)) {
				return
			}
		}
	}, func(i int, composite bool) (int, bool) {
		return 2*i + 3, !composite
	})
	return seqs.Concat(seqs.Once(2), odd)
}

// oddBits is the compositeness bitmap of the odd values 3..limit.
//
// Capacity: n = (limit-3)/2+1 candidates and len(words) = ceil(n/64), so
// every index below n addresses an existing word. Culling only touches
// indices below n, and each base p <= isqrt(limit) starts at (p*p-3)/2 < n.
type oddBits struct {
	words []uint64
	n     int // candidates, indices 0..n-1
	bases int // candidates that may still cull, those with 2*i+3 <= isqrt(limit)
}

// newOddBits requires limit >= 3.
func newOddBits(limit int) *oddBits {
	n := (limit-3)/2 + 1

	// No odd base exists below 3; small limits have nothing to cull.
	bases := 0
	if r := isqrt(limit); r >= 3 {
		bases = (r-3)/2 + 1
	}

	return &oddBits{
		words: make([]uint64, (n+wordMask)>>wordShift),
		n:     n,
		bases: bases,
	}
}

func (b *oddBits) composite(i int) bool {
	return b.words[i>>wordShift]&(1<<(i&wordMask)) != 0
}

func (b *oddBits) cull() {
	for ndx := 0; ndx < b.bases; ndx++ {
		if b.composite(ndx) {
			continue
		}
		p := 2*ndx + 3
		for pos := (p*p - 3) / 2; pos < b.n; pos += p {
			b.words[pos>>wordShift] |= 1 << (pos & wordMask)
		}
	}
}
