package sieve

import (
	"iter"
	"slices"

	"github.com/on-the-ground/sieve_ive_go/shared/seqs"
)

// offset is the value held by the first flag of the functional sieve.
const offset = 2

// Functional folds the marking step over the bases 2..isqrt(limit). For every
// base i it walks the flags with stride i starting at value i itself: the
// first visited flag is only inspected, the rest (2i, 3i, ...) are cleared
// when i is still flagged.
func Functional(limit int) iter.Seq[int] {
	var flags []bool
	if limit >= offset {
		flags = make([]bool, limit+1-offset)
		for i := range flags {
			flags[i] = true
		}
		flags = seqs.Fold(seqs.Range(offset, isqrt(limit)+1), flags, func(flags []bool, i int) []bool {
			strided := seqs.StridedRefs(flags[i-offset:], i)
			if head, ok := seqs.First(strided); ok && *head {
				seqs.ForEach(seqs.Drop(strided, 1), func(p *bool) { *p = false })
			}
			return flags
		})
	}

	return seqs.FilterMap2(slices.All(flags), func(e int, prime bool) (int, bool) {
		return e + offset, prime
	})
}
