package sieve

import (
	"iter"
	"slices"

	"github.com/on-the-ground/sieve_ive_go/shared/seqs"
)

// Basic is the reference sieve over one flag per integer in [0, limit].
func Basic(limit int) iter.Seq[int] {
	if limit < 2 {
		return func(func(int) bool) {}
	}

	isPrime := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		isPrime[i] = true
	}

	bound := isqrt(limit)
	for num := 2; num <= bound; num++ {
		if !isPrime[num] {
			continue
		}
		for multiple := num * num; multiple <= limit; multiple += num {
			isPrime[multiple] = false
		}
	}

	return seqs.FilterMap2(slices.All(isPrime), func(p int, prime bool) (int, bool) {
		return p, prime
	})
}
