package sieve_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/sieve_ive_go/shared/seqs"
	"github.com/on-the-ground/sieve_ive_go/sieve"
)

func BenchmarkPrimes(b *testing.B) {
	limits := []int{0, 2, 100, 1_000, 10_000, 100_000, 1_000_000}
	for _, limit := range limits {
		for _, v := range sieve.Variants() {
			b.Run(fmt.Sprintf("%s/%d", v.Name, limit), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if seqs.Any(v.Primes(limit), func(p int) bool { return p == 0 }) {
						b.Fatal("sieve yielded 0")
					}
				}
			})
		}
	}
}
