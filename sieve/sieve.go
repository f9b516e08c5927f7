// Package sieve computes the primes up to a limit with three interchangeable
// Sieve of Eratosthenes implementations.
//
// All of them are pure: each call allocates a private buffer, and the returned
// sequence owns it. Calls may run concurrently. A sequence yields the primes
// <= limit in strictly ascending order and is meant to be consumed once; to
// share the result between goroutines collect it first (slices.Collect).
package sieve

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// Sieve produces the ascending sequence of all primes <= limit.
// Limits below 2, negative ones included, produce an empty sequence.
type Sieve func(limit int) iter.Seq[int]

// Variant names a Sieve implementation.
type Variant struct {
	Name   string
	Primes Sieve
}

const (
	NameBasic      = "basic"
	NameFunctional = "functional"
	NameBitPacked  = "bitpacked"
)

var ErrUnknownVariant = errors.New("unknown sieve variant")

// Variants returns every implementation, reference first.
func Variants() []Variant {
	return []Variant{
		{Name: NameBasic, Primes: Basic},
		{Name: NameFunctional, Primes: Functional},
		{Name: NameBitPacked, Primes: BitPacked},
	}
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// isqrt returns floor(sqrt(n)) for n >= 0.
// The float estimate is corrected in both directions since float64 cannot
// represent every int above 2^53.
func isqrt(n int) int {
	if n < 2 {
		return max(n, 0)
	}
	r := int(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
