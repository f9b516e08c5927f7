// Package fixture holds the ground-truth prime list used to cross-check the
// sieves. The list is plain text: one prime per line, blank lines and lines
// starting with '#' ignored.
package fixture

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// EmbeddedBound is the largest integer the embedded list is complete for.
const EmbeddedBound = 10_000

// MaxValue is the largest integer a fixture line may hold; the set keeps one
// bit per integer up to its largest element.
const MaxValue = math.MaxInt32

//go:embed primes.txt
var embedded []byte

var ErrMalformed = errors.New("malformed fixture line")

// Set is an immutable set of known primes, complete up to Bound.
type Set struct {
	bits  *bitset.BitSet
	max   int
	bound int
}

// Parse reads a prime list. The resulting set is considered complete up to
// its largest element.
func Parse(r io.Reader) (*Set, error) {
	bits := bitset.New(0)
	largest := -1

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 || n > MaxValue {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformed, line, text)
		}
		bits.Set(uint(n))
		if n > largest {
			largest = n
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return &Set{bits: bits, max: largest, bound: largest}, nil
}

// Load parses the prime list stored at path.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

var defaultSet = sync.OnceValues(func() (*Set, error) {
	s, err := Parse(bytes.NewReader(embedded))
	if err != nil {
		return nil, err
	}
	return s.WithBound(EmbeddedBound), nil
})

// Default returns the embedded list, parsed once.
func Default() (*Set, error) {
	return defaultSet()
}

// WithBound returns a copy of s declared complete up to bound. A bound below
// the largest element is ignored.
func (s *Set) WithBound(bound int) *Set {
	return &Set{bits: s.bits, max: s.max, bound: max(bound, s.max)}
}

// Contains reports whether n is in the list.
func (s *Set) Contains(n int) bool {
	return n >= 0 && s.bits.Test(uint(n))
}

// Covers reports whether the list decides primality of n.
func (s *Set) Covers(n int) bool {
	return n <= s.bound
}

// Bound is the largest integer the list is complete for.
func (s *Set) Bound() int {
	return s.bound
}

// Max is the largest listed prime, or -1 for an empty list.
func (s *Set) Max() int {
	return s.max
}

func (s *Set) Len() int {
	return int(s.bits.Count())
}

// Primes yields the listed primes in ascending order.
func (s *Set) Primes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}
