package verify

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
)

var (
	ErrNotAscending = errors.New("sequence not strictly ascending")
	ErrOutOfRange   = errors.New("element out of range")
)

// Fingerprint summarizes a prime sequence. Equal sequences have equal
// fingerprints; Digest is xxhash64 over the elements as little-endian uint64.
type Fingerprint struct {
	Count  int
	Last   int
	Digest uint64
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("count=%d last=%d digest=%016x", f.Count, f.Last, f.Digest)
}

// Inspect consumes seq once, computing its fingerprint and checking that it
// is strictly ascending with every element in [2, limit].
func Inspect(limit int, seq iter.Seq[int]) (Fingerprint, error) {
	var (
		fp   Fingerprint
		buf  [8]byte
		prev = 1
		d    = xxhash.New()
	)
	for p := range seq {
		if p < 2 || p > limit {
			return fp, fmt.Errorf("%w: %d not in [2, %d]", ErrOutOfRange, p, limit)
		}
		if p <= prev {
			return fp, fmt.Errorf("%w: %d after %d", ErrNotAscending, p, prev)
		}
		binary.LittleEndian.PutUint64(buf[:], uint64(p))
		_, _ = d.Write(buf[:])
		fp.Count++
		fp.Last = p
		prev = p
	}
	fp.Digest = d.Sum64()
	return fp, nil
}
