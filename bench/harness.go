package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/sieve_ive_go/shared/log"
	"github.com/on-the-ground/sieve_ive_go/shared/seqs"
	"github.com/on-the-ground/sieve_ive_go/sieve"
)

// ErrLiveness means a sieve yielded the sentinel 0, which no prime sequence
// contains.
var ErrLiveness = errors.New("liveness check failed")

// Result is the measurement of one variant on one case.
type Result struct {
	RunID      uuid.UUID
	Variant    string
	Case       Case
	Iterations int
	Span       TimeSpan
}

// PerOp is the mean wall time of one iteration.
func (r Result) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Span.Duration() / time.Duration(r.Iterations)
}

// Harness runs every variant against every case of a table.
type Harness struct {
	Variants []sieve.Variant

	// Now defaults to time.Now.
	Now func() time.Time
}

// Run measures each variant on each case, in table order. A variant keeps
// sieving the case's limit until it has taken Samples samples or spent
// Duration, whichever comes first; at least one sample is always taken.
// Every sample scans its sequence for the sentinel 0 so the work is not
// optimized away. Results gathered before a failure or cancellation are
// returned along with the error.
func (h Harness) Run(ctx context.Context, cases []Case) ([]Result, error) {
	now := h.Now
	if now == nil {
		now = time.Now
	}

	results := make([]Result, 0, len(cases)*len(h.Variants))
	for _, c := range cases {
		if err := c.Validate(); err != nil {
			return results, err
		}
		for _, v := range h.Variants {
			res := Result{RunID: uuid.New(), Variant: v.Name, Case: c}

			start := now()
			end := start
			for res.Iterations < c.Samples {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				if seqs.Any(v.Primes(c.Limit), func(p int) bool { return p == 0 }) {
					return results, fmt.Errorf("%w: %s yielded 0 for limit %d", ErrLiveness, v.Name, c.Limit)
				}
				res.Iterations++
				if end = now(); end.Sub(start) >= c.Duration {
					break
				}
			}
			res.Span = NewTimeSpan(start, end)

			log.Log(ctx, log.LogDebug, "benchmark case finished", map[string]interface{}{
				"run":        res.RunID.String(),
				"variant":    v.Name,
				"limit":      c.Limit,
				"iterations": res.Iterations,
				"per_op":     res.PerOp().String(),
			})
			results = append(results, res)
		}
	}
	return results, nil
}
