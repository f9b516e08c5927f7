// Package verify cross-checks the sieve variants against each other and
// against a ground-truth prime list.
package verify

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/on-the-ground/sieve_ive_go/fixture"
	"github.com/on-the-ground/sieve_ive_go/pure"
	"github.com/on-the-ground/sieve_ive_go/shared/log"
	"github.com/on-the-ground/sieve_ive_go/shared/workers"
	"github.com/on-the-ground/sieve_ive_go/sieve"
	"go.uber.org/multierr"
)

var (
	ErrOutOfFixture = errors.New("limit not covered by fixture")
	ErrInvalidRange = errors.New("invalid range")
	ErrDisagreement = errors.New("variant disagrees with reference")
	ErrLastElement  = errors.New("last element does not match fixture")
	ErrPanic        = errors.New("variant panicked")
)

// referenceMemoSize bounds the reference fingerprints kept per generation.
const referenceMemoSize = 1024

// Checker runs the dataset cross-check over a half-open range of limits.
// For every limit and variant it verifies ordering and range, agreement with
// the Basic sieve, and that the last prime equals the limit exactly when the
// fixture lists the limit.
type Checker struct {
	Variants   []sieve.Variant
	Fixture    *fixture.Set
	NumWorkers int
	BufferSize int
}

// VariantReport counts the limits checked for one variant.
type VariantReport struct {
	Name    string
	Checked int
	Failed  int
}

type Report struct {
	From, To int
	Variants []VariantReport
}

type job struct {
	variant int
	name    string
	limit   int
}

func (j job) PartitionKey() string { return j.name }

// Run checks every limit in [from, to). The returned error combines every
// failure found; the report is filled in either case.
func (c Checker) Run(ctx context.Context, from, to int) (Report, error) {
	report := Report{From: from, To: to, Variants: make([]VariantReport, len(c.Variants))}
	for i, v := range c.Variants {
		report.Variants[i].Name = v.Name
	}

	if from < 0 || to < from {
		return report, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, from, to)
	}
	if to > from && !c.Fixture.Covers(to-1) {
		return report, fmt.Errorf("%w: %d > %d", ErrOutOfFixture, to-1, c.Fixture.Bound())
	}

	reference := pure.Tableize(func(limit int) Fingerprint {
		fp, _ := Inspect(limit, sieve.Basic(limit))
		return fp
	}, referenceMemoSize)

	var (
		mu   sync.Mutex
		errs error
	)
	q := workers.NewPartitionedQueue(ctx, c.NumWorkers, c.BufferSize, func(ctx context.Context, j job) {
		err := c.check(c.Variants[j.variant], j.limit, reference)
		mu.Lock()
		defer mu.Unlock()
		report.Variants[j.variant].Checked++
		if err != nil {
			report.Variants[j.variant].Failed++
			errs = multierr.Append(errs, err)
		}
	})

	log.Log(ctx, log.LogInfo, "verification started", map[string]interface{}{
		"from":     from,
		"to":       to,
		"variants": len(c.Variants),
	})

	cancelled := false
dispatch:
	for limit := from; limit < to; limit++ {
		for i, v := range c.Variants {
			if !q.Dispatch(ctx, job{variant: i, name: v.Name, limit: limit}) {
				cancelled = true
				break dispatch
			}
		}
	}
	q.Close()

	if cancelled {
		errs = multierr.Append(errs, ctx.Err())
	}

	log.Log(ctx, log.LogInfo, "verification finished", map[string]interface{}{
		"from":     from,
		"to":       to,
		"failures": len(multierr.Errors(errs)),
	})
	return report, errs
}

// check never panics: a panicking variant is reported as ErrPanic so the
// limit is still counted.
func (c Checker) check(v sieve.Variant, limit int, reference func(int) Fingerprint) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: limit %d: %w: %v", v.Name, limit, ErrPanic, r)
		}
	}()

	fp, err := Inspect(limit, v.Primes(limit))
	if err != nil {
		return fmt.Errorf("%s: limit %d: %w", v.Name, limit, err)
	}

	var errs error
	if want := reference(limit); fp != want {
		errs = multierr.Append(errs, fmt.Errorf("%s: limit %d: %w: got %v, want %v", v.Name, limit, ErrDisagreement, fp, want))
	}

	endsAtLimit := fp.Count > 0 && fp.Last == limit
	if listed := c.Fixture.Contains(limit); endsAtLimit != listed {
		errs = multierr.Append(errs, fmt.Errorf("%s: limit %d: %w: ends at limit=%t, listed=%t", v.Name, limit, ErrLastElement, endsAtLimit, listed))
	}
	return errs
}
