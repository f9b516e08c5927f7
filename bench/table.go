// Package bench times the sieve variants over a table of limits.
package bench

import (
	"errors"
	"fmt"
	"time"
)

// Case is one row of a benchmark table: the limit to sieve, the measurement
// budget, and the maximum number of samples taken within it.
type Case struct {
	Limit    int           `mapstructure:"limit"`
	Duration time.Duration `mapstructure:"duration"`
	Samples  int           `mapstructure:"samples"`
}

var ErrInvalidCase = errors.New("invalid benchmark case")

func (c Case) Validate() error {
	switch {
	case c.Limit < 0:
		return fmt.Errorf("%w: negative limit %d", ErrInvalidCase, c.Limit)
	case c.Duration <= 0:
		return fmt.Errorf("%w: limit %d: duration must be positive", ErrInvalidCase, c.Limit)
	case c.Samples <= 0:
		return fmt.Errorf("%w: limit %d: samples must be positive", ErrInvalidCase, c.Limit)
	}
	return nil
}

// DefaultTable returns the stock table, smallest limit first.
func DefaultTable() []Case {
	return []Case{
		{Limit: 0, Duration: 1 * time.Second, Samples: 2_500},
		{Limit: 2, Duration: 1 * time.Second, Samples: 2_000},
		{Limit: 100, Duration: 5 * time.Second, Samples: 1_800},
		{Limit: 1_000, Duration: 10 * time.Second, Samples: 1_400},
		{Limit: 10_000, Duration: 30 * time.Second, Samples: 1_000},
		{Limit: 100_000, Duration: 180 * time.Second, Samples: 800},
		{Limit: 1_000_000, Duration: 280 * time.Second, Samples: 400},
	}
}

// Slice selects rows [from, to) of table. A negative to means the end.
func Slice(table []Case, from, to int) ([]Case, error) {
	if to < 0 {
		to = len(table)
	}
	if from < 0 || from > to || to > len(table) {
		return nil, fmt.Errorf("%w: rows [%d, %d) of %d", ErrInvalidCase, from, to, len(table))
	}
	return table[from:to], nil
}
