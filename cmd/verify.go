package cmd

import (
	"fmt"

	"github.com/on-the-ground/sieve_ive_go/config"
	"github.com/on-the-ground/sieve_ive_go/fixture"
	"github.com/on-the-ground/sieve_ive_go/sieve"
	"github.com/on-the-ground/sieve_ive_go/verify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func (a *app) newVerifyCommand() *cobra.Command {
	ccmd := &cobra.Command{
		Use:   "verify",
		Short: "cross-check every variant against the prime list",
		Long: `
			For every limit in [from, to) and every variant, checks that the
			sequence is strictly ascending within [2, limit], that it matches
			the basic sieve, and that it ends at the limit exactly when the
			prime list contains the limit.
`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg := a.cfg.Verify
			set, err := loadFixture(cfg)
			if err != nil {
				return err
			}

			checker := verify.Checker{
				Variants:   sieve.Variants(),
				Fixture:    set,
				NumWorkers: cfg.Workers,
				BufferSize: cfg.BufferSize,
			}
			report, err := checker.Run(c.Context(), cfg.From, cfg.To)
			verify.WriteReport(a.stdout, report)
			if err == nil {
				return nil
			}

			errs := multierr.Errors(err)
			for _, e := range errs[1:] {
				fmt.Fprintln(a.stderr, e)
			}
			return errors.Wrapf(errs[0], "verification failed with %d error(s)", len(errs))
		},
	}

	flags := ccmd.Flags()
	flags.Int("from", 10, "first limit to check")
	flags.Int("to", fixture.EmbeddedBound, "end of the limits to check, exclusive")
	flags.String("fixture", "", "prime list to check against (default embedded list up to 10000)")
	flags.Int("bound", 0, "largest integer the fixture is complete for (default its largest prime)")
	flags.Int("workers", 3, "number of checking goroutines")
	flags.Int("buffer-size", 64, "queued checks per goroutine")
	a.bind(flags, config.VerifyFrom, "from")
	a.bind(flags, config.VerifyTo, "to")
	a.bind(flags, config.VerifyFixture, "fixture")
	a.bind(flags, config.VerifyBound, "bound")
	a.bind(flags, config.VerifyWorkers, "workers")
	a.bind(flags, config.VerifyBufferSize, "buffer-size")
	return ccmd
}

func loadFixture(cfg config.VerifyConfig) (*fixture.Set, error) {
	if cfg.Fixture == "" {
		return fixture.Default()
	}
	set, err := fixture.Load(cfg.Fixture)
	if err != nil {
		return nil, errors.Wrapf(err, "loading fixture %s", cfg.Fixture)
	}
	if cfg.Bound > 0 {
		set = set.WithBound(cfg.Bound)
	}
	return set, nil
}
