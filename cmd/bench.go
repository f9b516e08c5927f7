package cmd

import (
	"github.com/on-the-ground/sieve_ive_go/bench"
	"github.com/on-the-ground/sieve_ive_go/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) newBenchCommand() *cobra.Command {
	ccmd := &cobra.Command{
		Use:   "bench",
		Short: "time the sieve variants over the benchmark table",
		Long: `
			Runs every selected variant over rows [from, to) of the benchmark
			table. The table comes from the bench.cases config key and defaults
			to limits 0 through 1,000,000. A row is sampled until either its
			sample count or its duration is used up.
`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			variants, err := config.Variants(a.cfg.Bench.Variants)
			if err != nil {
				return err
			}
			cases, err := bench.Slice(a.cfg.Bench.Cases, a.cfg.Bench.From, a.cfg.Bench.To)
			if err != nil {
				return err
			}

			results, err := bench.Harness{Variants: variants}.Run(c.Context(), cases)
			bench.WriteTable(a.stdout, results)
			return errors.Wrap(err, "benchmark aborted")
		},
	}

	flags := ccmd.Flags()
	flags.StringSlice("variant", nil, "variants to time (default all)")
	flags.Int("from", 0, "first table row")
	flags.Int("to", -1, "end of the table rows, exclusive; -1 for all")
	a.bind(flags, config.BenchVariants, "variant")
	a.bind(flags, config.BenchFrom, "from")
	a.bind(flags, config.BenchTo, "to")
	return ccmd
}
