// Package cmd implements the primes command line: listing primes, timing the
// sieve variants, and cross-checking them against a prime list.
package cmd

import (
	"io"

	"github.com/on-the-ground/sieve_ive_go/config"
	"github.com/on-the-ground/sieve_ive_go/shared/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app is the state shared by the subcommands of one root command.
type app struct {
	stdout, stderr io.Writer

	v      *viper.Viper
	cfg    config.Config
	logger *zap.Logger
}

func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, v: config.New()}

	rc := &cobra.Command{
		Use:   "primes",
		Short: "Sieve of Eratosthenes in three flavours.",
		Long: `primes lists the prime numbers up to a limit with one of three
sieve implementations (basic, functional, bitpacked), times them against
each other, and verifies them against a known prime list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return errors.Wrap(err, "getting config flag")
			}
			if a.cfg, err = config.Load(a.v, path); err != nil {
				return err
			}
			if a.logger, err = log.NewLogger(a.stderr, a.cfg.Log.Level); err != nil {
				return errors.Wrapf(err, "invalid %s", config.LogLevel)
			}
			cmd.SetContext(log.WithZapLogger(cmd.Context(), a.logger))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	rc.PersistentFlags().StringP("config", "c", "", "Configuration file to read from (yaml, toml or json).")
	rc.PersistentFlags().String("log-level", string(log.LogInfo), "Log level: debug, info, warn or error.")
	a.bind(rc.PersistentFlags(), config.LogLevel, "log-level")

	rc.AddCommand(a.newListCommand())
	rc.AddCommand(a.newBenchCommand())
	rc.AddCommand(a.newVerifyCommand())

	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}

// bind makes the flag the highest-priority source of key.
func (a *app) bind(flags *pflag.FlagSet, key, name string) {
	if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(err)
	}
}
