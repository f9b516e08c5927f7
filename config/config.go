// Package config resolves the settings of the primes command from defaults,
// an optional config file, PRIMES_* environment variables and flags, in
// increasing priority.
package config

import (
	"fmt"
	"strings"

	"github.com/on-the-ground/sieve_ive_go/bench"
	"github.com/on-the-ground/sieve_ive_go/fixture"
	"github.com/on-the-ground/sieve_ive_go/shared/log"
	"github.com/on-the-ground/sieve_ive_go/sieve"
	"github.com/spf13/viper"
)

type Config struct {
	Log    LogConfig
	Bench  BenchConfig
	Verify VerifyConfig
}

type LogConfig struct {
	Level log.LogLevel
}

type BenchConfig struct {
	Cases    []bench.Case
	From, To int
	Variants []string
}

type VerifyConfig struct {
	From, To   int
	Fixture    string // empty selects the embedded list
	Bound      int    // completeness bound of an external fixture, 0 for its largest prime
	Workers    int
	BufferSize int
}

// New returns a viper instance holding the defaults and reading PRIMES_*
// environment variables ("verify.buffer_size" is PRIMES_VERIFY_BUFFER_SIZE).
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(LogLevel, string(log.LogInfo))

	v.SetDefault(BenchFrom, 0)
	v.SetDefault(BenchTo, -1)
	v.SetDefault(BenchVariants, []string{sieve.NameBasic, sieve.NameFunctional, sieve.NameBitPacked})

	v.SetDefault(VerifyFrom, 10)
	v.SetDefault(VerifyTo, fixture.EmbeddedBound)
	v.SetDefault(VerifyFixture, "")
	v.SetDefault(VerifyBound, 0)
	v.SetDefault(VerifyWorkers, 3)
	v.SetDefault(VerifyBufferSize, 64)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path, if any, into v and resolves the result.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading configuration file '%s': %w", path, err)
		}
	}

	cases := bench.DefaultTable()
	if v.IsSet(BenchCases) {
		cases = nil
		if err := v.UnmarshalKey(BenchCases, &cases); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", BenchCases, err)
		}
	}
	for _, c := range cases {
		if err := c.Validate(); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", BenchCases, err)
		}
	}

	return Config{
		Log: LogConfig{Level: log.LogLevel(v.GetString(LogLevel))},
		Bench: BenchConfig{
			Cases:    cases,
			From:     v.GetInt(BenchFrom),
			To:       v.GetInt(BenchTo),
			Variants: v.GetStringSlice(BenchVariants),
		},
		Verify: VerifyConfig{
			From:       v.GetInt(VerifyFrom),
			To:         v.GetInt(VerifyTo),
			Fixture:    v.GetString(VerifyFixture),
			Bound:      v.GetInt(VerifyBound),
			Workers:    v.GetInt(VerifyWorkers),
			BufferSize: v.GetInt(VerifyBufferSize),
		},
	}, nil
}

// Variants resolves names to sieve variants, keeping their order.
func Variants(names []string) ([]sieve.Variant, error) {
	variants := make([]sieve.Variant, 0, len(names))
	for _, name := range names {
		v, err := sieve.Lookup(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}
