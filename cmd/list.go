package cmd

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/on-the-ground/sieve_ive_go/sieve"
	"github.com/on-the-ground/sieve_ive_go/shared/seqs"
	"github.com/on-the-ground/sieve_ive_go/verify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) newListCommand() *cobra.Command {
	var (
		variant     string
		count       bool
		fingerprint bool
	)
	ccmd := &cobra.Command{
		Use:   "list LIMIT",
		Short: "print the primes up to LIMIT, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			limit, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "parsing limit %q", args[0])
			}
			v, err := sieve.Lookup(variant)
			if err != nil {
				return err
			}

			switch {
			case fingerprint:
				fp, err := verify.Inspect(limit, v.Primes(limit))
				if err != nil {
					return errors.Wrapf(err, "%s produced an invalid sequence", v.Name)
				}
				_, err = fmt.Fprintln(a.stdout, fp)
				return err
			case count:
				_, err := fmt.Fprintln(a.stdout, seqs.Count(v.Primes(limit)))
				return err
			}

			w := bufio.NewWriter(a.stdout)
			for p := range v.Primes(limit) {
				w.WriteString(strconv.Itoa(p))
				w.WriteByte('\n')
			}
			return errors.Wrap(w.Flush(), "writing primes")
		},
	}

	flags := ccmd.Flags()
	flags.StringVar(&variant, "variant", sieve.NameBasic, "sieve implementation: basic, functional or bitpacked")
	flags.BoolVar(&count, "count", false, "print only the number of primes")
	flags.BoolVar(&fingerprint, "fingerprint", false, "print count, last prime and xxhash digest")
	return ccmd
}
