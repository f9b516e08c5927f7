/*
This is the entrypoint for the primes binary.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/on-the-ground/sieve_ive_go/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cmd.NewRootCommand(os.Stdout, os.Stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
