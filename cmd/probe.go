package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"domaincheck/internal/checker"
	"domaincheck/internal/config"
	"domaincheck/pkg/domain"
	"domaincheck/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// probeCommand constructs the 'probe' subcommand that runs a single WHOIS
// probe for one domain name and prints its availability verdict.
func probeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <domain>",
		Short: "Probes a single domain name and prints its availability verdict",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			chk := checker.New(newProber(cfg), checker.NewOptions(cfg))

			results, err := chk.Run(ctx, []domain.Candidate{{Name: args[0]}}, nil)
			if err != nil {
				logger.Fatal(ctx, "probe aborted", zap.Error(err))
			}

			res := results[0]
			if res.Err != nil {
				fmt.Printf("%s: %s (%v)\n", res.Candidate.Name, res.Verdict, res.Err) //nolint: forbidigo

				return
			}
			fmt.Printf("%s: %s\n", res.Candidate.Name, res.Verdict) //nolint: forbidigo
		},
	}

	return cmd
}
