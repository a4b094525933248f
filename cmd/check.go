package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"domaincheck/internal/checker"
	"domaincheck/internal/config"
	"domaincheck/internal/diag"
	"domaincheck/internal/report"
	"domaincheck/internal/wordlist"
	"domaincheck/pkg/domain"
	"domaincheck/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupDiagServer starts the diagnostics HTTP server and returns a function
// that stops it gracefully.
func setupDiagServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	server, err := diag.NewServer(diag.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create diagnostics server", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting diagnostics server...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start diagnostics server", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping diagnostics server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop diagnostics server", zap.Error(err))
		}
	}
}

// checkCommand constructs the 'check' subcommand that scans every combination
// of the input file's base strings and the configured TLDs for availability.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <input-file>",
		Short: "Checks availability of domains built from base strings and configured TLDs",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			runID := domain.NewRunID()
			ctx = logger.WithFields(ctx, zap.String("runID", runID.String()))

			if cfg.Diag.Addr != "" {
				stopDiagServer := setupDiagServer(ctx, cfg)
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
					defer cancel()

					stopDiagServer(shutdownCtx)
				}()
			}

			bases, err := wordlist.Load(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not load base strings", zap.Error(err))
			}

			candidates := checker.Combinations(bases, cfg.TopLevelDomains)
			logger.Info(ctx, "starting scan",
				zap.Int("bases", len(bases)),
				zap.Int("tlds", len(cfg.TopLevelDomains)),
				zap.Int("candidates", len(candidates)))

			chk := checker.New(newProber(cfg), checker.NewOptions(cfg))

			startedAt := time.Now()
			results, err := chk.Run(ctx, candidates, report.NewPrinter(cmd.OutOrStdout()))
			if err != nil {
				logger.Fatal(ctx, "scan aborted", zap.Error(err))
			}
			elapsed := time.Since(startedAt)

			summary := report.NewSummary(runID, results, startedAt, elapsed)
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				err = summary.WriteJSON(cmd.OutOrStdout())
			} else {
				err = summary.WriteText(cmd.OutOrStdout())
			}
			if err != nil {
				logger.Fatal(ctx, "could not write report", zap.Error(err))
			}

			logger.Info(ctx, "scan finished",
				zap.Int("candidates", summary.Candidates),
				zap.Int("registered", summary.Registered),
				zap.Int("available", len(summary.Available)),
				zap.Int("unknown", len(summary.Unknown)),
				zap.Duration("elapsed", elapsed))
		},
	}

	cmd.Flags().Bool("json", false, "Render the final report as JSON")

	return cmd
}
