// Package main provides the CLI entrypoint for the domain availability checker.
// It wires subcommands (check, probe, tlds), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"domaincheck/internal/config"
	"domaincheck/pkg/logger"
	"domaincheck/pkg/whois"
	"domaincheck/pkg/whois/likexian"

	"github.com/joho/godotenv"
	likexianwhois "github.com/likexian/whois"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newProber creates the WHOIS client used to probe candidate domains. The
// library client carries the query timeout; per-probe deadlines are applied
// by the checker through context.
func newProber(cfg *config.Config) whois.Client {
	whoisClient := likexianwhois.NewClient()
	if cfg.Checker.ProbeTimeout > 0 {
		whoisClient.SetTimeout(cfg.Checker.ProbeTimeout)
	}

	return likexian.New(whoisClient)
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	// load .env if present; real environment variables take precedence
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use: "domaincheck",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yaml", "Config File Path")

	configPath := flag.String("c", "config.yaml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		checkCommand(cfg),
		probeCommand(cfg),
		tldsCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
