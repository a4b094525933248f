package main

import (
	"fmt"

	"domaincheck/internal/config"

	"github.com/spf13/cobra"
)

// tldsCommand constructs the 'tlds' subcommand that prints the effective TLD
// list after config file and environment resolution, one per line.
func tldsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tlds",
		Short: "Prints the effective TLD list",
		Run: func(cmd *cobra.Command, args []string) {
			for _, tld := range cfg.TopLevelDomains {
				fmt.Println(tld) //nolint: forbidigo
			}
		},
	}

	return cmd
}
