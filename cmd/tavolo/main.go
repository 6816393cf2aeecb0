package main

import (
	"os"

	"github.com/spf13/cobra"

	"tavolo/internal/interfaces/cli/migrate"
	"tavolo/internal/interfaces/cli/seed"
	"tavolo/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tavolo",
		Short: "Tavolo - restaurant storefront platform",
		Long:  `Tavolo is the multi-tenant restaurant storefront backend with per-tenant feature toggles and plan-based entitlements.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
