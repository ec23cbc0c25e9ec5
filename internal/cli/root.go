package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pokereg",
		Short: "CLI tool for the pokearch registry API",
		Long: `pokereg is a CLI tool for interacting with the pokearch registry JSON API.

It supports allow-list management, player registration and roster
operations, minter contract binding, and grant validation checks.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = NewClient(cfg.ServerURL, cfg.Sender)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: POKEREG_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Sender, "sender", cfg.Sender, "Acting principal (env: POKEREG_SENDER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAllowanceCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newMinterCmd())
	rootCmd.AddCommand(newGrantCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
