package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMinterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minter",
		Short: "Minter contract commands",
	}

	cmd.AddCommand(newMinterBindCmd())
	cmd.AddCommand(newMinterShowCmd())
	cmd.AddCommand(newMinterTokenCountCmd())

	return cmd
}

func newMinterBindCmd() *cobra.Command {
	var tokenURI string

	cmd := &cobra.Command{
		Use:   "bind <address>",
		Short: "Bind the minter contract (owner only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Sender == "" {
				return fmt.Errorf("--sender is required for bind")
			}

			req := map[string]string{
				"address":   args[0],
				"token_uri": tokenURI,
			}
			var result MinterResult

			if err := client.Put("/api/v1/minter", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenURI, "token-uri", "", "Metadata URI for the bookkeeping token (required)")
	_ = cmd.MarkFlagRequired("token-uri")

	return cmd
}

func newMinterShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the bound minter contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MinterResult
			if err := client.Get("/api/v1/minter", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMinterTokenCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token-count",
		Short: "Show the global token counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TokenCountResult
			if err := client.Get("/api/v1/token-count", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
