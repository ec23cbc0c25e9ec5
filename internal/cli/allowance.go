package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAllowanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allowance",
		Short: "Allow-list management commands",
	}

	cmd.AddCommand(newAllowanceGrantCmd())
	cmd.AddCommand(newAllowanceRevokeCmd())
	cmd.AddCommand(newAllowanceCheckCmd())

	return cmd
}

func newAllowanceGrantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grant <address>",
		Short: "Add a principal to the allow-list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Put("/api/v1/allowances/"+args[0], nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Allowance granted to %s", args[0]))
			return nil
		},
	}
}

func newAllowanceRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <address>",
		Short: "Remove a principal from the allow-list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/allowances/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Allowance revoked for %s", args[0]))
			return nil
		},
	}
}

func newAllowanceCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <address>",
		Short: "Check whether a principal is on the allow-list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AllowanceResult
			if err := client.Get("/api/v1/allowances/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
