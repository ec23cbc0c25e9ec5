package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newGrantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Fee-grant validation commands",
	}

	cmd.AddCommand(newGrantValidateCmd())

	return cmd
}

func newGrantValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Submit a grant request file for validation",
		Long: `Submits a JSON grant request against the registry's validation
endpoint. The file holds the same shape the runtime submits:
{"fee_requested": [...], "msgs": [{"sender": ..., "type_url": ..., "msg": ...}]}`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read grant file: %w", err)
			}

			var req json.RawMessage = data
			var result GrantResult

			if err := client.Post("/internal/v1/grants/validate", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to grant request JSON (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
