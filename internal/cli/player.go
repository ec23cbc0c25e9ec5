package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player and roster commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerCatchCmd())
	cmd.AddCommand(newPlayerHealCmd())
	cmd.AddCommand(newPlayerBerriesCmd())
	cmd.AddCommand(newPlayerSetDefaultCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <id>",
		Short: "Register a new player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"id": args[0]}
			var result PlayerResult

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a player and their roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerResult
			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerCatchCmd() *cobra.Command {
	var tokenURI string
	var health, currPokemon int

	cmd := &cobra.Command{
		Use:   "catch <id>",
		Short: "Catch a pokemon for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Sender == "" {
				return fmt.Errorf("--sender is required for catch")
			}

			req := map[string]any{
				"token_uri":    tokenURI,
				"health":       health,
				"curr_pokemon": currPokemon,
			}
			var result PlayerResult

			if err := client.Post("/api/v1/players/"+args[0]+"/catch", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenURI, "token-uri", "", "Metadata URI for the minted token (required)")
	cmd.Flags().IntVar(&health, "health", 100, "Health to set on the current pokemon")
	cmd.Flags().IntVar(&currPokemon, "curr-pokemon", 0, "Roster index whose health is set")
	_ = cmd.MarkFlagRequired("token-uri")

	return cmd
}

func newPlayerHealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heal <id> <index>",
		Short: "Restore a pokemon to full health",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerResult
			path := fmt.Sprintf("/api/v1/players/%s/pokemon/%s/heal", args[0], args[1])
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerBerriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "berries <id>",
		Short: "Collect a berry for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerResult
			if err := client.Post("/api/v1/players/"+args[0]+"/berries", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerSetDefaultCmd() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "set-default <id>",
		Short: "Set a player's default pokemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"index": index}
			var result PlayerResult

			if err := client.Put("/api/v1/players/"+args[0]+"/default-pokemon", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "Roster index to set as default")

	return cmd
}
