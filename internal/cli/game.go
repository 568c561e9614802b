package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game lobby commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameUpdateCmd())
	cmd.AddCommand(newGameJoinCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var name string
	var maxPlayers int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game waiting for players",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"name": name}
			if maxPlayers > 0 {
				req["max_players"] = maxPlayers
			}
			var result Game

			if err := client.Post("/api/v1/games/", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Game name (required)")
	cmd.Flags().IntVar(&maxPlayers, "max-players", 0, "Player limit, 2-4 (default 4)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a game with its players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	var status string
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			path := fmt.Sprintf("/api/v1/games/?skip=%d&limit=%d", skip, limit)
			if status != "" {
				path += "&status_filter=" + url.QueryEscape(status)
			}
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status: waiting, in_progress, finished, abandoned")
	cmd.Flags().IntVar(&skip, "skip", 0, "Rows to skip")
	cmd.Flags().IntVar(&limit, "limit", 100, "Maximum rows")

	return cmd
}

func newGameUpdateCmd() *cobra.Command {
	var name, status string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a game's name or status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if name != "" {
				req["name"] = name
			}
			if status != "" {
				req["status"] = status
			}
			if len(req) == 0 {
				return fmt.Errorf("nothing to update, pass --name or --status")
			}
			var result Game

			if err := client.Patch(fmt.Sprintf("/api/v1/games/%s", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New game name")
	cmd.Flags().StringVar(&status, "status", "", "New status, must follow the lifecycle")

	return cmd
}

func newGameJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <game-id> <user-id>",
		Short: "Seat a user in a waiting game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			path := fmt.Sprintf("/api/v1/games/%s/players/%s", args[0], args[1])
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
