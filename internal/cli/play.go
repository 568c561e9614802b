package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "In-game actions",
	}

	cmd.AddCommand(newPlayStartCmd())
	cmd.AddCommand(newPlayStateCmd())
	cmd.AddCommand(newPlaySetupCmd())
	cmd.AddCommand(newPlayRollCmd())
	cmd.AddCommand(newPlayBuildSettlementCmd())
	cmd.AddCommand(newPlayBuildCityCmd())
	cmd.AddCommand(newPlayBuildRoadCmd())
	cmd.AddCommand(newPlayEndTurnCmd())
	cmd.AddCommand(newPlayRobberCmd())
	cmd.AddCommand(newPlayTradeBankCmd())
	cmd.AddCommand(newPlayTradePortCmd())
	cmd.AddCommand(newPlayOfferCmd())
	cmd.AddCommand(newPlayAcceptCmd())
	cmd.AddCommand(newPlayBuyDevCmd())
	cmd.AddCommand(newPlayDevCardCmd())

	return cmd
}

func intArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return n, nil
}

// parseResourceList parses "wood=2,brick=1" into a resource count map
func parseResourceList(s string) (map[string]int, error) {
	out := map[string]int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, count, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("invalid resource entry %q, expected name=count", part)
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			return nil, fmt.Errorf("invalid count in %q: %w", part, err)
		}
		out[name] = n
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty resource list")
	}
	return out, nil
}

func newPlayStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <game-id>",
		Short: "Deal the board and start the game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid game-id: %w", err)
			}

			req := map[string]int64{"game_id": gameID}
			var result StartResult

			if err := client.Post("/api/v1/catan/start", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state <game-id>",
		Short: "Show the live board state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StateResult

			if err := client.Get(fmt.Sprintf("/api/v1/catan/%s/state", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlaySetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup <game-id> settlement <vertex> | setup <game-id> road <v1> <v2>",
		Short: "Place a starting settlement or road",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}

			switch args[1] {
			case "settlement":
				if len(args) != 3 {
					return fmt.Errorf("usage: setup <game-id> settlement <vertex>")
				}
				vertex, err := intArg("vertex", args[2])
				if err != nil {
					return err
				}
				req["action"] = "place_settlement"
				req["vertex_id"] = vertex
			case "road":
				if len(args) != 4 {
					return fmt.Errorf("usage: setup <game-id> road <v1> <v2>")
				}
				v1, err := intArg("v1", args[2])
				if err != nil {
					return err
				}
				v2, err := intArg("v2", args[3])
				if err != nil {
					return err
				}
				req["action"] = "place_road"
				req["vertex1_id"] = v1
				req["vertex2_id"] = v2
			default:
				return fmt.Errorf("unknown placement %q, expected settlement or road", args[1])
			}

			var result SetupResult
			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/initial-setup", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll <game-id>",
		Short: "Roll the dice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RollResult

			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/roll-dice", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayBuildSettlementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-settlement <game-id> <vertex>",
		Short: "Build a settlement",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vertex, err := intArg("vertex", args[1])
			if err != nil {
				return err
			}

			req := map[string]int{"vertex_id": vertex}
			var result BuildResult

			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/build-settlement", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayBuildCityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-city <game-id> <vertex>",
		Short: "Upgrade a settlement to a city",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vertex, err := intArg("vertex", args[1])
			if err != nil {
				return err
			}

			req := map[string]int{"vertex_id": vertex}
			var result BuildResult

			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/build-city", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayBuildRoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-road <game-id> <v1> <v2>",
		Short: "Build a road between two vertices",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v1, err := intArg("v1", args[1])
			if err != nil {
				return err
			}
			v2, err := intArg("v2", args[2])
			if err != nil {
				return err
			}

			req := map[string]int{"vertex1_id": v1, "vertex2_id": v2}
			var result BuildResult

			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/build-road", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayEndTurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end-turn <game-id>",
		Short: "Pass the turn, bots play automatically",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result EndTurnResult

			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/end-turn", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayRobberCmd() *cobra.Command {
	var stealFrom int64

	cmd := &cobra.Command{
		Use:   "robber <game-id> <hex>",
		Short: "Move the robber after rolling a seven",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := intArg("hex", args[1])
			if err != nil {
				return err
			}

			req := map[string]any{"hex_index": hex}
			if cmd.Flags().Changed("steal-from") {
				req["steal_from_player_id"] = stealFrom
			}
			var result RobberResult

			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/move-robber", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&stealFrom, "steal-from", 0, "Player to steal a card from")

	return cmd
}

func newPlayTradeBankCmd() *cobra.Command {
	var give, take string
	var giveAmount, takeAmount int

	cmd := &cobra.Command{
		Use:   "trade-bank <game-id>",
		Short: "Trade with the bank at 4:1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"give_resource": give,
				"take_resource": take,
			}
			if giveAmount > 0 {
				req["give_amount"] = giveAmount
			}
			if takeAmount > 0 {
				req["take_amount"] = takeAmount
			}
			var result TradeResult

			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/trade-bank", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&give, "give", "", "Resource to give (required)")
	cmd.Flags().StringVar(&take, "take", "", "Resource to take (required)")
	cmd.Flags().IntVar(&giveAmount, "give-amount", 0, "Amount to give (default 4)")
	cmd.Flags().IntVar(&takeAmount, "take-amount", 0, "Amount to take (default 1)")
	_ = cmd.MarkFlagRequired("give")
	_ = cmd.MarkFlagRequired("take")

	return cmd
}

func newPlayTradePortCmd() *cobra.Command {
	var give, take string
	var vertex, giveAmount int

	cmd := &cobra.Command{
		Use:   "trade-port <game-id>",
		Short: "Trade through a port you have built on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"vertex_id":     vertex,
				"give_resource": give,
				"give_amount":   giveAmount,
				"take_resource": take,
			}
			var result TradeResult

			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/trade-port", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&vertex, "vertex", 0, "Port vertex with your settlement (required)")
	cmd.Flags().StringVar(&give, "give", "", "Resource to give (required)")
	cmd.Flags().StringVar(&take, "take", "", "Resource to take (required)")
	cmd.Flags().IntVar(&giveAmount, "give-amount", 0, "Amount to give, must match the port ratio (required)")
	_ = cmd.MarkFlagRequired("vertex")
	_ = cmd.MarkFlagRequired("give")
	_ = cmd.MarkFlagRequired("take")
	_ = cmd.MarkFlagRequired("give-amount")

	return cmd
}

func newPlayOfferCmd() *cobra.Command {
	var give, want string

	cmd := &cobra.Command{
		Use:   "offer <game-id>",
		Short: "Post a trade offer to the other players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			giveRes, err := parseResourceList(give)
			if err != nil {
				return fmt.Errorf("--give: %w", err)
			}
			wantRes, err := parseResourceList(want)
			if err != nil {
				return fmt.Errorf("--want: %w", err)
			}

			req := map[string]any{
				"give_resources": giveRes,
				"want_resources": wantRes,
			}
			var result OfferResult

			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/create-trade-offer", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&give, "give", "", "Resources offered, e.g. wood=2,brick=1 (required)")
	cmd.Flags().StringVar(&want, "want", "", "Resources wanted, e.g. sheep=1 (required)")
	_ = cmd.MarkFlagRequired("give")
	_ = cmd.MarkFlagRequired("want")

	return cmd
}

func newPlayAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <game-id> <offer-id>",
		Short: "Accept a pending trade offer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"trade_offer_id": args[1]}
			var result TradeResult

			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/accept-trade-offer", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayBuyDevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy-dev <game-id>",
		Short: "Buy a development card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result BuyDevResult

			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/buy-dev-card", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayDevCardCmd() *cobra.Command {
	var card, resource1, resource2, resourceType string

	cmd := &cobra.Command{
		Use:   "play-dev <game-id>",
		Short: "Play a development card from your hand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"card_type": card}

			cardData := map[string]string{}
			if resource1 != "" {
				cardData["resource1"] = resource1
			}
			if resource2 != "" {
				cardData["resource2"] = resource2
			}
			if resourceType != "" {
				cardData["resource_type"] = resourceType
			}
			if len(cardData) > 0 {
				req["card_data"] = cardData
			}

			var result PlayDevResult
			if err := client.Post(fmt.Sprintf("/api/v1/catan/%s/play-dev-card", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&card, "card", "", "Card type: knight, road_building, year_of_plenty, monopoly (required)")
	cmd.Flags().StringVar(&resource1, "resource1", "", "First resource for year_of_plenty")
	cmd.Flags().StringVar(&resource2, "resource2", "", "Second resource for year_of_plenty")
	cmd.Flags().StringVar(&resourceType, "resource", "", "Resource to claim for monopoly")
	_ = cmd.MarkFlagRequired("card")

	return cmd
}
