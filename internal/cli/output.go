package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hexforge/catan-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case []User:
		o.printUserList(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGameList(v)
	case StateResult:
		o.printStateResult(v)
	case StartResult:
		o.printStartResult(v)
	case RollResult:
		o.printRollResult(v)
	case BuildResult:
		o.printBuildResult(v)
	case SetupResult:
		o.printSetupResult(v)
	case EndTurnResult:
		o.printEndTurnResult(v)
	case RobberResult:
		o.printRobberResult(v)
	case TradeResult:
		o.printTradeResult(v)
	case OfferResult:
		o.printOfferResult(v)
	case BuyDevResult:
		o.printBuyDevResult(v)
	case PlayDevResult:
		o.printPlayDevResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// GamePlayer response type
type GamePlayer struct {
	ID            int64 `json:"id"`
	PlayerID      int64 `json:"player_id"`
	Position      int   `json:"position"`
	VictoryPoints int   `json:"victory_points"`
}

// Game response type
type Game struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Status          string           `json:"status"`
	MaxPlayers      int              `json:"max_players"`
	CurrentPlayerID *int64           `json:"current_player_id"`
	GameState       *model.GameState `json:"game_state,omitempty"`
	Players         []GamePlayer     `json:"players"`
	CreatedAt       time.Time        `json:"created_at"`
}

// StateResult response type
type StateResult struct {
	GameState       *model.GameState `json:"game_state"`
	CurrentPlayerID int64            `json:"current_player_id"`
	Phase           string           `json:"phase"`
	Winner          *int64           `json:"winner"`
}

// StartResult response type
type StartResult struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	GameState *model.GameState `json:"game_state"`
}

// RollResult response type
type RollResult struct {
	DiceRoll  int              `json:"dice_roll"`
	GameState *model.GameState `json:"game_state"`
}

// BuildResult response type
type BuildResult struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	Resources     model.ResourceSet `json:"resources"`
	VictoryPoints int               `json:"victory_points"`
	GameState     *model.GameState  `json:"game_state"`
}

// SetupResult response type
type SetupResult struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	GameState  *model.GameState `json:"game_state"`
	SetupPhase model.SetupState `json:"setup_phase"`
}

// EndTurnResult response type
type EndTurnResult struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message"`
	CurrentPlayerID int64            `json:"current_player_id"`
	GameState       *model.GameState `json:"game_state"`
}

// RobberResult response type
type RobberResult struct {
	Success        bool             `json:"success"`
	Message        string           `json:"message"`
	NewLocation    int              `json:"new_location"`
	StolenResource *string          `json:"stolen_resource"`
	GameState      *model.GameState `json:"game_state"`
}

// TradeResult response type
type TradeResult struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Resources model.ResourceSet `json:"resources"`
	GameState *model.GameState  `json:"game_state"`
}

// OfferResult response type
type OfferResult struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	TradeOffer *model.TradeOffer `json:"trade_offer"`
	GameState  *model.GameState  `json:"game_state"`
}

// BuyDevResult response type
type BuyDevResult struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Card      string            `json:"card"`
	Revealed  bool              `json:"revealed"`
	Resources model.ResourceSet `json:"resources"`
	GameState *model.GameState  `json:"game_state"`
}

// PlayDevResult response type
type PlayDevResult struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	GameState *model.GameState `json:"game_state"`
}

// HealthResult combines the /health status with the root banner
type HealthResult struct {
	Status  string `json:"status"`
	Server  string `json:"server,omitempty"`
	Version string `json:"version,omitempty"`
}

func (o *Output) printUser(u User) {
	activeStr := "no"
	if u.IsActive {
		activeStr = "yes"
	}
	fmt.Printf("User: %s (%d)\n", u.Username, u.ID)
	fmt.Printf("Email: %s\n", u.Email)
	fmt.Printf("Active: %s\n", activeStr)
}

func (o *Output) printUserList(users []User) {
	fmt.Printf("Users (%d):\n", len(users))
	for _, u := range users {
		fmt.Printf("  %d  %s  %s\n", u.ID, u.Username, u.Email)
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s (%d)\n", g.Name, g.ID)
	fmt.Printf("Status: %s\n", g.Status)
	fmt.Printf("Players (%d/%d):\n", len(g.Players), g.MaxPlayers)
	for _, p := range g.Players {
		current := ""
		if g.CurrentPlayerID != nil && *g.CurrentPlayerID == p.PlayerID {
			current = " [current]"
		}
		fmt.Printf("  #%d player %d - %d VP%s\n", p.Position, p.PlayerID, p.VictoryPoints, current)
	}
	if g.GameState != nil {
		fmt.Println()
		o.printGameSummary(g.GameState)
	}
}

func (o *Output) printGameList(games []Game) {
	fmt.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		fmt.Printf("  %d  %-20s  %-12s  %d/%d players\n", g.ID, g.Name, g.Status, len(g.Players), g.MaxPlayers)
	}
}

func (o *Output) printStateResult(s StateResult) {
	if s.Winner != nil {
		fmt.Printf("Winner: player %d\n\n", *s.Winner)
	}
	o.printGameSummary(s.GameState)
}

// printGameSummary prints a compact board overview. The full state is
// available with --output json.
func (o *Output) printGameSummary(gs *model.GameState) {
	if gs == nil {
		return
	}

	fmt.Printf("Phase: %s\n", gs.Phase)
	if gs.Phase == model.PhaseInitialSetup {
		fmt.Printf("Setup round: %d\n", gs.Setup.Round)
	}
	if len(gs.Seats) > 0 {
		fmt.Printf("Current player: %d\n", gs.Seats[gs.CurrentSeat].PlayerID)
	}
	if gs.LastRoll != 0 {
		fmt.Printf("Last roll: %d\n", gs.LastRoll)
	}
	fmt.Printf("Robber: hex %d\n", gs.RobberHex)
	if gs.LongestRoadOwner != nil {
		fmt.Printf("Longest road: player %d (%d)\n", *gs.LongestRoadOwner, gs.LongestRoadLength)
	}
	if gs.LargestArmyOwner != nil {
		fmt.Printf("Largest army: player %d\n", *gs.LargestArmyOwner)
	}

	fmt.Println("Seats:")
	for _, seat := range gs.Seats {
		kind := "human"
		if seat.PlayerID.IsBot() {
			kind = "bot"
		}
		hand := gs.Resources[seat.PlayerID]
		fmt.Printf("  #%d player %d (%s) - %d VP, %d cards, %d dev\n",
			seat.Position, seat.PlayerID, kind, seat.VictoryPoints, hand.Total(), len(gs.DevCards[seat.PlayerID]))
	}
}

func (o *Output) printResources(rs model.ResourceSet) {
	for _, r := range model.Resources {
		if rs[r] > 0 {
			fmt.Printf("  %s: %d\n", r, rs[r])
		}
	}
}

func (o *Output) printStartResult(s StartResult) {
	fmt.Println(s.Message)
	if s.GameState != nil {
		fmt.Println()
		o.printGameSummary(s.GameState)
	}
}

func (o *Output) printRollResult(r RollResult) {
	fmt.Printf("Rolled: %d\n", r.DiceRoll)
	if r.DiceRoll == 7 {
		fmt.Println("Move the robber with: play robber")
	}
}

func (o *Output) printBuildResult(b BuildResult) {
	fmt.Println(b.Message)
	fmt.Printf("Victory points: %d\n", b.VictoryPoints)
	fmt.Println("Resources:")
	o.printResources(b.Resources)
}

func (o *Output) printSetupResult(s SetupResult) {
	fmt.Println(s.Message)
	fmt.Printf("Setup round: %d\n", s.SetupPhase.Round)
	if s.GameState != nil && s.GameState.Phase == model.PhaseTurn {
		fmt.Println("Setup complete, normal play begins")
	}
}

func (o *Output) printEndTurnResult(e EndTurnResult) {
	fmt.Println(e.Message)
	fmt.Printf("Current player: %d\n", e.CurrentPlayerID)
}

func (o *Output) printRobberResult(r RobberResult) {
	fmt.Println(r.Message)
	if r.StolenResource != nil {
		fmt.Printf("Stolen: %s\n", *r.StolenResource)
	}
}

func (o *Output) printTradeResult(t TradeResult) {
	fmt.Println(t.Message)
	fmt.Println("Resources:")
	o.printResources(t.Resources)
}

func (o *Output) printOfferResult(of OfferResult) {
	fmt.Println(of.Message)
	if of.TradeOffer != nil {
		fmt.Printf("Offer ID: %s\n", of.TradeOffer.ID)
	}
}

func (o *Output) printBuyDevResult(b BuyDevResult) {
	fmt.Printf("Bought: %s\n", b.Card)
	if b.Revealed {
		fmt.Println("The card is revealed and counts immediately")
	}
	fmt.Println("Resources:")
	o.printResources(b.Resources)
}

func (o *Output) printPlayDevResult(p PlayDevResult) {
	fmt.Println(p.Message)
}

func (o *Output) printHealthResult(h HealthResult) {
	if h.Server != "" {
		fmt.Printf("Server: %s", h.Server)
		if h.Version != "" {
			fmt.Printf(" (%s)", h.Version)
		}
		fmt.Println()
	}
	fmt.Printf("Status: %s\n", h.Status)
}
