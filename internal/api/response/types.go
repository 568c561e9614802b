// Package response holds the JSON response bodies produced by the API.
package response

import (
	"time"

	"github.com/hexforge/catan-go/internal/model"
)

// User represents a user in API responses. The password hash never leaves
// the model layer.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        int64(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UsersFromModel converts a list of users
func UsersFromModel(users []*model.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = UserFromModel(u)
	}
	return out
}

// GamePlayer represents a seat row in API responses
type GamePlayer struct {
	ID            int64     `json:"id"`
	PlayerID      int64     `json:"player_id"`
	Position      int       `json:"position"`
	VictoryPoints int       `json:"victory_points"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GamePlayerFromModel converts a model.GamePlayer
func GamePlayerFromModel(p model.GamePlayer) GamePlayer {
	return GamePlayer{
		ID:            p.ID,
		PlayerID:      int64(p.PlayerID),
		Position:      p.Position,
		VictoryPoints: p.VictoryPoints,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// Game represents a game in API responses
type Game struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Status          string           `json:"status"`
	MaxPlayers      int              `json:"max_players"`
	CurrentPlayerID *int64           `json:"current_player_id"`
	GameState       *model.GameState `json:"game_state,omitempty"`
	Players         []GamePlayer     `json:"players"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// GameFromModel converts a model.Game including its full board state
func GameFromModel(g *model.Game) Game {
	players := make([]GamePlayer, len(g.Players))
	for i, p := range g.Players {
		players[i] = GamePlayerFromModel(p)
	}

	return Game{
		ID:              int64(g.ID),
		Name:            g.Name,
		Status:          string(g.Status),
		MaxPlayers:      g.MaxPlayers,
		CurrentPlayerID: g.CurrentPlayerID,
		GameState:       g.State,
		Players:         players,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

// GamesFromModel converts a list of games. The board state is omitted from
// list entries to keep them small.
func GamesFromModel(games []*model.Game) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
		out[i].GameState = nil
	}
	return out
}

// StartGameResponse is the response after dealing a board
type StartGameResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	GameState *model.GameState `json:"game_state"`
}

// GameStateResponse is the response for a state query
type GameStateResponse struct {
	GameState       *model.GameState `json:"game_state"`
	CurrentPlayerID int64            `json:"current_player_id"`
	Phase           string           `json:"phase"`
	Winner          *int64           `json:"winner"`
}

// DiceRollResponse is the response after rolling the dice
type DiceRollResponse struct {
	DiceRoll  int              `json:"dice_roll"`
	GameState *model.GameState `json:"game_state"`
}

// BuildResponse is the response after a build action
type BuildResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	Resources     model.ResourceSet `json:"resources"`
	VictoryPoints int               `json:"victory_points"`
	GameState     *model.GameState  `json:"game_state"`
}

// EndTurnResponse is the response after passing the turn
type EndTurnResponse struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message"`
	CurrentPlayerID int64            `json:"current_player_id"`
	GameState       *model.GameState `json:"game_state"`
}

// MoveRobberResponse is the response after moving the robber
type MoveRobberResponse struct {
	Success        bool             `json:"success"`
	Message        string           `json:"message"`
	NewLocation    int              `json:"new_location"`
	StolenResource *string          `json:"stolen_resource"`
	GameState      *model.GameState `json:"game_state"`
}

// TradeResponse is the response after a bank or port trade
type TradeResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Resources model.ResourceSet `json:"resources"`
	GameState *model.GameState  `json:"game_state"`
}

// TradeOfferResponse is the response after posting a trade offer
type TradeOfferResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	TradeOffer *model.TradeOffer `json:"trade_offer"`
	GameState  *model.GameState  `json:"game_state"`
}

// BuyDevCardResponse is the response after buying a development card
type BuyDevCardResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Card      string            `json:"card"`
	Revealed  bool              `json:"revealed"`
	Resources model.ResourceSet `json:"resources"`
	GameState *model.GameState  `json:"game_state"`
}

// PlayDevCardResponse is the response after playing a development card
type PlayDevCardResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	GameState *model.GameState `json:"game_state"`
}

// InitialSetupActionResponse is the response after a setup placement
type InitialSetupActionResponse struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	GameState  *model.GameState `json:"game_state"`
	SetupPhase model.SetupState `json:"setup_phase"`
}

// RootResponse is the API banner served at /
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse reports whether the service and its storage are reachable
type HealthResponse struct {
	Status string `json:"status"`
}
