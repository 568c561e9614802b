package model

import "time"

// GameID uniquely identifies a game
type GameID int64

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	GameStatusWaiting    GameStatus = "waiting"     // Gathering players
	GameStatusInProgress GameStatus = "in_progress" // Game currently active
	GameStatusFinished   GameStatus = "finished"    // Somebody won
	GameStatusAbandoned  GameStatus = "abandoned"   // Cancelled before completion
)

// statusTransitions is the closed set of legal status changes.
// Finished and abandoned are terminal.
var statusTransitions = map[GameStatus][]GameStatus{
	GameStatusWaiting:    {GameStatusInProgress, GameStatusAbandoned},
	GameStatusInProgress: {GameStatusFinished, GameStatusAbandoned},
	GameStatusFinished:   {},
	GameStatusAbandoned:  {},
}

// ParseGameStatus validates a raw status string
func ParseGameStatus(s string) (GameStatus, error) {
	switch GameStatus(s) {
	case GameStatusWaiting, GameStatusInProgress, GameStatusFinished, GameStatusAbandoned:
		return GameStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// CanTransitionTo reports whether moving from s to target is legal
func (s GameStatus) CanTransitionTo(target GameStatus) bool {
	for _, t := range statusTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s GameStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// GamePlayer is a user's membership in a game
type GamePlayer struct {
	ID            int64
	GameID        GameID
	PlayerID      UserID
	Position      int // 1-based join order, determines turn order
	VictoryPoints int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Game represents a single hosted match
type Game struct {
	ID              GameID
	Name            string
	Status          GameStatus
	MaxPlayers      int
	CurrentPlayerID *int64 // Seat whose turn it is; negative for bot seats
	Players         []GamePlayer
	State           *GameState // nil until the game is started
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultMaxPlayers is used when a game is created without an explicit limit
const DefaultMaxPlayers = 4

// MinPlayersToStart is the minimum number of joined players required to start
const MinPlayersToStart = 2

// HasPlayer reports whether the user has joined this game
func (g *Game) HasPlayer(id UserID) bool {
	for _, p := range g.Players {
		if p.PlayerID == id {
			return true
		}
	}
	return false
}

// PlayerCount returns the number of joined players
func (g *Game) PlayerCount() int {
	return len(g.Players)
}

// IsFull reports whether no further players can join
func (g *Game) IsFull() bool {
	return len(g.Players) >= g.MaxPlayers
}
