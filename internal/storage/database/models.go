package database

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/hexforge/catan-go/internal/model"
)

// userRow is the database representation of a user
type userRow struct {
	ID             int64  `gorm:"primaryKey"`
	Username       string `gorm:"size:50;uniqueIndex:idx_users_username;not null"`
	Email          string `gorm:"size:100;uniqueIndex:idx_users_email;not null"`
	HashedPassword string `gorm:"size:255;not null"`
	IsActive       bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (userRow) TableName() string {
	return "users"
}

func (r *userRow) toModel() *model.User {
	return &model.User{
		ID:             model.UserID(r.ID),
		Username:       r.Username,
		Email:          r.Email,
		HashedPassword: r.HashedPassword,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func userToRow(u *model.User) *userRow {
	return &userRow{
		ID:             int64(u.ID),
		Username:       u.Username,
		Email:          u.Email,
		HashedPassword: u.HashedPassword,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// gameRow is the database representation of a game. The full match state
// lives in the state column as one JSON document; only fields the API
// filters or sorts on get their own columns.
type gameRow struct {
	ID         int64  `gorm:"primaryKey"`
	Name       string `gorm:"size:100;not null"`
	Status     string `gorm:"size:20;not null;default:waiting;index:idx_games_status"`
	MaxPlayers int    `gorm:"not null;default:4"`
	// No foreign key on purpose: bot seats hold negative IDs that have no
	// users row.
	CurrentPlayerID *int64
	State           datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Players         []gamePlayerRow `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

func (gameRow) TableName() string {
	return "games"
}

func (r *gameRow) toModel() (*model.Game, error) {
	game := &model.Game{
		ID:              model.GameID(r.ID),
		Name:            r.Name,
		Status:          model.GameStatus(r.Status),
		MaxPlayers:      r.MaxPlayers,
		CurrentPlayerID: r.CurrentPlayerID,
		Players:         make([]model.GamePlayer, 0, len(r.Players)),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	for i := range r.Players {
		game.Players = append(game.Players, *r.Players[i].toModel())
	}
	if len(r.State) > 0 && string(r.State) != "null" {
		var state model.GameState
		if err := json.Unmarshal(r.State, &state); err != nil {
			return nil, fmt.Errorf("unmarshaling game %d state: %w", r.ID, err)
		}
		game.State = &state
	}
	return game, nil
}

func gameToRow(g *model.Game) (*gameRow, error) {
	row := &gameRow{
		ID:              int64(g.ID),
		Name:            g.Name,
		Status:          string(g.Status),
		MaxPlayers:      g.MaxPlayers,
		CurrentPlayerID: g.CurrentPlayerID,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
	if g.State != nil {
		raw, err := json.Marshal(g.State)
		if err != nil {
			return nil, fmt.Errorf("marshaling game %d state: %w", g.ID, err)
		}
		row.State = raw
	}
	return row, nil
}

// gamePlayerRow is the database representation of a seat taken by a user.
// The composite unique index backs the duplicate-join check.
type gamePlayerRow struct {
	ID            int64 `gorm:"primaryKey"`
	GameID        int64 `gorm:"not null;uniqueIndex:idx_game_players_seat,priority:1"`
	PlayerID      int64 `gorm:"not null;uniqueIndex:idx_game_players_seat,priority:2"`
	Position      int   `gorm:"not null"`
	VictoryPoints int   `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (gamePlayerRow) TableName() string {
	return "game_players"
}

func (r *gamePlayerRow) toModel() *model.GamePlayer {
	return &model.GamePlayer{
		ID:            r.ID,
		GameID:        model.GameID(r.GameID),
		PlayerID:      model.UserID(r.PlayerID),
		Position:      r.Position,
		VictoryPoints: r.VictoryPoints,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
