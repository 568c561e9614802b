package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexforge/catan-go/internal/model"
)

// captureOutput runs fn with stdout redirected to a buffer
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := NewOutput("json")

	got := captureOutput(t, func() {
		out.Print(User{ID: 7, Username: "alice", Email: "alice@example.com", IsActive: true})
	})

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, float64(7), decoded["id"])
	assert.Equal(t, "alice", decoded["username"])

	// Indented for reading, not a single line
	assert.Contains(t, got, "\n  \"id\"")
}

func TestPrintTextUser(t *testing.T) {
	out := NewOutput("text")

	got := captureOutput(t, func() {
		out.Print(User{ID: 7, Username: "alice", Email: "alice@example.com", IsActive: true})
	})

	assert.Contains(t, got, "User: alice (7)")
	assert.Contains(t, got, "Email: alice@example.com")
	assert.Contains(t, got, "Active: yes")
}

func TestPrintTextGame(t *testing.T) {
	out := NewOutput("text")
	current := int64(3)

	got := captureOutput(t, func() {
		out.Print(Game{
			ID:              1,
			Name:            "Friday Game",
			Status:          "waiting",
			MaxPlayers:      4,
			CurrentPlayerID: &current,
			Players: []GamePlayer{
				{PlayerID: 3, Position: 1, VictoryPoints: 2},
				{PlayerID: 5, Position: 2},
			},
		})
	})

	assert.Contains(t, got, "Game: Friday Game (1)")
	assert.Contains(t, got, "Status: waiting")
	assert.Contains(t, got, "Players (2/4):")
	assert.Contains(t, got, "#1 player 3 - 2 VP [current]")
	assert.Contains(t, got, "#2 player 5 - 0 VP\n")
}

func TestPrintTextGameSummary(t *testing.T) {
	out := NewOutput("text")

	gs := &model.GameState{
		Seats: []model.Seat{
			{PlayerID: 3, Position: 1, VictoryPoints: 4},
			{PlayerID: -1, Position: 2, IsBot: true, VictoryPoints: 2},
		},
		Resources: map[model.SeatID]model.ResourceSet{
			3:  {model.ResourceWood: 2, model.ResourceOre: 1},
			-1: {},
		},
		DevCards: map[model.SeatID][]model.DevCard{
			3: {model.DevCardKnight},
		},
		CurrentSeat: 1,
		Phase:       model.PhaseTurn,
		LastRoll:    6,
		RobberHex:   9,
	}

	got := captureOutput(t, func() {
		out.Print(StateResult{GameState: gs, CurrentPlayerID: -1, Phase: "turn"})
	})

	assert.Contains(t, got, "Phase: turn")
	assert.Contains(t, got, "Current player: -1")
	assert.Contains(t, got, "Last roll: 6")
	assert.Contains(t, got, "Robber: hex 9")
	assert.Contains(t, got, "#1 player 3 (human) - 4 VP, 3 cards, 1 dev")
	assert.Contains(t, got, "#2 player -1 (bot) - 2 VP, 0 cards, 0 dev")
	assert.NotContains(t, got, "Winner")
	assert.NotContains(t, got, "Setup round")
}

func TestPrintTextWinner(t *testing.T) {
	out := NewOutput("text")
	winner := int64(3)

	got := captureOutput(t, func() {
		out.Print(StateResult{
			GameState: &model.GameState{Phase: model.PhaseFinished},
			Winner:    &winner,
		})
	})

	assert.Contains(t, got, "Winner: player 3")
}

func TestPrintTextRollHintsRobberOnSeven(t *testing.T) {
	out := NewOutput("text")

	got := captureOutput(t, func() {
		out.Print(RollResult{DiceRoll: 7})
	})
	assert.Contains(t, got, "Rolled: 7")
	assert.Contains(t, got, "play robber")

	got = captureOutput(t, func() {
		out.Print(RollResult{DiceRoll: 8})
	})
	assert.NotContains(t, got, "robber")
}

func TestPrintTextResourcesStableOrder(t *testing.T) {
	out := NewOutput("text")

	got := captureOutput(t, func() {
		out.Print(TradeResult{
			Message: "Trade completed",
			Resources: model.ResourceSet{
				model.ResourceOre:   2,
				model.ResourceWood:  1,
				model.ResourceBrick: 0,
			},
		})
	})

	assert.Contains(t, got, "Trade completed")
	// Zero counts are omitted and wood sorts before ore
	assert.NotContains(t, got, "brick")
	wood := bytes.Index([]byte(got), []byte("wood"))
	ore := bytes.Index([]byte(got), []byte("ore"))
	require.GreaterOrEqual(t, wood, 0)
	require.GreaterOrEqual(t, ore, 0)
	assert.Less(t, wood, ore)
}

func TestPrintMessage(t *testing.T) {
	got := captureOutput(t, func() {
		NewOutput("text").PrintMessage("done")
	})
	assert.Equal(t, "done\n", got)

	got = captureOutput(t, func() {
		NewOutput("json").PrintMessage("done")
	})
	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, "done", decoded["message"])
}
