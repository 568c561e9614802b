package catan

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hexforge/catan-go/internal/dependencies/mocks"
	"github.com/hexforge/catan-go/internal/dependencies/random"
	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/services/board"
	"github.com/hexforge/catan-go/internal/services/scoring"
	"github.com/hexforge/catan-go/internal/storage/memory"
	"github.com/hexforge/catan-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(
		s.storage,
		board.New(s.random),
		scoring.New(),
		s.clock,
		s.random,
		testutil.NopLogger(),
	)
	s.ctx = context.Background()
}

// createGame seeds a waiting game with the given number of joined players.
func (s *ControllerSuite) createGame(players int) *model.Game {
	game := &model.Game{
		Name:       "test game",
		Status:     model.GameStatusWaiting,
		MaxPlayers: model.DefaultMaxPlayers,
		CreatedAt:  s.clock.Now(),
		UpdatedAt:  s.clock.Now(),
	}
	s.Require().NoError(s.storage.CreateGame(s.ctx, game))
	for i := 0; i < players; i++ {
		user := &model.User{
			Username:       fmt.Sprintf("player%d", i+1),
			Email:          fmt.Sprintf("player%d@example.com", i+1),
			HashedPassword: "irrelevant",
			IsActive:       true,
		}
		s.Require().NoError(s.storage.CreateUser(s.ctx, user))
		_, err := s.storage.AddPlayer(s.ctx, game.ID, user.ID)
		s.Require().NoError(err)
	}
	got, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	return got
}

func (s *ControllerSuite) startWithBots(players int) *model.Game {
	s.controller.SetBotPlayer(&testBot{random: s.random, scoring: scoring.New()})
	game := s.createGame(players)
	started, err := s.controller.StartGame(s.ctx, game.ID)
	s.Require().NoError(err)
	return started
}

// placeCurrentHuman plays the current seat's setup placements through the
// controller API, taking the first legal spots.
func (s *ControllerSuite) placeCurrentHuman(gameID model.GameID) {
	game, err := s.storage.GetGame(s.ctx, gameID)
	s.Require().NoError(err)
	gs := game.State

	settled := model.VertexID(-1)
	for _, v := range gs.Vertices {
		if _, err := s.controller.PlaceSetup(s.ctx, gameID, "place_settlement", v.ID, 0, 0); err == nil {
			settled = v.ID
			break
		}
	}
	s.Require().GreaterOrEqual(int(settled), 0, "no legal settlement spot")

	for _, e := range gs.Edges {
		if e.Owner == nil && e.Connects(settled) {
			if _, err := s.controller.PlaceSetup(s.ctx, gameID, "place_road", 0, e.V1, e.V2); err == nil {
				return
			}
		}
	}
	for _, e := range gs.Edges {
		if e.Owner == nil {
			if _, err := s.controller.PlaceSetup(s.ctx, gameID, "place_road", 0, e.V1, e.V2); err == nil {
				return
			}
		}
	}
	s.Require().Fail("no legal road spot")
}

// finishSetup drives human turns until the placement phase completes. Bot
// seats play themselves through the end-turn cascade.
func (s *ControllerSuite) finishSetup(gameID model.GameID) *model.Game {
	for i := 0; i < 8; i++ {
		game, err := s.storage.GetGame(s.ctx, gameID)
		s.Require().NoError(err)
		if game.State.Phase != model.PhaseInitialSetup {
			return game
		}
		s.placeCurrentHuman(gameID)
		_, err = s.controller.EndTurn(s.ctx, gameID)
		s.Require().NoError(err)
	}
	game, err := s.storage.GetGame(s.ctx, gameID)
	s.Require().NoError(err)
	s.Require().Equal(model.PhaseTurn, game.State.Phase, "setup did not complete")
	return game
}

func (s *ControllerSuite) seatOf(game *model.Game, position int) model.SeatID {
	for _, seat := range game.State.Seats {
		if seat.Position == position {
			return seat.PlayerID
		}
	}
	s.Require().Fail("no seat at position", "position %d", position)
	return 0
}

// testBot drives bot seats with the first legal move it finds, enough to
// exercise the end-turn cascade without real strategy.
type testBot struct {
	random  random.Random
	scoring *scoring.Service
}

func (b *testBot) PlayTurn(gs *model.GameState, seat model.SeatID) error {
	eng := NewEngine(gs, b.random, b.scoring)
	if gs.Phase == model.PhaseInitialSetup {
		if err := b.place(eng, gs, seat); err != nil {
			return err
		}
	}
	_, err := eng.AdvanceTurn()
	return err
}

func (b *testBot) place(eng *Engine, gs *model.GameState, seat model.SeatID) error {
	settled := model.VertexID(-1)
	for _, v := range gs.Vertices {
		if err := eng.BuildSettlement(seat, v.ID); err == nil {
			settled = v.ID
			break
		}
	}
	if settled < 0 {
		return model.NewRuleError("no free vertex for bot seat %d", seat)
	}
	for _, e := range gs.Edges {
		if e.Owner == nil && e.Connects(settled) {
			if err := eng.BuildRoad(seat, e.V1, e.V2); err == nil {
				return nil
			}
		}
	}
	for _, e := range gs.Edges {
		if e.Owner == nil {
			if err := eng.BuildRoad(seat, e.V1, e.V2); err == nil {
				return nil
			}
		}
	}
	return model.NewRuleError("no free edge for bot seat %d", seat)
}

// Starting games

func (s *ControllerSuite) TestStartGameDealsSeatsAndBoard() {
	game := s.createGame(2)

	started, err := s.controller.StartGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStatusInProgress, started.Status)
	s.Require().NotNil(started.State)

	gs := started.State
	s.Require().Len(gs.Seats, 4)
	s.False(gs.Seats[0].PlayerID.IsBot())
	s.False(gs.Seats[1].PlayerID.IsBot())
	s.Equal(model.SeatID(-1), gs.Seats[2].PlayerID)
	s.Equal(model.SeatID(-2), gs.Seats[3].PlayerID)
	s.True(gs.Seats[2].IsBot)
	s.Equal(3, gs.Seats[2].Position)
	s.Equal(4, gs.Seats[3].Position)

	s.Len(gs.Hexes, 19)
	s.Len(gs.Vertices, 54)
	s.Len(gs.Edges, 72)
	s.Len(gs.Ports, 9)
	s.Len(gs.Deck, 25)
	s.True(gs.HexByIndex(gs.RobberHex).HasRobber)

	s.Equal(model.PhaseInitialSetup, gs.Phase)
	s.Equal(model.SetupState{Round: 1, SeatIndex: 0}, gs.Setup)
	s.Require().NotNil(started.CurrentPlayerID)
	s.Equal(int64(gs.Seats[0].PlayerID), *started.CurrentPlayerID)

	s.Len(gs.Resources, 4)
	for _, seat := range gs.Seats {
		s.Equal(0, gs.Resources[seat.PlayerID].Total())
	}

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.NotNil(stored.State)
}

func (s *ControllerSuite) TestStartGameFillsRemainingSeatsOnly() {
	game := s.createGame(3)

	started, err := s.controller.StartGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().Len(started.State.Seats, 4)
	s.Equal(model.SeatID(-1), started.State.Seats[3].PlayerID)
}

func (s *ControllerSuite) TestStartGameRequiresWaitingStatus() {
	game := s.createGame(2)
	_, err := s.controller.StartGame(s.ctx, game.ID)
	s.Require().NoError(err)

	_, err = s.controller.StartGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotWaiting)
}

func (s *ControllerSuite) TestStartGameRequiresEnoughPlayers() {
	game := s.createGame(1)
	_, err := s.controller.StartGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrNotEnoughPlayers)
}

func (s *ControllerSuite) TestStartGameUnknownGame() {
	_, err := s.controller.StartGame(s.ctx, 999)
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Guards

func (s *ControllerSuite) TestActionsRequireStartedGame() {
	game := s.createGame(2)

	_, err := s.controller.RollDice(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotStarted)
	_, err = s.controller.BuildSettlement(s.ctx, game.ID, 0)
	s.ErrorIs(err, model.ErrGameNotStarted)
	_, err = s.controller.GetState(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotStarted)
}

func (s *ControllerSuite) TestActionsRequireGameInProgress() {
	game := s.startWithBots(2)
	game.Status = model.GameStatusAbandoned
	s.Require().NoError(s.storage.UpdateGame(s.ctx, game))

	_, err := s.controller.RollDice(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotInProgress)
}

func (s *ControllerSuite) TestGetStateRequiresStartedGame() {
	game := s.createGame(2)
	_, err := s.controller.GetState(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotStarted)
}

// Setup and the bot cascade

func (s *ControllerSuite) TestEndTurnCascadesThroughBotSeats() {
	game := s.startWithBots(2)
	h2 := s.seatOf(game, 2)

	// First human places and passes to the second human, no bots yet
	s.placeCurrentHuman(game.ID)
	turn, err := s.controller.EndTurn(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(h2, turn.CurrentSeat)

	// The second human's end-turn sends both bots through round one and,
	// with the snake reversed, through round two, back to this human
	s.placeCurrentHuman(game.ID)
	turn, err = s.controller.EndTurn(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(h2, turn.CurrentSeat)
	s.Equal(2, turn.Game.State.Setup.Round)

	for _, seat := range turn.Game.State.Seats {
		if seat.PlayerID.IsBot() {
			s.Equal(2, countBuildings(turn.Game.State, seat.PlayerID), "bot seat %d", seat.PlayerID)
			s.Equal(2, countRoads(turn.Game.State, seat.PlayerID), "bot seat %d", seat.PlayerID)
		}
	}
}

func (s *ControllerSuite) TestSetupRunsToFirstTurn() {
	game := s.startWithBots(2)
	done := s.finishSetup(game.ID)

	s.Equal(model.PhaseTurn, done.State.Phase)
	s.Equal(0, done.State.CurrentSeat)
	for _, seat := range done.State.Seats {
		s.Equal(2, countBuildings(done.State, seat.PlayerID), "seat %d", seat.PlayerID)
		s.Equal(2, countRoads(done.State, seat.PlayerID), "seat %d", seat.PlayerID)
		s.Equal(2, seat.VictoryPoints, "seat %d", seat.PlayerID)
	}
	s.Require().NotNil(done.CurrentPlayerID)
	s.Equal(int64(done.State.Seats[0].PlayerID), *done.CurrentPlayerID)
}

func (s *ControllerSuite) TestBotSeatsIdleWithoutDriver() {
	game := s.createGame(2)
	_, err := s.controller.StartGame(s.ctx, game.ID)
	s.Require().NoError(err)

	s.placeCurrentHuman(game.ID)
	_, err = s.controller.EndTurn(s.ctx, game.ID)
	s.Require().NoError(err)
	s.placeCurrentHuman(game.ID)

	turn, err := s.controller.EndTurn(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.SeatID(-1), turn.CurrentSeat)
}

func (s *ControllerSuite) TestPlaceSetupRejectsUnknownAction() {
	game := s.startWithBots(2)
	_, err := s.controller.PlaceSetup(s.ctx, game.ID, "dance", 0, 0, 0)
	s.ErrorIs(err, model.ErrUnknownSetupAction)
}

func (s *ControllerSuite) TestPlaceSetupOnlyDuringSetupPhase() {
	game := s.startWithBots(2)
	s.finishSetup(game.ID)

	_, err := s.controller.PlaceSetup(s.ctx, game.ID, "place_settlement", 0, 0, 0)
	s.ErrorIs(err, model.ErrWrongPhase)
}

// Turn actions against storage

func (s *ControllerSuite) TestRollDicePersistsRoll() {
	game := s.startWithBots(2)
	s.finishSetup(game.ID)

	s.random.QueueIntn(2, 1) // 3 + 2
	result, err := s.controller.RollDice(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(5, result.Roll)

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(5, stored.State.LastRoll)
}

func (s *ControllerSuite) TestBuildCitySyncsVictoryPoints() {
	game := s.startWithBots(2)
	done := s.finishSetup(game.ID)
	seat := done.State.Seats[0].PlayerID

	// Replace the setup grants with exactly the city cost
	done.State.Resources[seat] = model.NewResourceSet()
	done.State.ResourcesFor(seat).Add(model.CityCost)
	s.Require().NoError(s.storage.UpdateGame(s.ctx, done))

	target := model.VertexID(-1)
	for _, v := range done.State.Vertices {
		if v.OwnedBy(seat) && v.Building == model.BuildingSettlement {
			target = v.ID
			break
		}
	}
	s.Require().GreaterOrEqual(int(target), 0)

	result, err := s.controller.BuildCity(s.ctx, game.ID, target)
	s.Require().NoError(err)
	s.Equal(3, result.VictoryPoints)
	s.Equal(0, result.Resources.Total())

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	for _, p := range stored.Players {
		if model.SeatID(p.PlayerID) == seat {
			s.Equal(3, p.VictoryPoints)
		}
	}
}

func (s *ControllerSuite) TestMoveRobberPersistsLocation() {
	game := s.startWithBots(2)
	s.finishSetup(game.ID)

	result, err := s.controller.MoveRobber(s.ctx, game.ID, 2, nil)
	s.Require().NoError(err)
	s.Equal(2, result.NewLocation)
	s.Equal(model.Resource(""), result.Stolen)

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(2, stored.State.RobberHex)
	s.True(stored.State.HexByIndex(2).HasRobber)
}

func (s *ControllerSuite) TestGameFinishesAtTenPoints() {
	game := s.startWithBots(2)
	done := s.finishSetup(game.ID)
	seat := done.State.Seats[0].PlayerID

	// Push the seat to the brink, then let a real build cross the line
	added := 0
	for i := range done.State.Vertices {
		v := &done.State.Vertices[i]
		if v.Owner == nil && added < 8 {
			v.Owner = &seat
			v.Building = model.BuildingSettlement
			added++
		}
	}
	s.Require().Equal(8, added)
	done.State.ResourcesFor(seat).Add(model.CityCost)
	s.Require().NoError(s.storage.UpdateGame(s.ctx, done))

	target := model.VertexID(-1)
	for _, v := range done.State.Vertices {
		if v.OwnedBy(seat) && v.Building == model.BuildingSettlement {
			target = v.ID
			break
		}
	}
	result, err := s.controller.BuildCity(s.ctx, game.ID, target)
	s.Require().NoError(err)
	s.GreaterOrEqual(result.VictoryPoints, 10)

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStatusFinished, stored.Status)
	s.Equal(model.PhaseFinished, stored.State.Phase)

	info, err := s.controller.GetState(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().NotNil(info.Winner)
	s.Equal(seat, *info.Winner)

	_, err = s.controller.RollDice(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotInProgress)
}

func countBuildings(gs *model.GameState, seat model.SeatID) int {
	n := 0
	for i := range gs.Vertices {
		if gs.Vertices[i].OwnedBy(seat) {
			n++
		}
	}
	return n
}

func countRoads(gs *model.GameState, seat model.SeatID) int {
	n := 0
	for i := range gs.Edges {
		if gs.Edges[i].OwnedBy(seat) {
			n++
		}
	}
	return n
}
