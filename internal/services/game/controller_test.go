package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hexforge/catan-go/internal/dependencies/mocks"
	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/storage/memory"
	"github.com/hexforge/catan-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.controller = NewController(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ControllerSuite) createUser(username string) *model.User {
	user := &model.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: "hash",
		IsActive:       true,
	}
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))
	return user
}

func (s *ControllerSuite) TestCreateGameSucceeds() {
	game, err := s.controller.CreateGame(s.ctx, "Friday Game", 4)
	s.Require().NoError(err)

	s.NotZero(game.ID)
	s.Equal("Friday Game", game.Name)
	s.Equal(model.GameStatusWaiting, game.Status)
	s.Equal(4, game.MaxPlayers)
	s.Empty(game.Players)
	s.Nil(game.CurrentPlayerID)
	s.Nil(game.State)
	s.Equal(s.clock.CurrentTime, game.CreatedAt)
}

func (s *ControllerSuite) TestCreateGameRejectsEmptyName() {
	_, err := s.controller.CreateGame(s.ctx, "   ", 4)
	s.True(model.IsValidationError(err))
}

func (s *ControllerSuite) TestCreateGameRejectsBadMaxPlayers() {
	for _, n := range []int{-1, 0, 1, 5} {
		_, err := s.controller.CreateGame(s.ctx, "Friday Game", n)
		s.True(model.IsValidationError(err), "max_players %d should be rejected", n)
	}
}

func (s *ControllerSuite) TestGetGameNotFound() {
	_, err := s.controller.GetGame(s.ctx, 9999)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestListGamesFiltersByStatus() {
	g1, err := s.controller.CreateGame(s.ctx, "First", 4)
	s.Require().NoError(err)
	_, err = s.controller.CreateGame(s.ctx, "Second", 4)
	s.Require().NoError(err)

	abandoned := model.GameStatusAbandoned
	_, err = s.controller.UpdateGame(s.ctx, g1.ID, UpdateParams{Status: &abandoned})
	s.Require().NoError(err)

	waiting := model.GameStatusWaiting
	games, err := s.controller.ListGames(s.ctx, 0, 100, &waiting)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal("Second", games[0].Name)
}

func (s *ControllerSuite) TestListGamesRejectsBadRange() {
	_, err := s.controller.ListGames(s.ctx, -1, 100, nil)
	s.True(model.IsValidationError(err))

	_, err = s.controller.ListGames(s.ctx, 0, 200, nil)
	s.True(model.IsValidationError(err))
}

func (s *ControllerSuite) TestUpdateGameAppliesOnlySuppliedFields() {
	game, err := s.controller.CreateGame(s.ctx, "Friday Game", 3)
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)

	name := "Saturday Game"
	updated, err := s.controller.UpdateGame(s.ctx, game.ID, UpdateParams{Name: &name})
	s.Require().NoError(err)

	s.Equal("Saturday Game", updated.Name)
	s.Equal(model.GameStatusWaiting, updated.Status)
	s.Equal(3, updated.MaxPlayers)
	s.Equal(game.CreatedAt, updated.CreatedAt)
	s.Equal(game.CreatedAt.Add(time.Minute), updated.UpdatedAt)
}

func (s *ControllerSuite) TestUpdateGameLegalTransition() {
	game, err := s.controller.CreateGame(s.ctx, "Friday Game", 4)
	s.Require().NoError(err)

	inProgress := model.GameStatusInProgress
	updated, err := s.controller.UpdateGame(s.ctx, game.ID, UpdateParams{Status: &inProgress})
	s.Require().NoError(err)
	s.Equal(model.GameStatusInProgress, updated.Status)

	finished := model.GameStatusFinished
	updated, err = s.controller.UpdateGame(s.ctx, game.ID, UpdateParams{Status: &finished})
	s.Require().NoError(err)
	s.Equal(model.GameStatusFinished, updated.Status)
}

func (s *ControllerSuite) TestUpdateGameIllegalTransition() {
	game, err := s.controller.CreateGame(s.ctx, "Friday Game", 4)
	s.Require().NoError(err)

	finished := model.GameStatusFinished
	_, err = s.controller.UpdateGame(s.ctx, game.ID, UpdateParams{Status: &finished})
	s.ErrorIs(err, model.ErrInvalidStatusTransition)
}

func (s *ControllerSuite) TestUpdateGameTerminalStatusIsFrozen() {
	game, err := s.controller.CreateGame(s.ctx, "Friday Game", 4)
	s.Require().NoError(err)

	abandoned := model.GameStatusAbandoned
	_, err = s.controller.UpdateGame(s.ctx, game.ID, UpdateParams{Status: &abandoned})
	s.Require().NoError(err)

	waiting := model.GameStatusWaiting
	_, err = s.controller.UpdateGame(s.ctx, game.ID, UpdateParams{Status: &waiting})
	s.ErrorIs(err, model.ErrInvalidStatusTransition)
}

func (s *ControllerSuite) TestUpdateGameSameStatusIsNoOp() {
	game, err := s.controller.CreateGame(s.ctx, "Friday Game", 4)
	s.Require().NoError(err)

	waiting := model.GameStatusWaiting
	updated, err := s.controller.UpdateGame(s.ctx, game.ID, UpdateParams{Status: &waiting})
	s.Require().NoError(err)
	s.Equal(model.GameStatusWaiting, updated.Status)
}

func (s *ControllerSuite) TestUpdateGameSetsCurrentPlayer() {
	game, err := s.controller.CreateGame(s.ctx, "Friday Game", 4)
	s.Require().NoError(err)

	seat := int64(-1)
	updated, err := s.controller.UpdateGame(s.ctx, game.ID, UpdateParams{CurrentPlayerID: &seat})
	s.Require().NoError(err)
	s.Require().NotNil(updated.CurrentPlayerID)
	s.Equal(int64(-1), *updated.CurrentPlayerID)
}

func (s *ControllerSuite) TestUpdateGameNotFound() {
	name := "anything"
	_, err := s.controller.UpdateGame(s.ctx, 9999, UpdateParams{Name: &name})
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestAddPlayerSeatsInJoinOrder() {
	game, err := s.controller.CreateGame(s.ctx, "Friday Game", 4)
	s.Require().NoError(err)

	alice := s.createUser("alice")
	bob := s.createUser("bob")

	_, err = s.controller.AddPlayer(s.ctx, game.ID, alice.ID)
	s.Require().NoError(err)
	updated, err := s.controller.AddPlayer(s.ctx, game.ID, bob.ID)
	s.Require().NoError(err)

	s.Require().Len(updated.Players, 2)
	s.Equal(alice.ID, updated.Players[0].PlayerID)
	s.Equal(1, updated.Players[0].Position)
	s.Equal(bob.ID, updated.Players[1].PlayerID)
	s.Equal(2, updated.Players[1].Position)
}

func (s *ControllerSuite) TestAddPlayerDuplicate() {
	game, err := s.controller.CreateGame(s.ctx, "Friday Game", 4)
	s.Require().NoError(err)
	alice := s.createUser("alice")

	_, err = s.controller.AddPlayer(s.ctx, game.ID, alice.ID)
	s.Require().NoError(err)

	_, err = s.controller.AddPlayer(s.ctx, game.ID, alice.ID)
	s.ErrorIs(err, model.ErrPlayerAlreadyInGame)
}

func (s *ControllerSuite) TestAddPlayerFullGame() {
	game, err := s.controller.CreateGame(s.ctx, "Duel", 2)
	s.Require().NoError(err)

	for _, name := range []string{"alice", "bob"} {
		u := s.createUser(name)
		_, err = s.controller.AddPlayer(s.ctx, game.ID, u.ID)
		s.Require().NoError(err)
	}

	carol := s.createUser("carol")
	_, err = s.controller.AddPlayer(s.ctx, game.ID, carol.ID)
	s.ErrorIs(err, model.ErrGameFull)
}

func (s *ControllerSuite) TestAddPlayerUnknownUser() {
	game, err := s.controller.CreateGame(s.ctx, "Friday Game", 4)
	s.Require().NoError(err)

	_, err = s.controller.AddPlayer(s.ctx, game.ID, 9999)
	s.ErrorIs(err, model.ErrUserNotFound)
}
