package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/storage"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) createUser(username, email string) *model.User {
	user := &model.User{
		Username:       username,
		Email:          email,
		HashedPassword: "x",
		IsActive:       true,
	}
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))
	return user
}

func (s *StorageSuite) createGame(name string, maxPlayers int) *model.Game {
	game := &model.Game{
		Name:       name,
		Status:     model.GameStatusWaiting,
		MaxPlayers: maxPlayers,
	}
	s.Require().NoError(s.storage.CreateGame(s.ctx, game))
	return game
}

// User tests

func (s *StorageSuite) TestCreateUserAssignsSequentialIDs() {
	alice := s.createUser("alice", "alice@example.com")
	bob := s.createUser("bob", "bob@example.com")

	s.Equal(model.UserID(1), alice.ID)
	s.Equal(model.UserID(2), bob.ID)
}

func (s *StorageSuite) TestCreateUserDuplicateUsername() {
	s.createUser("alice", "alice@example.com")

	err := s.storage.CreateUser(s.ctx, &model.User{Username: "alice", Email: "other@example.com"})
	s.ErrorIs(err, model.ErrUsernameTaken)
}

func (s *StorageSuite) TestCreateUserDuplicateEmail() {
	s.createUser("alice", "alice@example.com")

	err := s.storage.CreateUser(s.ctx, &model.User{Username: "alice2", Email: "alice@example.com"})
	s.ErrorIs(err, model.ErrEmailTaken)
}

func (s *StorageSuite) TestGetUser() {
	alice := s.createUser("alice", "alice@example.com")

	retrieved, err := s.storage.GetUser(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
	s.Equal("alice@example.com", retrieved.Email)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 999)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestListUsersPagination() {
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		s.createUser(name, name+"@example.com")
	}

	users, err := s.storage.ListUsers(s.ctx, storage.ListParams{Skip: 1, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("bob", users[0].Username)
	s.Equal("carol", users[1].Username)
}

func (s *StorageSuite) TestListUsersSkipPastEnd() {
	s.createUser("alice", "alice@example.com")

	users, err := s.storage.ListUsers(s.ctx, storage.ListParams{Skip: 5, Limit: 10})
	s.Require().NoError(err)
	s.Empty(users)
}

// Game tests

func (s *StorageSuite) TestCreateAndGetGame() {
	game := s.createGame("friday night", 4)
	s.Equal(model.GameID(1), game.ID)

	retrieved, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("friday night", retrieved.Name)
	s.Equal(model.GameStatusWaiting, retrieved.Status)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, 999)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGamesStatusFilter() {
	s.createGame("open", 4)
	running := s.createGame("running", 4)
	running.Status = model.GameStatusInProgress
	s.Require().NoError(s.storage.UpdateGame(s.ctx, running))

	status := model.GameStatusWaiting
	games, err := s.storage.ListGames(s.ctx, storage.GameListParams{
		ListParams: storage.ListParams{Limit: 100},
		Status:     &status,
	})
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal("open", games[0].Name)
}

func (s *StorageSuite) TestUpdateGameNotFound() {
	err := s.storage.UpdateGame(s.ctx, &model.Game{ID: 42})
	s.ErrorIs(err, model.ErrGameNotFound)
}

// AddPlayer tests

func (s *StorageSuite) TestAddPlayerAssignsPositions() {
	alice := s.createUser("alice", "alice@example.com")
	bob := s.createUser("bob", "bob@example.com")
	game := s.createGame("g", 4)

	updated, err := s.storage.AddPlayer(s.ctx, game.ID, alice.ID)
	s.Require().NoError(err)
	s.Require().Len(updated.Players, 1)
	s.Equal(1, updated.Players[0].Position)

	updated, err = s.storage.AddPlayer(s.ctx, game.ID, bob.ID)
	s.Require().NoError(err)
	s.Require().Len(updated.Players, 2)
	s.Equal(2, updated.Players[1].Position)
	s.Equal(bob.ID, updated.Players[1].PlayerID)
}

func (s *StorageSuite) TestAddPlayerDuplicate() {
	alice := s.createUser("alice", "alice@example.com")
	game := s.createGame("g", 4)

	_, err := s.storage.AddPlayer(s.ctx, game.ID, alice.ID)
	s.Require().NoError(err)

	_, err = s.storage.AddPlayer(s.ctx, game.ID, alice.ID)
	s.ErrorIs(err, model.ErrPlayerAlreadyInGame)
}

func (s *StorageSuite) TestAddPlayerGameFull() {
	game := s.createGame("g", 2)
	for _, name := range []string{"alice", "bob"} {
		u := s.createUser(name, name+"@example.com")
		_, err := s.storage.AddPlayer(s.ctx, game.ID, u.ID)
		s.Require().NoError(err)
	}

	carol := s.createUser("carol", "carol@example.com")
	_, err := s.storage.AddPlayer(s.ctx, game.ID, carol.ID)
	s.ErrorIs(err, model.ErrGameFull)
}

func (s *StorageSuite) TestAddPlayerGameNotWaiting() {
	alice := s.createUser("alice", "alice@example.com")
	game := s.createGame("g", 4)
	game.Status = model.GameStatusInProgress
	s.Require().NoError(s.storage.UpdateGame(s.ctx, game))

	_, err := s.storage.AddPlayer(s.ctx, game.ID, alice.ID)
	s.ErrorIs(err, model.ErrGameNotWaiting)
}

func (s *StorageSuite) TestAddPlayerUnknownUser() {
	game := s.createGame("g", 4)

	_, err := s.storage.AddPlayer(s.ctx, game.ID, 999)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestAddPlayerUnknownGame() {
	alice := s.createUser("alice", "alice@example.com")

	_, err := s.storage.AddPlayer(s.ctx, 999, alice.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestAddPlayerConcurrentLastSeat() {
	game := s.createGame("g", 2)
	users := make([]*model.User, 4)
	for i, name := range []string{"alice", "bob", "carol", "dave"} {
		users[i] = s.createUser(name, name+"@example.com")
	}

	var wg sync.WaitGroup
	errs := make([]error, len(users))
	for i, u := range users {
		wg.Add(1)
		go func(i int, id model.UserID) {
			defer wg.Done()
			_, errs[i] = s.storage.AddPlayer(s.ctx, game.ID, id)
		}(i, u.ID)
	}
	wg.Wait()

	joined := 0
	for _, err := range errs {
		if err == nil {
			joined++
		} else {
			s.ErrorIs(err, model.ErrGameFull)
		}
	}
	s.Equal(2, joined)

	final, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Len(final.Players, 2)
}

func (s *StorageSuite) TestPingAndClose() {
	s.NoError(s.storage.Ping(s.ctx))
	s.NoError(s.storage.Close())
}
