package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hexforge/catan-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// createTwoPlayerGame registers two users and joins them to a fresh game.
func (s *IntegrationSuite) createTwoPlayerGame() (*model.User, *model.User, *model.Game) {
	alice, err := s.app.UserController.CreateUser(s.ctx, "alice", "alice@example.com", "password1")
	s.Require().NoError(err)
	bob, err := s.app.UserController.CreateUser(s.ctx, "bob", "bob@example.com", "password2")
	s.Require().NoError(err)

	game, err := s.app.GameController.CreateGame(s.ctx, "Friday Game", 4)
	s.Require().NoError(err)
	_, err = s.app.GameController.AddPlayer(s.ctx, game.ID, alice.ID)
	s.Require().NoError(err)
	game, err = s.app.GameController.AddPlayer(s.ctx, game.ID, bob.ID)
	s.Require().NoError(err)

	return alice, bob, game
}

// runSetup plays both human seats through the snake setup on the
// deterministic unshuffled board. The humans keep to the low-yield
// northern corner (vertices 0-9) so the greedy bots, which always take
// the best interior spots, never contend for the same vertices.
func (s *IntegrationSuite) runSetup(gameID model.GameID, alice, bob *model.User) {
	// Round 1: alice settles vertex 0, roads the 0-1 edge
	_, err := s.app.CatanController.PlaceSetup(s.ctx, gameID, "place_settlement", 0, 0, 0)
	s.Require().NoError(err)
	_, err = s.app.CatanController.PlaceSetup(s.ctx, gameID, "place_road", 0, 0, 1)
	s.Require().NoError(err)
	turn, err := s.app.CatanController.EndTurn(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(model.SeatID(bob.ID), turn.CurrentSeat)

	// Round 1: bob settles vertex 2
	_, err = s.app.CatanController.PlaceSetup(s.ctx, gameID, "place_settlement", 2, 0, 0)
	s.Require().NoError(err)
	_, err = s.app.CatanController.PlaceSetup(s.ctx, gameID, "place_road", 0, 1, 2)
	s.Require().NoError(err)

	// Ending bob's turn cascades through all four bot setup turns (two
	// bots forward, then both again on the reversed pass) back to bob
	turn, err = s.app.CatanController.EndTurn(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(model.SeatID(bob.ID), turn.CurrentSeat)
	s.Equal(2, turn.Game.State.Setup.Round)

	// Round 2: bob settles vertex 4, which borders only the forest hex
	_, err = s.app.CatanController.PlaceSetup(s.ctx, gameID, "place_settlement", 4, 0, 0)
	s.Require().NoError(err)
	_, err = s.app.CatanController.PlaceSetup(s.ctx, gameID, "place_road", 0, 4, 5)
	s.Require().NoError(err)
	turn, err = s.app.CatanController.EndTurn(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(model.SeatID(alice.ID), turn.CurrentSeat)

	// Round 2: alice settles vertex 6 between the two northern forests
	_, err = s.app.CatanController.PlaceSetup(s.ctx, gameID, "place_settlement", 6, 0, 0)
	s.Require().NoError(err)
	_, err = s.app.CatanController.PlaceSetup(s.ctx, gameID, "place_road", 0, 6, 7)
	s.Require().NoError(err)
	turn, err = s.app.CatanController.EndTurn(s.ctx, gameID)
	s.Require().NoError(err)

	s.Equal(model.PhaseTurn, turn.Game.State.Phase)
	s.Equal(model.SeatID(alice.ID), turn.CurrentSeat)
}

// Test: factory defaults and configuration validation
func (s *IntegrationSuite) TestFactoryStorageSelection() {
	app, err := New(Config{})
	s.Require().NoError(err)
	s.NoError(app.Storage.Ping(s.ctx))

	_, err = New(Config{StorageType: "database"})
	s.Error(err)

	_, err = New(Config{StorageType: "carrier-pigeon"})
	s.Error(err)
}

// Test: complete flow from user registration through the first played turn
func (s *IntegrationSuite) TestFullGameFlow() {
	alice, bob, game := s.createTwoPlayerGame()

	started, err := s.app.CatanController.StartGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStatusInProgress, started.Status)
	s.Require().NotNil(started.State)
	s.Len(started.State.Seats, 4)
	s.True(started.State.Seats[2].IsBot)
	s.True(started.State.Seats[3].IsBot)
	s.Equal(model.PhaseInitialSetup, started.State.Phase)
	s.Len(started.State.Deck, 25)

	s.runSetup(game.ID, alice, bob)

	// Both humans hold two settlements
	info, err := s.app.CatanController.GetState(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Nil(info.Winner)
	aliceSeat := info.Game.State.SeatFor(model.SeatID(alice.ID))
	s.Require().NotNil(aliceSeat)
	s.Equal(2, aliceSeat.VictoryPoints)

	// The second settlement paid out its adjacent hexes: alice's vertex 6
	// touches two forests, bob's vertices granted one wood each
	s.Equal(2, info.Game.State.ResourcesFor(model.SeatID(alice.ID))[model.ResourceWood])

	// Alice rolls snake eyes (mock dice exhaust to ones); the lone
	// two-token forest pays every settlement on its ring
	roll, err := s.app.CatanController.RollDice(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(2, roll.Roll)
	s.Equal(3, roll.Game.State.ResourcesFor(model.SeatID(alice.ID))[model.ResourceWood])
	s.Equal(3, roll.Game.State.ResourcesFor(model.SeatID(bob.ID))[model.ResourceWood])

	// All wood, no brick: the road is refused and costs nothing
	_, err = s.app.CatanController.BuildRoad(s.ctx, game.ID, 0, 9)
	s.Require().Error(err)
	s.True(model.IsRuleError(err))
	s.Equal(3, s.mustState(game.ID).ResourcesFor(model.SeatID(alice.ID))[model.ResourceWood])

	// Turn passes to bob, the next human
	turn, err := s.app.CatanController.EndTurn(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.SeatID(bob.ID), turn.CurrentSeat)

	// Victory points are mirrored onto the game row for both humans
	updated, err := s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	for _, p := range updated.Players {
		s.Equal(2, p.VictoryPoints)
	}
}

// Test: a seven lets the roller move the robber and steal from a victim
func (s *IntegrationSuite) TestSevenMovesRobberAndSteals() {
	alice, bob, game := s.createTwoPlayerGame()
	_, err := s.app.CatanController.StartGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.runSetup(game.ID, alice, bob)

	// Dice faces 3 and 4: nobody holds seven cards, so no discards
	s.app.MockRandom.QueueIntn(2, 3)
	roll, err := s.app.CatanController.RollDice(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(7, roll.Roll)

	// Alice parks the robber on the forest where bob has settled and robs
	// him of his only card
	victim := model.SeatID(bob.ID)
	moved, err := s.app.CatanController.MoveRobber(s.ctx, game.ID, 0, &victim)
	s.Require().NoError(err)
	s.Equal(0, moved.NewLocation)
	s.Equal(model.ResourceWood, moved.Stolen)
	s.Equal(0, moved.Game.State.ResourcesFor(victim).Total())
	s.True(moved.Game.State.HexByIndex(0).HasRobber)
	s.False(moved.Game.State.HexByIndex(9).HasRobber)
}

// Test: buying a development card draws from the shuffled deck
func (s *IntegrationSuite) TestDevCardPurchase() {
	alice, bob, game := s.createTwoPlayerGame()
	_, err := s.app.CatanController.StartGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.runSetup(game.ID, alice, bob)

	// Stake alice to exactly one card's cost
	current, err := s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	hand := current.State.ResourcesFor(model.SeatID(alice.ID))
	hand[model.ResourceSheep]++
	hand[model.ResourceWheat]++
	hand[model.ResourceOre]++
	s.Require().NoError(s.app.Storage.UpdateGame(s.ctx, current))

	result, err := s.app.CatanController.BuyDevCard(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.DevCardKnight, result.Card)
	s.False(result.Revealed)
	s.Len(result.Game.State.Deck, 24)
	s.Contains(result.Game.State.DevCards[model.SeatID(alice.ID)], model.DevCardKnight)
}

// Test: starting requires a waiting game with at least two players
func (s *IntegrationSuite) TestStartGameValidation() {
	alice, err := s.app.UserController.CreateUser(s.ctx, "alice", "alice@example.com", "password1")
	s.Require().NoError(err)
	game, err := s.app.GameController.CreateGame(s.ctx, "Solo", 4)
	s.Require().NoError(err)
	_, err = s.app.GameController.AddPlayer(s.ctx, game.ID, alice.ID)
	s.Require().NoError(err)

	_, err = s.app.CatanController.StartGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrNotEnoughPlayers)

	bob, err := s.app.UserController.CreateUser(s.ctx, "bob", "bob@example.com", "password2")
	s.Require().NoError(err)
	_, err = s.app.GameController.AddPlayer(s.ctx, game.ID, bob.ID)
	s.Require().NoError(err)

	_, err = s.app.CatanController.StartGame(s.ctx, game.ID)
	s.Require().NoError(err)

	_, err = s.app.CatanController.StartGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotWaiting)
}

func (s *IntegrationSuite) mustState(gameID model.GameID) *model.GameState {
	info, err := s.app.CatanController.GetState(s.ctx, gameID)
	s.Require().NoError(err)
	return info.Game.State
}
