package catan

import (
	"context"
	"log/slog"

	"github.com/hexforge/catan-go/internal/dependencies/clock"
	"github.com/hexforge/catan-go/internal/dependencies/random"
	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/services/board"
	"github.com/hexforge/catan-go/internal/services/scoring"
	"github.com/hexforge/catan-go/internal/storage"
)

// maxConsecutiveBotTurns caps the bot turn cascade after a human ends
// their turn. Four seats and two setup rounds never need more.
const maxConsecutiveBotTurns = 16

// BotPlayer plays complete turns for bot seats. The factory wires the bot
// service in through this interface because the bot service itself drives
// the engine and cannot be imported from here.
type BotPlayer interface {
	PlayTurn(gs *model.GameState, seat model.SeatID) error
}

// Controller runs started games: it loads the state document, applies the
// rules through the engine and persists the result.
type Controller struct {
	storage        storage.Storage
	boardService   *board.Service
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
	bots           BotPlayer
}

// NewController creates a game engine controller.
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		boardService:   boardService,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		logger:         logger,
	}
}

// SetBotPlayer wires in the bot turn driver. Without one, bot seats sit
// idle and human clients drive every turn.
func (c *Controller) SetBotPlayer(b BotPlayer) {
	c.bots = b
}

// StateInfo bundles a game with the derived turn facts clients need.
type StateInfo struct {
	Game        *model.Game
	CurrentSeat model.SeatID
	Winner      *model.SeatID
}

// RollResult reports a dice roll and the state it produced.
type RollResult struct {
	Roll int
	Game *model.Game
}

// BuildResult reports a completed placement.
type BuildResult struct {
	Resources     model.ResourceSet
	VictoryPoints int
	Game          *model.Game
}

// TurnResult reports whose turn it is after an end-turn.
type TurnResult struct {
	CurrentSeat model.SeatID
	Game        *model.Game
}

// RobberResult reports a robber move and any stolen card.
type RobberResult struct {
	NewLocation int
	Stolen      model.Resource
	Game        *model.Game
}

// TradeResult reports the acting seat's hand after a trade.
type TradeResult struct {
	Resources model.ResourceSet
	Game      *model.Game
}

// DevCardResult reports a development card purchase.
type DevCardResult struct {
	Card      model.DevCard
	Revealed  bool
	Resources model.ResourceSet
	Game      *model.Game
}

// OfferResult reports a posted trade offer.
type OfferResult struct {
	Offer model.TradeOffer
	Game  *model.Game
}

// StartGame deals a fresh board and seats for a waiting game with enough
// players. Bot seats fill the table to four; turn order follows join
// order with bots at the end.
func (c *Controller) StartGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Status != model.GameStatusWaiting {
		return nil, model.ErrGameNotWaiting
	}
	if game.PlayerCount() < model.MinPlayersToStart {
		return nil, model.ErrNotEnoughPlayers
	}

	gs := c.newGameState(game)
	deal := c.boardService.Generate()
	gs.Hexes = deal.Hexes
	gs.Vertices = deal.Vertices
	gs.Edges = deal.Edges
	gs.Ports = deal.Ports
	gs.Deck = deal.Deck
	gs.RobberHex = deal.RobberHex

	game.State = gs
	game.Status = model.GameStatusInProgress
	first := int64(gs.Seats[0].PlayerID)
	game.CurrentPlayerID = &first
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.UpdateGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game started",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int("human_seats", game.PlayerCount()),
		slog.Int("total_seats", len(gs.Seats)),
	)
	return game, nil
}

// newGameState seats the joined players in join order, then fills the
// table with bot seats carrying negative IDs.
func (c *Controller) newGameState(game *model.Game) *model.GameState {
	gs := &model.GameState{
		Resources:     make(map[model.SeatID]model.ResourceSet),
		DevCards:      make(map[model.SeatID][]model.DevCard),
		PlayedKnights: make(map[model.SeatID]int),
		Phase:         model.PhaseInitialSetup,
		Setup:         model.SetupState{Round: 1, SeatIndex: 0},
		PendingTrades: make([]model.TradeOffer, 0),
	}
	addSeat := func(id model.SeatID, position int, bot bool) {
		gs.Seats = append(gs.Seats, model.Seat{PlayerID: id, Position: position, IsBot: bot})
		gs.Resources[id] = model.NewResourceSet()
		gs.DevCards[id] = []model.DevCard{}
		gs.PlayedKnights[id] = 0
	}
	for _, p := range game.Players {
		addSeat(model.SeatID(p.PlayerID), p.Position, false)
	}
	for i := game.PlayerCount(); i < model.DefaultMaxPlayers; i++ {
		bot := i - game.PlayerCount() + 1
		addSeat(model.SeatID(-bot), i+1, true)
	}
	return gs
}

// GetState returns a started game with its derived turn facts.
func (c *Controller) GetState(ctx context.Context, gameID model.GameID) (*StateInfo, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.State == nil {
		return nil, model.ErrGameNotStarted
	}

	info := &StateInfo{
		Game:        game,
		CurrentSeat: game.State.Seats[game.State.CurrentSeat].PlayerID,
	}
	if winner := game.State.Winner(); winner != nil {
		info.Winner = &winner.PlayerID
	}
	return info, nil
}

// RollDice rolls for the current seat and applies production or the
// seven-discard.
func (c *Controller) RollDice(ctx context.Context, gameID model.GameID) (*RollResult, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	roll, err := eng.RollDice()
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("dice rolled",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("seat", int64(eng.CurrentSeat())),
		slog.Int("roll", roll),
	)
	return &RollResult{Roll: roll, Game: game}, nil
}

// BuildSettlement places a settlement for the current seat.
func (c *Controller) BuildSettlement(ctx context.Context, gameID model.GameID, vertexID model.VertexID) (*BuildResult, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	seat := eng.CurrentSeat()
	if err := eng.BuildSettlement(seat, vertexID); err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("settlement built",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("seat", int64(seat)),
		slog.Int("vertex_id", int(vertexID)),
	)
	return c.buildResult(game, seat), nil
}

// BuildCity upgrades one of the current seat's settlements.
func (c *Controller) BuildCity(ctx context.Context, gameID model.GameID, vertexID model.VertexID) (*BuildResult, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	seat := eng.CurrentSeat()
	if err := eng.BuildCity(seat, vertexID); err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("city built",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("seat", int64(seat)),
		slog.Int("vertex_id", int(vertexID)),
	)
	return c.buildResult(game, seat), nil
}

// BuildRoad places a road for the current seat.
func (c *Controller) BuildRoad(ctx context.Context, gameID model.GameID, v1, v2 model.VertexID) (*BuildResult, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	seat := eng.CurrentSeat()
	if err := eng.BuildRoad(seat, v1, v2); err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("road built",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("seat", int64(seat)),
		slog.Int("vertex1_id", int(v1)),
		slog.Int("vertex2_id", int(v2)),
	)
	return c.buildResult(game, seat), nil
}

// PlaceSetup handles an initial phase placement action.
func (c *Controller) PlaceSetup(ctx context.Context, gameID model.GameID, action string, vertexID, v1, v2 model.VertexID) (*BuildResult, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.State.Phase != model.PhaseInitialSetup {
		return nil, model.ErrWrongPhase
	}

	seat := eng.CurrentSeat()
	switch action {
	case "place_settlement":
		err = eng.BuildSettlement(seat, vertexID)
	case "place_road":
		err = eng.BuildRoad(seat, v1, v2)
	default:
		return nil, model.ErrUnknownSetupAction
	}
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("setup placement",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("seat", int64(seat)),
		slog.String("action", action),
		slog.Int("setup_round", game.State.Setup.Round),
	)
	return c.buildResult(game, seat), nil
}

// EndTurn passes play to the next seat, then lets bot seats play until a
// human is up or the game ends.
func (c *Controller) EndTurn(ctx context.Context, gameID model.GameID) (*TurnResult, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if _, err := eng.AdvanceTurn(); err != nil {
		return nil, err
	}
	c.playBotTurns(game, eng)

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	next := eng.CurrentSeat()
	c.logger.Info("turn passed",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("current_seat", int64(next)),
		slog.String("phase", string(game.State.Phase)),
	)
	return &TurnResult{CurrentSeat: next, Game: game}, nil
}

// playBotTurns runs bot seats until a human is up, someone wins or the
// safety cap trips.
func (c *Controller) playBotTurns(game *model.Game, eng *Engine) {
	if c.bots == nil {
		return
	}
	for i := 0; i < maxConsecutiveBotTurns; i++ {
		seat := eng.CurrentSeat()
		if !seat.IsBot() || game.State.Phase == model.PhaseFinished || game.State.Winner() != nil {
			return
		}
		if err := c.bots.PlayTurn(game.State, seat); err != nil {
			c.logger.Warn("bot turn aborted",
				slog.Int64("game_id", int64(game.ID)),
				slog.Int64("seat", int64(seat)),
				slog.String("error", err.Error()),
			)
			// Skip the stuck bot so the game cannot deadlock
			if _, err := eng.AdvanceTurn(); err != nil {
				return
			}
		}
	}
	c.logger.Warn("bot turn cascade hit the safety cap",
		slog.Int64("game_id", int64(game.ID)),
	)
}

// MoveRobber relocates the robber and optionally steals from a victim.
func (c *Controller) MoveRobber(ctx context.Context, gameID model.GameID, hexIndex int, stealFrom *model.SeatID) (*RobberResult, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	seat := eng.CurrentSeat()
	stolen, err := eng.MoveRobber(seat, hexIndex, stealFrom)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("robber moved",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("seat", int64(seat)),
		slog.Int("hex_index", hexIndex),
		slog.Bool("stole", stolen != ""),
	)
	return &RobberResult{NewLocation: hexIndex, Stolen: stolen, Game: game}, nil
}

// TradeBank trades with the bank at four to one.
func (c *Controller) TradeBank(ctx context.Context, gameID model.GameID, give model.Resource, giveAmount int, take model.Resource, takeAmount int) (*TradeResult, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	seat := eng.CurrentSeat()
	if err := eng.TradeBank(seat, give, giveAmount, take, takeAmount); err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("bank trade",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("seat", int64(seat)),
		slog.String("give", string(give)),
		slog.String("take", string(take)),
	)
	return &TradeResult{Resources: game.State.ResourcesFor(seat), Game: game}, nil
}

// TradePort trades through a harbour the current seat has built on.
func (c *Controller) TradePort(ctx context.Context, gameID model.GameID, vertexID model.VertexID, give model.Resource, giveAmount int, take model.Resource, takeAmount int) (*TradeResult, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	seat := eng.CurrentSeat()
	if err := eng.TradePort(seat, vertexID, give, giveAmount, take, takeAmount); err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("port trade",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("seat", int64(seat)),
		slog.Int("vertex_id", int(vertexID)),
		slog.String("give", string(give)),
		slog.String("take", string(take)),
	)
	return &TradeResult{Resources: game.State.ResourcesFor(seat), Game: game}, nil
}

// CreateTradeOffer posts an open player-to-player offer from the current
// seat.
func (c *Controller) CreateTradeOffer(ctx context.Context, gameID model.GameID, give, want model.ResourceSet) (*OfferResult, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	seat := eng.CurrentSeat()
	offer, err := eng.CreateTradeOffer(seat, give, want)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("trade offer posted",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("seat", int64(seat)),
		slog.String("offer_id", offer.ID),
	)
	return &OfferResult{Offer: *offer, Game: game}, nil
}

// AcceptTradeOffer settles a pending offer in favor of the current seat.
func (c *Controller) AcceptTradeOffer(ctx context.Context, gameID model.GameID, offerID string) (*TradeResult, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	seat := eng.CurrentSeat()
	if err := eng.AcceptTradeOffer(seat, offerID); err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("trade offer accepted",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("seat", int64(seat)),
		slog.String("offer_id", offerID),
	)
	return &TradeResult{Resources: game.State.ResourcesFor(seat), Game: game}, nil
}

// BuyDevCard sells the top of the deck to the current seat.
func (c *Controller) BuyDevCard(ctx context.Context, gameID model.GameID) (*DevCardResult, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	seat := eng.CurrentSeat()
	card, revealed, err := eng.BuyDevCard(seat)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("dev card bought",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("seat", int64(seat)),
		slog.Bool("revealed", revealed),
	)
	return &DevCardResult{
		Card:      card,
		Revealed:  revealed,
		Resources: game.State.ResourcesFor(seat),
		Game:      game,
	}, nil
}

// PlayDevCard plays a card from the current seat's hand.
func (c *Controller) PlayDevCard(ctx context.Context, gameID model.GameID, card model.DevCard, data CardData) (*StateInfo, error) {
	game, eng, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	seat := eng.CurrentSeat()
	if err := eng.PlayDevCard(seat, card, data); err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("dev card played",
		slog.Int64("game_id", int64(game.ID)),
		slog.Int64("seat", int64(seat)),
		slog.String("card", string(card)),
	)
	info := &StateInfo{Game: game, CurrentSeat: seat}
	if winner := game.State.Winner(); winner != nil {
		info.Winner = &winner.PlayerID
	}
	return info, nil
}

// loadActive fetches a game that has been started and is still being
// played.
func (c *Controller) loadActive(ctx context.Context, gameID model.GameID) (*model.Game, *Engine, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	if game.State == nil {
		return nil, nil, model.ErrGameNotStarted
	}
	if game.Status != model.GameStatusInProgress {
		return nil, nil, model.ErrGameNotInProgress
	}
	return game, NewEngine(game.State, c.random, c.scoringService), nil
}

// save syncs the derived game row fields with the state document and
// persists both. A seat reaching ten points finishes the game here, so
// every mutating operation doubles as the win check.
func (c *Controller) save(ctx context.Context, game *model.Game) error {
	gs := game.State
	current := int64(gs.Seats[gs.CurrentSeat].PlayerID)
	game.CurrentPlayerID = &current
	for i := range game.Players {
		if seat := gs.SeatFor(model.SeatID(game.Players[i].PlayerID)); seat != nil {
			game.Players[i].VictoryPoints = seat.VictoryPoints
		}
	}
	if winner := gs.Winner(); winner != nil && game.Status == model.GameStatusInProgress {
		game.Status = model.GameStatusFinished
		gs.Phase = model.PhaseFinished
		c.logger.Info("game finished",
			slog.Int64("game_id", int64(game.ID)),
			slog.Int64("winner_seat", int64(winner.PlayerID)),
			slog.Int("victory_points", winner.VictoryPoints),
		)
	}
	game.UpdatedAt = c.clock.Now()
	return c.storage.UpdateGame(ctx, game)
}

func (c *Controller) buildResult(game *model.Game, seat model.SeatID) *BuildResult {
	vp := 0
	if s := game.State.SeatFor(seat); s != nil {
		vp = s.VictoryPoints
	}
	return &BuildResult{
		Resources:     game.State.ResourcesFor(seat),
		VictoryPoints: vp,
		Game:          game,
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	StartGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	GetState(ctx context.Context, gameID model.GameID) (*StateInfo, error)
	RollDice(ctx context.Context, gameID model.GameID) (*RollResult, error)
	BuildSettlement(ctx context.Context, gameID model.GameID, vertexID model.VertexID) (*BuildResult, error)
	BuildCity(ctx context.Context, gameID model.GameID, vertexID model.VertexID) (*BuildResult, error)
	BuildRoad(ctx context.Context, gameID model.GameID, v1, v2 model.VertexID) (*BuildResult, error)
	PlaceSetup(ctx context.Context, gameID model.GameID, action string, vertexID, v1, v2 model.VertexID) (*BuildResult, error)
	EndTurn(ctx context.Context, gameID model.GameID) (*TurnResult, error)
	MoveRobber(ctx context.Context, gameID model.GameID, hexIndex int, stealFrom *model.SeatID) (*RobberResult, error)
	TradeBank(ctx context.Context, gameID model.GameID, give model.Resource, giveAmount int, take model.Resource, takeAmount int) (*TradeResult, error)
	TradePort(ctx context.Context, gameID model.GameID, vertexID model.VertexID, give model.Resource, giveAmount int, take model.Resource, takeAmount int) (*TradeResult, error)
	CreateTradeOffer(ctx context.Context, gameID model.GameID, give, want model.ResourceSet) (*OfferResult, error)
	AcceptTradeOffer(ctx context.Context, gameID model.GameID, offerID string) (*TradeResult, error)
	BuyDevCard(ctx context.Context, gameID model.GameID) (*DevCardResult, error)
	PlayDevCard(ctx context.Context, gameID model.GameID, card model.DevCard, data CardData) (*StateInfo, error)
}

var _ ControllerInterface = (*Controller)(nil)
