package bot

import (
	"log/slog"

	"github.com/hexforge/catan-go/internal/dependencies/random"
	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/services/catan"
	"github.com/hexforge/catan-go/internal/services/scoring"
)

// Service plays complete turns for bot seats through the same rules engine
// human requests go through. The game controller invokes it whenever the
// turn rotation lands on a bot.
type Service struct {
	strategy Strategy
	random   random.Random
	scoring  *scoring.Service
	logger   *slog.Logger
}

// New creates a bot service with the default greedy strategy.
func New(random random.Random, scoring *scoring.Service, logger *slog.Logger) *Service {
	return &Service{
		strategy: NewGreedyStrategy(),
		random:   random,
		scoring:  scoring,
		logger:   logger,
	}
}

// NewWithStrategy creates a bot service with a custom strategy.
func NewWithStrategy(strategy Strategy, random random.Random, scoring *scoring.Service, logger *slog.Logger) *Service {
	return &Service{
		strategy: strategy,
		random:   random,
		scoring:  scoring,
		logger:   logger,
	}
}

// Ensure the service can drive the game controller's bot seats
var _ catan.BotPlayer = (*Service)(nil)

// PlayTurn plays the bot seat's whole turn in place: setup placements
// during the initial phase, otherwise roll, robber, builds and trades,
// always ending with the turn advance.
func (s *Service) PlayTurn(gs *model.GameState, seat model.SeatID) error {
	eng := catan.NewEngine(gs, s.random, s.scoring)

	if gs.Phase == model.PhaseInitialSetup {
		if err := s.strategy.PlaceSetup(eng, seat); err != nil {
			return err
		}
		_, err := eng.AdvanceTurn()
		return err
	}

	roll, err := eng.RollDice()
	if err != nil {
		return err
	}
	if roll == 7 {
		hex, victim := s.strategy.ChooseRobberTarget(gs, seat)
		if _, err := eng.MoveRobber(seat, hex, victim); err != nil {
			return err
		}
	}
	s.strategy.PlayTurn(eng, seat)

	vp := 0
	if st := gs.SeatFor(seat); st != nil {
		vp = st.VictoryPoints
	}
	s.logger.Debug("bot turn complete",
		slog.Int64("seat", int64(seat)),
		slog.Int("roll", roll),
		slog.Int("victory_points", vp),
	)

	_, err = eng.AdvanceTurn()
	return err
}
