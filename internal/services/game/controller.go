package game

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"github.com/mcoot/quirkle-go/internal/dependencies/clock"
	"github.com/mcoot/quirkle-go/internal/dependencies/random"
	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/services/bot"
	"github.com/mcoot/quirkle-go/internal/storage"
)

// DefaultMaxTurns caps a session that would otherwise never end,
// e.g. an infinite bag where every player is stuck
const DefaultMaxTurns = 10000

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SessionParams are the options for a single simulated session
type SessionParams struct {
	Config model.GameConfig
	// Seed makes the session reproducible; 0 picks a fresh seed
	Seed uint64
	// MaxTurns of 0 uses DefaultMaxTurns, negative means no limit
	MaxTurns    int
	StopOnStall bool
	// Strategy name for every player; empty selects greedy
	Strategy string
	OnEvent  model.EventHandler
}

// Controller runs sessions and keeps their results
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// RunSession plays a full session and saves its result.
// The finished session is returned alongside the result so callers can render the board.
func (c *Controller) RunSession(ctx context.Context, params SessionParams) (*model.SessionResult, *Session, error) {
	if err := params.Config.Validate(); err != nil {
		return nil, nil, err
	}

	strategyName := params.Strategy
	if strategyName == "" {
		strategyName = model.BotStrategyGreedy
	}

	seed := params.Seed
	if seed == 0 {
		seed = uint64(c.random.Intn(math.MaxInt-1)) + 1
	}
	rnd := random.NewSeeded(seed)

	strategy, err := bot.NewStrategy(strategyName, rnd)
	if err != nil {
		return nil, nil, err
	}

	session, err := NewSession(params.Config, rnd, strategy, c.logger)
	if err != nil {
		return nil, nil, err
	}
	session.StopOnStall = params.StopOnStall
	session.OnEvent = params.OnEvent

	maxTurns := params.MaxTurns
	if maxTurns == 0 {
		maxTurns = DefaultMaxTurns
	}
	reason := session.Run(ctx, maxTurns)

	scores := session.Scores()
	result := &model.SessionResult{
		ID:          model.SessionID(c.random.String(12, sessionIDAlphabet)),
		Config:      params.Config,
		Strategy:    strategyName,
		Seed:        seed,
		Turns:       session.Turns(),
		TilesPlaced: session.TilesPlaced(),
		EndReason:   reason,
		Scores:      scores,
		Winner:      model.DetermineWinner(scores),
		CreatedAt:   c.clock.Now(),
	}

	// A cancelled session still records how far it got
	if err := c.storage.SaveResult(context.WithoutCancel(ctx), result); err != nil {
		c.logger.Error("failed to save result",
			slog.String("session_id", string(result.ID)),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}

	c.logger.Info("session finished",
		slog.String("session_id", string(result.ID)),
		slog.String("seed", formatSeed(seed)),
		slog.String("end_reason", string(reason)),
		slog.Int("turns", result.Turns),
		slog.Int("tiles_placed", result.TilesPlaced),
		slog.Int("winner", result.Winner),
	)

	return result, session, nil
}

// GetResult retrieves a saved result by ID
func (c *Controller) GetResult(ctx context.Context, id model.SessionID) (*model.SessionResult, error) {
	return c.storage.GetResult(ctx, id)
}

// ListResults returns all saved results, newest first
func (c *Controller) ListResults(ctx context.Context) ([]*model.SessionResult, error) {
	return c.storage.ListResults(ctx)
}

// DeleteResult removes a saved result
func (c *Controller) DeleteResult(ctx context.Context, id model.SessionID) error {
	if _, err := c.storage.GetResult(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteResult(ctx, id); err != nil {
		return err
	}
	c.logger.Info("result deleted", slog.String("session_id", string(id)))
	return nil
}

func formatSeed(seed uint64) string {
	return strconv.FormatUint(seed, 10)
}
