package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/quirkle-go/internal/dependencies/random"
	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/services/bag"
	"github.com/mcoot/quirkle-go/internal/services/board"
	"github.com/mcoot/quirkle-go/internal/services/bot"
)

// Session drives one game: a board, a bag and players taking turns in seat order
type Session struct {
	config  model.GameConfig
	board   *board.Board
	bag     *bag.Bag
	players []*Player
	logger  *slog.Logger

	current     int
	turns       int
	unplacedRun int // Consecutive turns that placed nothing
	endReason   model.EndReason

	// StopOnStall ends the session once a full rotation places nothing.
	// Off by default: a player with a full hand and no legal move then
	// keeps passing until the driver's turn limit.
	StopOnStall bool

	// OnEvent, when set, receives an event for every turn and for the session end
	OnEvent model.EventHandler
}

// NewSession creates the board, bag and players for a game.
// Players draw their opening hands in seat order.
func NewSession(cfg model.GameConfig, rnd random.Random, strategy bot.Strategy, logger *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b, err := board.New(cfg.Width, cfg.Height, cfg.NumColors, logger)
	if err != nil {
		return nil, fmt.Errorf("creating board: %w", err)
	}
	tiles, err := bag.New(cfg.NumColors, cfg.NumSets, rnd)
	if err != nil {
		return nil, fmt.Errorf("creating bag: %w", err)
	}

	players := make([]*Player, cfg.NumPlayers)
	for i := range players {
		players[i] = NewPlayer(i, b, tiles, strategy, cfg.HandSize)
	}

	return &Session{
		config:  cfg,
		board:   b,
		bag:     tiles,
		players: players,
		logger:  logger.With(slog.String("component", "session")),
	}, nil
}

// Config returns the configuration the session was built from
func (s *Session) Config() model.GameConfig {
	return s.config
}

// Board returns the shared board for read access
func (s *Session) Board() *board.Board {
	return s.board
}

// Bag returns the shared bag for read access
func (s *Session) Bag() *bag.Bag {
	return s.bag
}

// Players returns the players in seat order
func (s *Session) Players() []*Player {
	return s.players
}

// CurrentPlayer returns the seat of the player whose turn is next
func (s *Session) CurrentPlayer() int {
	return s.current
}

// Turns returns the number of turns played
func (s *Session) Turns() int {
	return s.turns
}

// TilesPlaced returns the number of tiles on the board
func (s *Session) TilesPlaced() int {
	return s.board.TileCount()
}

// EndReason returns why the session ended, or EndReasonNone while it is running
func (s *Session) EndReason() model.EndReason {
	return s.endReason
}

// Done returns true once the session has ended
func (s *Session) Done() bool {
	return s.endReason != model.EndReasonNone
}

// Step plays one turn for the current player and advances to the next seat.
// It returns true when the session has ended, with the reason.
func (s *Session) Step() (bool, model.EndReason) {
	if s.Done() {
		return true, s.endReason
	}

	player := s.players[s.current]
	turn := s.turns
	canContinue := player.Play()
	s.turns++

	if player.LastPlaced() {
		s.unplacedRun = 0
		move, tile := player.LastMove()
		s.emit(model.Event{
			Type:   model.EventTilePlaced,
			Turn:   turn,
			Player: player.Index(),
			Payload: model.TilePlacedPayload{
				Position: move.Position,
				Tile:     tile,
				Score:    move.Score,
			},
		})
	} else {
		s.unplacedRun++
		s.emit(model.Event{Type: model.EventTurnSkipped, Turn: turn, Player: player.Index()})
	}

	switch {
	case !canContinue:
		s.end(model.EndReasonHandEmpty)
	case s.StopOnStall && s.unplacedRun >= len(s.players):
		s.end(model.EndReasonStalled)
	default:
		s.current = (s.current + 1) % len(s.players)
	}

	return s.Done(), s.endReason
}

// Run steps until the session ends, maxTurns is reached, or ctx is cancelled.
// maxTurns <= 0 means no limit.
func (s *Session) Run(ctx context.Context, maxTurns int) model.EndReason {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			s.end(model.EndReasonCancelled)
			break
		}
		if maxTurns > 0 && s.turns >= maxTurns {
			s.end(model.EndReasonTurnLimit)
			break
		}
		s.Step()
	}
	return s.endReason
}

// Scores returns each player's standing in seat order
func (s *Session) Scores() []model.PlayerScore {
	scores := make([]model.PlayerScore, len(s.players))
	for i, p := range s.players {
		scores[i] = model.PlayerScore{
			Player:  p.Index(),
			Score:   p.Score(),
			Hand:    p.Hand(),
			Placed:  p.Placed(),
			Skipped: p.Skipped(),
		}
	}
	return scores
}

func (s *Session) end(reason model.EndReason) {
	s.endReason = reason
	s.logger.Debug("session ended",
		slog.String("reason", string(reason)),
		slog.Int("turns", s.turns),
		slog.Int("tiles_placed", s.board.TileCount()),
	)
	s.emit(model.Event{
		Type:    model.EventSessionEnded,
		Turn:    s.turns,
		Player:  -1,
		Payload: model.SessionEndedPayload{Reason: reason},
	})
}

func (s *Session) emit(event model.Event) {
	if s.OnEvent != nil {
		s.OnEvent(event)
	}
}
