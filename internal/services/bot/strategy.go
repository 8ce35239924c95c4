package bot

import (
	"fmt"

	"github.com/mcoot/quirkle-go/internal/dependencies/random"
	"github.com/mcoot/quirkle-go/internal/model"
)

// Board is the read-only view of the board a strategy needs
type Board interface {
	OpenTiles() []model.Position
	TestMove(pos model.Position, tile model.Tile) int
}

// Move is a placement chosen by a strategy
type Move struct {
	Position  model.Position
	HandIndex int // Index into the hand passed to ChooseMove
	Score     int // Score reported by Board.TestMove
}

// Strategy defines how a bot chooses its placement for a turn
type Strategy interface {
	// ChooseMove picks a tile from hand and a position for it.
	// It returns false if no tile in hand can be placed anywhere.
	ChooseMove(board Board, hand []model.Tile) (Move, bool)
}

// NewStrategy returns the named strategy
func NewStrategy(name string, rnd random.Random) (Strategy, error) {
	switch name {
	case model.BotStrategyGreedy:
		return NewGreedyStrategy(rnd), nil
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
}
