package bot

import (
	"github.com/mcoot/quirkle-go/internal/dependencies/random"
	"github.com/mcoot/quirkle-go/internal/model"
)

// GreedyStrategy takes the first valid placement it finds.
// Open positions are tried in a random order, tiles in hand order. It never
// compares scores between candidate moves.
type GreedyStrategy struct {
	random random.Random
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(rnd random.Random) *GreedyStrategy {
	return &GreedyStrategy{random: rnd}
}

// ChooseMove returns the first (position, tile) pair that scores above zero
func (s *GreedyStrategy) ChooseMove(board Board, hand []model.Tile) (Move, bool) {
	open := board.OpenTiles()
	random.Shuffle(s.random, len(open), func(i, j int) {
		open[i], open[j] = open[j], open[i]
	})

	for _, pos := range open {
		for i, tile := range hand {
			if score := board.TestMove(pos, tile); score > 0 {
				return Move{Position: pos, HandIndex: i, Score: score}, true
			}
		}
	}
	return Move{}, false
}
