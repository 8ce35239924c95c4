package game

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/quirkle-go/internal/dependencies/mocks"
	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/services/bag"
	"github.com/mcoot/quirkle-go/internal/services/board"
	"github.com/mcoot/quirkle-go/internal/services/bot"
	"github.com/mcoot/quirkle-go/internal/testutil"
)

// stuckStrategy never finds a move
type stuckStrategy struct {
	calls int
}

func (s *stuckStrategy) ChooseMove(bot.Board, []model.Tile) (bot.Move, bool) {
	s.calls++
	return bot.Move{}, false
}

type PlayerSuite struct {
	suite.Suite
	random *mocks.MockRandom
	board  *board.Board
	bag    *bag.Bag
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerSuite))
}

// SetupTest builds a 5x5 board and an unshuffled two-color bag.
// Draws pop from the end: B1, B0, A1, A0.
func (s *PlayerSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.random.QueueIdentityShuffle(4)

	var err error
	s.board, err = board.New(5, 5, 2, testutil.NopLogger())
	s.Require().NoError(err)
	s.bag, err = bag.New(2, 1, s.random)
	s.Require().NoError(err)
}

func (s *PlayerSuite) TestNewPlayerDrawsFullHand() {
	p := NewPlayer(0, s.board, s.bag, bot.NewGreedyStrategy(s.random), 3)

	s.Equal([]model.Tile{{Shape: 1, Color: 1}, {Shape: 1, Color: 0}, {Shape: 0, Color: 1}}, p.Hand())
	s.Equal(1, s.bag.Remaining())
	s.Equal(0, p.Score())
}

func (s *PlayerSuite) TestNewPlayerTakesWhatIsLeft() {
	p := NewPlayer(0, s.board, s.bag, bot.NewGreedyStrategy(s.random), 6)

	s.Len(p.Hand(), 4)
	s.True(s.bag.IsEmpty())
}

func (s *PlayerSuite) TestHandIsCopy() {
	p := NewPlayer(0, s.board, s.bag, bot.NewGreedyStrategy(s.random), 3)

	hand := p.Hand()
	hand[0] = model.Tile{Shape: 9, Color: 9}

	s.Equal(model.Tile{Shape: 1, Color: 1}, p.Hand()[0])
}

func (s *PlayerSuite) TestPlayOnePlacesFirstTile() {
	p := NewPlayer(0, s.board, s.bag, bot.NewGreedyStrategy(s.random), 3)

	s.True(p.PlayOne())

	tile, ok := s.board.At(model.Position{X: 2, Y: 2})
	s.True(ok)
	s.Equal(model.Tile{Shape: 1, Color: 1}, tile)
	s.Equal(2, p.Score())
	s.Equal(1, p.Placed())
	s.Equal([]model.Tile{{Shape: 1, Color: 0}, {Shape: 0, Color: 1}}, p.Hand())
	s.True(p.LastPlaced())

	move, placed := p.LastMove()
	s.Equal(model.Position{X: 2, Y: 2}, move.Position)
	s.Equal(2, move.Score)
	s.Equal(model.Tile{Shape: 1, Color: 1}, placed)
}

func (s *PlayerSuite) TestPlayOneMissLeavesStateUnchanged() {
	strategy := &stuckStrategy{}
	p := NewPlayer(0, s.board, s.bag, strategy, 3)
	before := p.Hand()

	s.False(p.PlayOne())

	s.Equal(1, strategy.calls)
	s.Equal(before, p.Hand())
	s.Equal(0, p.Score())
	s.Equal(1, p.Skipped())
	s.False(p.LastPlaced())
	s.Equal(0, s.board.TileCount())
}

func (s *PlayerSuite) TestPlayRefillsAfterPlacing() {
	p := NewPlayer(0, s.board, s.bag, bot.NewGreedyStrategy(s.random), 3)

	s.True(p.Play())

	s.Equal([]model.Tile{{Shape: 1, Color: 0}, {Shape: 0, Color: 1}, {Shape: 0, Color: 0}}, p.Hand())
	s.True(s.bag.IsEmpty())
}

func (s *PlayerSuite) TestPlayWithoutMoveStillContinues() {
	p := NewPlayer(0, s.board, s.bag, &stuckStrategy{}, 3)

	s.True(p.Play())
	s.Len(p.Hand(), 3)
	s.Equal(1, s.bag.Remaining())
}

func (s *PlayerSuite) TestPlayReturnsFalseWhenHandEmpties() {
	b, err := board.New(3, 3, 1, testutil.NopLogger())
	s.Require().NoError(err)
	single, err := bag.New(1, 1, mocks.NewMockRandom())
	s.Require().NoError(err)

	p := NewPlayer(0, b, single, bot.NewGreedyStrategy(mocks.NewMockRandom()), 1)
	s.Require().Len(p.Hand(), 1)

	s.False(p.Play())
	s.Empty(p.Hand())
	s.Equal(2, p.Score())
}

func (s *PlayerSuite) TestPickupTilesIsNoopWhenFull() {
	p := NewPlayer(0, s.board, s.bag, &stuckStrategy{}, 3)

	p.PickupTiles()

	s.Len(p.Hand(), 3)
	s.Equal(1, s.bag.Remaining())
}
