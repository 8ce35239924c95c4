package bag_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/quirkle-go/internal/dependencies/mocks"
	"github.com/mcoot/quirkle-go/internal/dependencies/random"
	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/services/bag"
)

type BagSuite struct {
	suite.Suite
}

func TestBagSuite(t *testing.T) {
	suite.Run(t, new(BagSuite))
}

func (s *BagSuite) newBag(numColors, numSets int, seed uint64) *bag.Bag {
	b, err := bag.New(numColors, numSets, random.NewSeeded(seed))
	s.Require().NoError(err)
	return b
}

func (s *BagSuite) TestNewRejectsZeroColors() {
	_, err := bag.New(0, 3, random.NewSeeded(1))
	s.ErrorIs(err, model.ErrInvalidConfig)
}

// Finite mode

func (s *BagSuite) TestFiniteBagSize() {
	b := s.newBag(6, bag.DefaultNumSets, 1)

	s.False(b.Infinite())
	s.Equal(6*6*3, b.Remaining())
}

func (s *BagSuite) TestFiniteBagConservation() {
	b := s.newBag(4, 2, 9)
	total := b.Remaining()
	counts := make(map[model.Tile]int)

	for !b.IsEmpty() {
		drawn := b.Draw(5)
		s.NotEmpty(drawn)
		for _, t := range drawn {
			counts[t]++
		}
		s.Equal(total, b.Drawn()+b.Remaining())
	}

	s.Equal(4*4*2, b.Drawn())
	s.Len(counts, 16)
	for tile, n := range counts {
		s.Equal(2, n, "tile %s", tile)
		s.GreaterOrEqual(tile.Shape, 0)
		s.Less(tile.Shape, 4)
		s.GreaterOrEqual(tile.Color, 0)
		s.Less(tile.Color, 4)
	}
}

func (s *BagSuite) TestFiniteBagShortDraw() {
	b := s.newBag(2, 1, 3)

	s.Len(b.Draw(3), 3)
	s.Len(b.Draw(3), 1)
	s.Empty(b.Draw(3))
	s.Equal(0, b.Remaining())
	s.Equal(4, b.Drawn())
}

func (s *BagSuite) TestDrawNonPositive() {
	b := s.newBag(3, 1, 3)

	s.Empty(b.Draw(0))
	s.Empty(b.Draw(-2))
	s.Equal(9, b.Remaining())
}

func (s *BagSuite) TestFiniteBagPopsFromEnd() {
	// An all-zero queue makes the shuffle deterministic:
	// [A0 A1 B0 B1] -> [A1 B0 B1 A0]
	b, err := bag.New(2, 1, mocks.NewMockRandom())
	s.Require().NoError(err)

	s.Equal([]model.Tile{{Shape: 0, Color: 0}, {Shape: 1, Color: 1}}, b.Draw(2))
}

func (s *BagSuite) TestShuffleUsesInjectedRandom() {
	mockRandom := mocks.NewMockRandom()
	mockRandom.QueueIdentityShuffle(4)

	b, err := bag.New(2, 1, mockRandom)
	s.Require().NoError(err)

	// Identity shuffle: draws come off the end of the ordered pool
	s.Equal([]model.Tile{
		{Shape: 1, Color: 1},
		{Shape: 1, Color: 0},
		{Shape: 0, Color: 1},
		{Shape: 0, Color: 0},
	}, b.Draw(4))
}

func (s *BagSuite) TestSameSeedSameOrder() {
	a := s.newBag(6, 3, 77)
	b := s.newBag(6, 3, 77)

	s.Equal(a.Draw(108), b.Draw(108))
}

// Infinite mode

func (s *BagSuite) TestInfiniteBagNeverShrinks() {
	b := s.newBag(6, 0, 5)

	s.True(b.Infinite())
	s.Equal(36, b.Remaining())

	for range 50 {
		s.Len(b.Draw(6), 6)
		s.Equal(36, b.Remaining())
		s.False(b.IsEmpty())
	}
	s.Equal(300, b.Drawn())
}

func (s *BagSuite) TestInfiniteBagNegativeSets() {
	b := s.newBag(3, -4, 5)

	s.True(b.Infinite())
	s.Equal(9, b.Remaining())
}

func (s *BagSuite) TestInfiniteBagDrawsWithReplacement() {
	b := s.newBag(2, 0, 11)
	counts := make(map[model.Tile]int)

	for _, t := range b.Draw(400) {
		counts[t]++
	}

	// Only 4 distinct tiles exist, so 400 draws must repeat them
	s.Len(counts, 4)
	for tile, n := range counts {
		s.Greater(n, 50, "tile %s should appear roughly 100 times", tile)
	}
}

func (s *BagSuite) TestInfiniteBagSamplesWithInjectedRandom() {
	mockRandom := mocks.NewMockRandom()
	mockRandom.QueueIdentityShuffle(4)
	b, err := bag.New(2, 0, mockRandom)
	s.Require().NoError(err)

	mockRandom.QueueIntn(3, 3, 0)
	s.Equal([]model.Tile{
		{Shape: 1, Color: 1},
		{Shape: 1, Color: 1},
		{Shape: 0, Color: 0},
	}, b.Draw(3))
}
