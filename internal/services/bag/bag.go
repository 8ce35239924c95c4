package bag

import (
	"fmt"

	"github.com/mcoot/quirkle-go/internal/dependencies/random"
	"github.com/mcoot/quirkle-go/internal/model"
)

// DefaultNumSets is the number of copies of each tile in a standard bag
const DefaultNumSets = 3

// Bag is the supply of tiles players draw from.
//
// A finite bag holds numSets copies of every (shape, color) pair and each draw
// removes tiles. An infinite bag (numSets < 1) holds one copy of each pair and
// draws with replacement, so it never runs out.
type Bag struct {
	tiles    []model.Tile
	infinite bool
	drawn    int
	random   random.Random
}

// New creates a shuffled bag
func New(numColors, numSets int, rnd random.Random) (*Bag, error) {
	if numColors < 1 {
		return nil, fmt.Errorf("%w: num_colors must be >= 1, got %d", model.ErrInvalidConfig, numColors)
	}

	infinite := numSets < 1
	if infinite {
		numSets = 1
	}

	tiles := make([]model.Tile, 0, numColors*numColors*numSets)
	for range numSets {
		for shape := 0; shape < numColors; shape++ {
			for color := 0; color < numColors; color++ {
				tiles = append(tiles, model.Tile{Shape: shape, Color: color})
			}
		}
	}
	random.Shuffle(rnd, len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	return &Bag{
		tiles:    tiles,
		infinite: infinite,
		random:   rnd,
	}, nil
}

// Draw returns up to n tiles.
// A finite bag returns fewer when it runs low; an infinite bag always returns n.
func (b *Bag) Draw(n int) []model.Tile {
	if n <= 0 {
		return nil
	}

	if b.infinite {
		drawn := make([]model.Tile, n)
		for i := range drawn {
			drawn[i] = b.tiles[b.random.Intn(len(b.tiles))]
		}
		b.drawn += n
		return drawn
	}

	n = min(n, len(b.tiles))
	drawn := make([]model.Tile, 0, n)
	for range n {
		last := len(b.tiles) - 1
		drawn = append(drawn, b.tiles[last])
		b.tiles = b.tiles[:last]
	}
	b.drawn += n
	return drawn
}

// Remaining returns the number of tiles left in the bag.
// For an infinite bag this is the fixed pool size.
func (b *Bag) Remaining() int {
	return len(b.tiles)
}

// Drawn returns the total number of tiles handed out
func (b *Bag) Drawn() int {
	return b.drawn
}

// Infinite returns true if the bag draws with replacement
func (b *Bag) Infinite() bool {
	return b.infinite
}

// IsEmpty returns true if no more tiles can be drawn
func (b *Bag) IsEmpty() bool {
	return len(b.tiles) == 0
}
