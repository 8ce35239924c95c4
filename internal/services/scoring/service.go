package scoring

import (
	"github.com/mcoot/quirkle-go/internal/model"
)

// Service scores lines of tiles for a fixed number of colors
type Service struct {
	numColors int
}

// New creates a new scoring Service
func New(numColors int) *Service {
	return &Service{
		numColors: numColors,
	}
}

// NumColors returns the number of colors (and shapes) this service scores for
func (s *Service) NumColors() int {
	return s.numColors
}

// ScoreGroup scores a line of tiles, returning 0 if the line is invalid
func (s *Service) ScoreGroup(tiles []model.Tile) int {
	return ScoreGroup(tiles, s.numColors)
}

// ScoreGroup scores a group of tiles as if they were placed contiguously in a line.
//
// A valid line either shares one color with all shapes distinct, or shares one
// shape with all colors distinct. A lone tile is worth 1, a line of length
// numColors earns the full-line bonus, and anything invalid scores 0.
// Only the tiles present matter, not their order.
func ScoreGroup(tiles []model.Tile, numColors int) int {
	lt := len(tiles)
	if lt > numColors {
		return 0
	}
	if lt == 1 {
		return 1
	}
	if lt == 0 {
		return 0
	}

	colors := make(map[int]struct{}, lt)
	shapes := make(map[int]struct{}, lt)
	for _, t := range tiles {
		colors[t.Color] = struct{}{}
		shapes[t.Shape] = struct{}{}
	}
	lc := len(colors)
	ls := len(shapes)

	// Identical tiles can never share a line
	if lc == 1 && ls == 1 {
		return 0
	}

	sameColor := lc == 1 && ls == lt
	sameShape := ls == 1 && lc == lt
	if !sameColor && !sameShape {
		return 0
	}

	if lt == numColors {
		return numColors * 2 // Full line bonus
	}
	return lt
}

// Interface for dependency injection
type ServiceInterface interface {
	NumColors() int
	ScoreGroup(tiles []model.Tile) int
}

var _ ServiceInterface = (*Service)(nil)
