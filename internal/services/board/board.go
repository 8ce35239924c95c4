package board

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/services/scoring"
)

// neighborOffsets are the four orthogonal steps used for the frontier
var neighborOffsets = [4]model.Position{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}

// cell is one grid square; ok is false while the square is empty
type cell struct {
	tile model.Tile
	ok   bool
}

// Board is a fixed-size toroidal grid of tiles and the set of open positions.
//
// The open set (frontier) is the seed cell while the board is empty, and
// afterwards exactly the empty cells with at least one occupied neighbor.
// It is updated incrementally by Move.
type Board struct {
	width   int
	height  int
	scoring *scoring.Service
	cells   [][]cell // Row-major: cells[y][x]
	open    map[model.Position]struct{}
	placed  int
	logger  *slog.Logger
}

// New creates an empty board with the center cell open
func New(width, height, numColors int, logger *slog.Logger) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: board must be at least 1x1, got %dx%d", model.ErrInvalidConfig, width, height)
	}
	if numColors < 1 {
		return nil, fmt.Errorf("%w: num_colors must be >= 1, got %d", model.ErrInvalidConfig, numColors)
	}

	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
	}

	b := &Board{
		width:   width,
		height:  height,
		scoring: scoring.New(numColors),
		cells:   cells,
		open:    make(map[model.Position]struct{}),
		logger:  logger.With(slog.String("component", "board")),
	}
	b.open[b.Seed()] = struct{}{}
	return b, nil
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// NumColors returns the number of colors, which is also the max line length
func (b *Board) NumColors() int {
	return b.scoring.NumColors()
}

// TileCount returns the number of tiles placed so far
func (b *Board) TileCount() int {
	return b.placed
}

// Seed returns the cell that is open on an empty board
func (b *Board) Seed() model.Position {
	return model.Position{X: b.width / 2, Y: b.height / 2}
}

// Wrap maps any position onto the board, wrapping at every edge
func (b *Board) Wrap(pos model.Position) model.Position {
	return model.Position{
		X: ((pos.X % b.width) + b.width) % b.width,
		Y: ((pos.Y % b.height) + b.height) % b.height,
	}
}

// At returns the tile at the given position and whether the cell is occupied
func (b *Board) At(pos model.Position) (model.Tile, bool) {
	pos = b.Wrap(pos)
	c := b.cells[pos.Y][pos.X]
	return c.tile, c.ok
}

// IsOpen returns true if a tile may be attempted at the given position
func (b *Board) IsOpen(pos model.Position) bool {
	_, ok := b.open[pos]
	return ok
}

// OpenTiles returns a copy of the open positions, sorted by row then column
func (b *Board) OpenTiles() []model.Position {
	result := make([]model.Position, 0, len(b.open))
	for pos := range b.open {
		result = append(result, pos)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Y != result[j].Y {
			return result[i].Y < result[j].Y
		}
		return result[i].X < result[j].X
	})
	return result
}

// TestMove returns the score placing tile at pos would earn, or 0 if the move is invalid.
// The board is not modified.
func (b *Board) TestMove(pos model.Position, tile model.Tile) int {
	if !b.IsOpen(pos) {
		return 0
	}

	horz := b.collectRun(pos, 1, 0)
	horz = append(horz, b.collectRun(pos, -1, 0)...)
	horz = append(horz, tile)

	vert := b.collectRun(pos, 0, 1)
	vert = append(vert, b.collectRun(pos, 0, -1)...)
	vert = append(vert, tile)

	scoreH := b.scoring.ScoreGroup(horz)
	scoreV := b.scoring.ScoreGroup(vert)
	if scoreH == 0 || scoreV == 0 {
		return 0
	}
	return scoreH + scoreV
}

// collectRun walks from pos in one direction, collecting occupied cells until
// the first gap or numColors-1 steps. The walk wraps, so on a small board it
// can reach cells already collected in the opposite direction.
func (b *Board) collectRun(pos model.Position, dx, dy int) []model.Tile {
	var run []model.Tile
	for i := 1; i < b.NumColors(); i++ {
		t, ok := b.At(model.Position{X: pos.X + dx*i, Y: pos.Y + dy*i})
		if !ok {
			break
		}
		run = append(run, t)
	}
	return run
}

// Move places tile at pos if the move is valid and returns its score.
// An invalid move returns 0 and leaves the board untouched.
func (b *Board) Move(pos model.Position, tile model.Tile) int {
	score := b.TestMove(pos, tile)
	if score == 0 {
		return 0
	}

	b.cells[pos.Y][pos.X] = cell{tile: tile, ok: true}
	b.placed++
	delete(b.open, pos)
	for _, off := range neighborOffsets {
		n := b.Wrap(model.Position{X: pos.X + off.X, Y: pos.Y + off.Y})
		if _, occupied := b.At(n); !occupied {
			b.open[n] = struct{}{}
		}
	}

	b.logger.Debug("tile placed",
		slog.Int("x", pos.X),
		slog.Int("y", pos.Y),
		slog.String("tile", tile.String()),
		slog.Int("score", score),
		slog.Int("open", len(b.open)),
	)

	return score
}
