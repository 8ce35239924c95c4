package game

import (
	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/services/bag"
	"github.com/mcoot/quirkle-go/internal/services/board"
	"github.com/mcoot/quirkle-go/internal/services/bot"
)

// DefaultHandSize is the number of tiles a player holds after refilling
const DefaultHandSize = 6

// Player holds a hand of tiles and a running score.
// The board and bag are shared with every other player in the session.
type Player struct {
	index    int
	board    *board.Board
	bag      *bag.Bag
	strategy bot.Strategy
	handSize int

	hand       []model.Tile
	score      int
	placed     int
	skipped    int
	lastPlaced bool
	lastMove   bot.Move
	lastTile   model.Tile
}

// NewPlayer creates a player and draws their opening hand
func NewPlayer(index int, b *board.Board, tiles *bag.Bag, strategy bot.Strategy, handSize int) *Player {
	p := &Player{
		index:    index,
		board:    b,
		bag:      tiles,
		strategy: strategy,
		handSize: handSize,
	}
	p.PickupTiles()
	return p
}

// Index returns the player's 0-indexed seat
func (p *Player) Index() int {
	return p.index
}

// Hand returns a copy of the tiles in hand
func (p *Player) Hand() []model.Tile {
	return append([]model.Tile(nil), p.hand...)
}

// Score returns the player's cumulative score
func (p *Player) Score() int {
	return p.score
}

// Placed returns the number of tiles this player has put on the board
func (p *Player) Placed() int {
	return p.placed
}

// Skipped returns the number of turns on which this player could not place
func (p *Player) Skipped() int {
	return p.skipped
}

// LastPlaced returns true if the most recent PlayOne placed a tile
func (p *Player) LastPlaced() bool {
	return p.lastPlaced
}

// LastMove returns the most recent successful placement and its tile
func (p *Player) LastMove() (bot.Move, model.Tile) {
	return p.lastMove, p.lastTile
}

// PickupTiles refills the hand from the bag
func (p *Player) PickupTiles() {
	need := p.handSize - len(p.hand)
	if need <= 0 {
		return
	}
	p.hand = append(p.hand, p.bag.Draw(need)...)
}

// PlayOne places one tile if the strategy finds a valid move.
// When nothing can be placed the hand and score are left as they were.
func (p *Player) PlayOne() bool {
	p.lastPlaced = false

	move, ok := p.strategy.ChooseMove(p.board, p.hand)
	if !ok {
		p.skipped++
		return false
	}

	tile := p.hand[move.HandIndex]
	score := p.board.Move(move.Position, tile)
	if score == 0 {
		p.skipped++
		return false
	}

	p.hand = append(p.hand[:move.HandIndex], p.hand[move.HandIndex+1:]...)
	p.score += score
	p.placed++
	p.lastPlaced = true
	p.lastMove = move
	p.lastMove.Score = score
	p.lastTile = tile
	return true
}

// Play takes a turn: place a tile if possible, then refill.
// It returns false once the hand is empty after refilling, which ends the game.
// A turn with no valid move still returns true while the hand is non-empty.
func (p *Player) Play() bool {
	p.PlayOne()
	p.PickupTiles()
	return len(p.hand) > 0
}
