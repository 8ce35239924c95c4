package model

import "strconv"

// ShapeSymbols maps shape ids to the letters used when rendering tiles
const ShapeSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Position identifies a cell on the board
type Position struct {
	X int // 0-indexed from left, wraps at board width
	Y int // 0-indexed from top, wraps at board height
}

// Tile is the face of a tile: a (shape, color) pair
// Both fields are in [0, num_colors). Tiles are compared by value.
type Tile struct {
	Shape int `json:"shape"`
	Color int `json:"color"`
}

// String renders the tile as its shape letter followed by its color id, e.g. "C4"
func (t Tile) String() string {
	return ShapeSymbol(t.Shape) + strconv.Itoa(t.Color)
}

// ShapeSymbol returns the display letter for a shape id
func ShapeSymbol(shape int) string {
	if shape < 0 || shape >= len(ShapeSymbols) {
		return "?"
	}
	return ShapeSymbols[shape : shape+1]
}
