package model

import "strconv"

// PlayerScore is a player's standing at the end of a session
type PlayerScore struct {
	Player  int    `json:"player"` // 0-indexed seat
	Score   int    `json:"score"`
	Hand    []Tile `json:"hand"`
	Placed  int    `json:"placed"` // Tiles this player put on the board
	Skipped int    `json:"skipped"`
}

// PlayerDisplayName returns the 1-indexed label used in output
func PlayerDisplayName(index int) string {
	return "Player " + strconv.Itoa(index+1)
}
