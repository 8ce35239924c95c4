package model

import (
	"fmt"
	"time"
)

// SessionID uniquely identifies a finished game session
type SessionID string

// EndReason records why a session stopped
type EndReason string

const (
	EndReasonNone      EndReason = ""           // Session still running
	EndReasonHandEmpty EndReason = "hand_empty" // A player could not refill their hand
	EndReasonStalled   EndReason = "stalled"    // A full rotation placed nothing
	EndReasonTurnLimit EndReason = "turn_limit" // Driver hit its turn cap
	EndReasonCancelled EndReason = "cancelled"  // Context cancelled mid-run
)

// GameConfig holds the construction-time options for a game session
type GameConfig struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	NumColors  int `json:"num_colors"` // Also the max line length and tiles per shape/color
	NumPlayers int `json:"num_players"`
	HandSize   int `json:"hand_size"`
	NumSets    int `json:"num_sets"` // < 1 selects the infinite bag
}

// DefaultGameConfig returns the default game configuration
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Width:      40,
		Height:     20,
		NumColors:  6,
		NumPlayers: 3,
		HandSize:   6,
		NumSets:    3,
	}
}

// Validate returns an error wrapping ErrInvalidConfig if any option is out of range
func (c GameConfig) Validate() error {
	switch {
	case c.Width < 1:
		return fmt.Errorf("%w: width must be >= 1, got %d", ErrInvalidConfig, c.Width)
	case c.Height < 1:
		return fmt.Errorf("%w: height must be >= 1, got %d", ErrInvalidConfig, c.Height)
	case c.NumColors < 1:
		return fmt.Errorf("%w: num_colors must be >= 1, got %d", ErrInvalidConfig, c.NumColors)
	case c.NumColors > len(ShapeSymbols):
		return fmt.Errorf("%w: num_colors must be <= %d, got %d", ErrInvalidConfig, len(ShapeSymbols), c.NumColors)
	case c.NumPlayers < 1:
		return fmt.Errorf("%w: num_players must be >= 1, got %d", ErrInvalidConfig, c.NumPlayers)
	case c.HandSize < 1:
		return fmt.Errorf("%w: hand_size must be >= 1, got %d", ErrInvalidConfig, c.HandSize)
	}
	return nil
}

// Infinite returns true if the bag draws with replacement
func (c GameConfig) Infinite() bool {
	return c.NumSets < 1
}

// SessionResult is a summary of a finished session
// It records the outcome only; the board itself is not kept.
type SessionResult struct {
	ID          SessionID     `json:"id"`
	Config      GameConfig    `json:"config"`
	Strategy    string        `json:"strategy"`
	Seed        uint64        `json:"seed"`
	Turns       int           `json:"turns"`
	TilesPlaced int           `json:"tiles_placed"`
	EndReason   EndReason     `json:"end_reason"`
	Scores      []PlayerScore `json:"scores"`
	Winner      int           `json:"winner"` // Player index, -1 if tie
	CreatedAt   time.Time     `json:"created_at"`
}

// DetermineWinner returns the index of the highest scoring player, or -1 on a tie
func DetermineWinner(scores []PlayerScore) int {
	if len(scores) == 0 {
		return -1
	}

	best := scores[0]
	tieCount := 0
	for _, s := range scores {
		switch {
		case s.Score > best.Score:
			best = s
			tieCount = 1
		case s.Score == best.Score:
			tieCount++
		}
	}

	if tieCount > 1 {
		return -1
	}
	return best.Player
}
