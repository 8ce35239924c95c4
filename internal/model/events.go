package model

// EventType identifies the type of event
type EventType string

const (
	EventTilePlaced   EventType = "tile_placed"
	EventTurnSkipped  EventType = "turn_skipped"
	EventSessionEnded EventType = "session_ended"
)

// Event describes something that happened during a session turn
type Event struct {
	Type    EventType
	Turn    int // 0-indexed turn number
	Player  int // Seat of the player who acted, -1 for session events
	Payload any // Type-specific data
}

// TilePlacedPayload contains data for tile placed events
type TilePlacedPayload struct {
	Position Position
	Tile     Tile
	Score    int
}

// SessionEndedPayload contains data for session ended events
type SessionEndedPayload struct {
	Reason EndReason
}

// EventHandler receives session events as they happen
type EventHandler func(Event)
