package storage

import (
	"context"

	"github.com/mcoot/quirkle-go/internal/model"
)

// Storage defines the interface for persisting session results
type Storage interface {
	// SaveResult stores a finished session's summary, replacing any with the same ID
	SaveResult(ctx context.Context, result *model.SessionResult) error
	// GetResult returns model.ErrResultNotFound if the ID is unknown
	GetResult(ctx context.Context, id model.SessionID) (*model.SessionResult, error)
	// ListResults returns all results, newest first
	ListResults(ctx context.Context) ([]*model.SessionResult, error)
	DeleteResult(ctx context.Context, id model.SessionID) error

	// Close releases any connections held by the backend
	Close() error
}
