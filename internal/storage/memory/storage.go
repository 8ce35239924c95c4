package memory

import (
	"context"
	"sync"

	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	results map[model.SessionID]*model.SessionResult
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		results: make(map[model.SessionID]*model.SessionResult),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveResult(ctx context.Context, result *model.SessionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.ID] = copyResult(result)
	return nil
}

func (s *Storage) GetResult(ctx context.Context, id model.SessionID) (*model.SessionResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[id]
	if !ok {
		return nil, model.ErrResultNotFound
	}
	return copyResult(result), nil
}

func (s *Storage) ListResults(ctx context.Context) ([]*model.SessionResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]*model.SessionResult, 0, len(s.results))
	for _, r := range s.results {
		results = append(results, copyResult(r))
	}
	storage.SortNewestFirst(results)
	return results, nil
}

func (s *Storage) DeleteResult(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.results, id)
	return nil
}

// Close is a no-op for in-memory storage
func (s *Storage) Close() error {
	return nil
}

// copyResult keeps callers from mutating stored results through shared slices
func copyResult(r *model.SessionResult) *model.SessionResult {
	c := *r
	c.Scores = make([]model.PlayerScore, len(r.Scores))
	for i, ps := range r.Scores {
		ps.Hand = append([]model.Tile(nil), ps.Hand...)
		c.Scores[i] = ps
	}
	return &c
}
