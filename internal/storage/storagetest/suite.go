// Package storagetest holds the behavior every storage backend must share.
// Backend test suites embed Suite and set Storage in their SetupTest.
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/storage"
)

// Suite runs the shared storage tests against Storage
type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

// NewResult builds a populated result for tests
func NewResult(id model.SessionID, createdAt time.Time) *model.SessionResult {
	return &model.SessionResult{
		ID:          id,
		Config:      model.DefaultGameConfig(),
		Strategy:    model.BotStrategyGreedy,
		Seed:        18446744073709551557, // Larger than an int64 on purpose
		Turns:       120,
		TilesPlaced: 97,
		EndReason:   model.EndReasonHandEmpty,
		Scores: []model.PlayerScore{
			{Player: 0, Score: 140, Placed: 40, Skipped: 0},
			{Player: 1, Score: 95, Placed: 31, Skipped: 9, Hand: []model.Tile{{Shape: 2, Color: 4}}},
			{Player: 2, Score: 88, Placed: 26, Skipped: 14},
		},
		Winner:    0,
		CreatedAt: createdAt,
	}
}

func (s *Suite) ctx() context.Context {
	if s.Ctx == nil {
		return context.Background()
	}
	return s.Ctx
}

func (s *Suite) TestSaveAndGetResult() {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	result := NewResult("RESULT000001", created)

	s.Require().NoError(s.Storage.SaveResult(s.ctx(), result))

	got, err := s.Storage.GetResult(s.ctx(), "RESULT000001")
	s.Require().NoError(err)
	s.Equal(result.ID, got.ID)
	s.Equal(result.Config, got.Config)
	s.Equal(result.Strategy, got.Strategy)
	s.Equal(result.Seed, got.Seed)
	s.Equal(result.Turns, got.Turns)
	s.Equal(result.TilesPlaced, got.TilesPlaced)
	s.Equal(result.EndReason, got.EndReason)
	s.Equal(result.Winner, got.Winner)
	s.True(result.CreatedAt.Equal(got.CreatedAt))
	s.Require().Len(got.Scores, 3)
	s.Equal(95, got.Scores[1].Score)
	s.Equal([]model.Tile{{Shape: 2, Color: 4}}, got.Scores[1].Hand)
}

func (s *Suite) TestGetResultNotFound() {
	_, err := s.Storage.GetResult(s.ctx(), "nonexistent")
	s.ErrorIs(err, model.ErrResultNotFound)
}

func (s *Suite) TestSaveResultReplaces() {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	result := NewResult("RESULT000001", created)
	s.Require().NoError(s.Storage.SaveResult(s.ctx(), result))

	result.Turns = 7
	s.Require().NoError(s.Storage.SaveResult(s.ctx(), result))

	got, err := s.Storage.GetResult(s.ctx(), "RESULT000001")
	s.Require().NoError(err)
	s.Equal(7, got.Turns)

	all, err := s.Storage.ListResults(s.ctx())
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *Suite) TestListResultsEmpty() {
	results, err := s.Storage.ListResults(s.ctx())
	s.Require().NoError(err)
	s.Empty(results)
}

func (s *Suite) TestListResultsNewestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.Storage.SaveResult(s.ctx(), NewResult("OLD", base)))
	s.Require().NoError(s.Storage.SaveResult(s.ctx(), NewResult("NEW", base.Add(2*time.Hour))))
	s.Require().NoError(s.Storage.SaveResult(s.ctx(), NewResult("MID", base.Add(time.Hour))))

	results, err := s.Storage.ListResults(s.ctx())
	s.Require().NoError(err)
	s.Require().Len(results, 3)
	s.Equal(model.SessionID("NEW"), results[0].ID)
	s.Equal(model.SessionID("MID"), results[1].ID)
	s.Equal(model.SessionID("OLD"), results[2].ID)
}

func (s *Suite) TestDeleteResult() {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.Storage.SaveResult(s.ctx(), NewResult("RESULT000001", created)))

	s.Require().NoError(s.Storage.DeleteResult(s.ctx(), "RESULT000001"))

	_, err := s.Storage.GetResult(s.ctx(), "RESULT000001")
	s.ErrorIs(err, model.ErrResultNotFound)

	results, err := s.Storage.ListResults(s.ctx())
	s.Require().NoError(err)
	s.Empty(results)
}

func (s *Suite) TestDeleteMissingResultIsNoop() {
	s.NoError(s.Storage.DeleteResult(s.ctx(), "nonexistent"))
}
