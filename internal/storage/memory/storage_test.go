package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/storage/storagetest"
)

type StorageSuite struct {
	storagetest.Suite
	memory *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.memory = New()
	s.Storage = s.memory
	s.Ctx = context.Background()
}

func (s *StorageSuite) TestReturnedResultsAreCopies() {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.memory.SaveResult(s.Ctx, storagetest.NewResult("R1", created)))

	got, err := s.memory.GetResult(s.Ctx, "R1")
	s.Require().NoError(err)
	got.Scores[0].Score = -1
	got.Scores[1].Hand[0] = model.Tile{}

	again, err := s.memory.GetResult(s.Ctx, "R1")
	s.Require().NoError(err)
	s.Equal(140, again.Scores[0].Score)
	s.Equal(model.Tile{Shape: 2, Color: 4}, again.Scores[1].Hand[0])
}
