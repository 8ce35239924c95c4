package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/quirkle-go/internal/storage/storagetest"
)

type StorageSuite struct {
	storagetest.Suite
	mini  *miniredis.Miniredis
	redis *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.ResultTTL = time.Hour

	s.redis = NewWithClient(client, cfg)
	s.Storage = s.redis
	s.Ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestResultTTL() {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.redis.SaveResult(s.Ctx, storagetest.NewResult("R1", created)))

	s.Equal(time.Hour, s.mini.TTL(resultKey("R1")))
	s.True(s.mini.Exists(resultsIndexKey()))
}

func (s *StorageSuite) TestZeroTTLKeepsForever() {
	s.redis.cfg.ResultTTL = 0
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.redis.SaveResult(s.Ctx, storagetest.NewResult("R1", created)))

	s.Equal(time.Duration(0), s.mini.TTL(resultKey("R1")))
}

func (s *StorageSuite) TestListResultsPrunesExpired() {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.redis.SaveResult(s.Ctx, storagetest.NewResult("R1", created)))
	s.Require().NoError(s.redis.SaveResult(s.Ctx, storagetest.NewResult("R2", created.Add(time.Minute))))

	// Expire only the first result
	s.mini.SetTTL(resultKey("R1"), time.Second)
	s.mini.FastForward(2 * time.Second)

	results, err := s.redis.ListResults(s.Ctx)
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal("R2", string(results[0].ID))

	members, err := s.mini.Members(resultsIndexKey())
	s.Require().NoError(err)
	s.Equal([]string{resultKey("R2")}, members)
}

func (s *StorageSuite) TestNewRejectsBadURL() {
	_, err := New(Config{URL: "not-a-url"})
	s.Error(err)
}
