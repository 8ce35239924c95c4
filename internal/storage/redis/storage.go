package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveResult(ctx context.Context, result *model.SessionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	key := resultKey(result.ID)

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, data, s.cfg.ResultTTL)
	pipe.SAdd(ctx, resultsIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetResult(ctx context.Context, id model.SessionID) (*model.SessionResult, error) {
	data, err := s.client.Get(ctx, resultKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrResultNotFound
		}
		return nil, err
	}

	var result model.SessionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Storage) ListResults(ctx context.Context) ([]*model.SessionResult, error) {
	indexKey := resultsIndexKey()

	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.SessionResult{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	results := make([]*model.SessionResult, 0, len(values))
	var expired []interface{}
	for i, val := range values {
		if val == nil {
			expired = append(expired, keys[i])
			continue
		}
		str, ok := val.(string)
		if !ok {
			continue
		}
		var result model.SessionResult
		if err := json.Unmarshal([]byte(str), &result); err != nil {
			continue // Skip invalid data
		}
		results = append(results, &result)
	}

	// Drop index entries whose result has expired
	if len(expired) > 0 {
		if err := s.client.SRem(ctx, indexKey, expired...).Err(); err != nil {
			return nil, err
		}
	}

	storage.SortNewestFirst(results)
	return results, nil
}

func (s *Storage) DeleteResult(ctx context.Context, id model.SessionID) error {
	key := resultKey(id)

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, resultsIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}
