package redis

import (
	"fmt"

	"github.com/mcoot/quirkle-go/internal/model"
)

// Key prefix for all simulator data
const keyPrefix = "quirkle"

// resultKey returns the Redis key for a SessionResult
func resultKey(id model.SessionID) string {
	return fmt.Sprintf("%s:result:%s", keyPrefix, id)
}

// resultsIndexKey returns the Redis key for the SET of all result keys
func resultsIndexKey() string {
	return fmt.Sprintf("%s:idx:results", keyPrefix)
}
