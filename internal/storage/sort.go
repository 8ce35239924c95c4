package storage

import (
	"sort"

	"github.com/mcoot/quirkle-go/internal/model"
)

// SortNewestFirst orders results by creation time, newest first, breaking ties by ID
func SortNewestFirst(results []*model.SessionResult) {
	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		}
		return results[i].ID < results[j].ID
	})
}
