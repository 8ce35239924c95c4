package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mcoot/quirkle-go/internal/model"
	"github.com/mcoot/quirkle-go/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS session_results (
	id           TEXT PRIMARY KEY,
	config       TEXT NOT NULL,
	strategy     TEXT NOT NULL,
	seed         TEXT NOT NULL,
	turns        INTEGER NOT NULL,
	tiles_placed INTEGER NOT NULL,
	end_reason   TEXT NOT NULL,
	scores       TEXT NOT NULL,
	winner       INTEGER NOT NULL,
	created_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_session_results_created_at ON session_results (created_at);
`

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens (creating if missing) the database file at path and applies the schema
func New(path string) (*Storage, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveResult(ctx context.Context, result *model.SessionResult) error {
	config, err := json.Marshal(result.Config)
	if err != nil {
		return err
	}
	scores, err := json.Marshal(result.Scores)
	if err != nil {
		return err
	}

	// Seed is stored as text since SQLite integers are signed 64-bit
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO session_results
			(id, config, strategy, seed, turns, tiles_placed, end_reason, scores, winner, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(result.ID),
		string(config),
		result.Strategy,
		strconv.FormatUint(result.Seed, 10),
		result.Turns,
		result.TilesPlaced,
		string(result.EndReason),
		string(scores),
		result.Winner,
		result.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *Storage) GetResult(ctx context.Context, id model.SessionID) (*model.SessionResult, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, config, strategy, seed, turns, tiles_placed, end_reason, scores, winner, created_at
		FROM session_results WHERE id = ?`, string(id))

	result, err := scanResult(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrResultNotFound
		}
		return nil, err
	}
	return result, nil
}

func (s *Storage) ListResults(ctx context.Context) ([]*model.SessionResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, config, strategy, seed, turns, tiles_placed, end_reason, scores, winner, created_at
		FROM session_results`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*model.SessionResult{}
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	storage.SortNewestFirst(results)
	return results, nil
}

func (s *Storage) DeleteResult(ctx context.Context, id model.SessionID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_results WHERE id = ?`, string(id))
	return err
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (*model.SessionResult, error) {
	var (
		result    model.SessionResult
		id        string
		config    string
		seed      string
		endReason string
		scores    string
		createdAt string
	)
	err := row.Scan(&id, &config, &result.Strategy, &seed, &result.Turns, &result.TilesPlaced,
		&endReason, &scores, &result.Winner, &createdAt)
	if err != nil {
		return nil, err
	}

	result.ID = model.SessionID(id)
	result.EndReason = model.EndReason(endReason)
	if err := json.Unmarshal([]byte(config), &result.Config); err != nil {
		return nil, fmt.Errorf("decode config for %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(scores), &result.Scores); err != nil {
		return nil, fmt.Errorf("decode scores for %s: %w", id, err)
	}
	if result.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return nil, fmt.Errorf("decode seed for %s: %w", id, err)
	}
	if result.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("decode created_at for %s: %w", id, err)
	}
	return &result, nil
}
