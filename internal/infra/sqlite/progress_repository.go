package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fardannozami/greencity-bot/internal/domain"
)

// Progress is stored as three independent key/value entries so a malformed
// entry only loses itself.
const (
	KeyPoints    = "greenPoints"
	KeyCompleted = "completedChallenges"
	KeyUsername  = "username"
)

type ProgressRepository struct {
	db *sql.DB
}

func NewProgressRepository(db *sql.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) ReadProgress(ctx context.Context) (*domain.ProgressState, error) {
	entries, err := r.readEntries(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	state := domain.ProgressState{
		Points:                decodePoints(entries[KeyPoints]),
		CompletedChallengeIDs: decodeCompleted(entries[KeyCompleted]),
		Username:              strings.TrimSpace(entries[KeyUsername]),
	}
	return &state, nil
}

func (r *ProgressRepository) WriteProgress(ctx context.Context, state *domain.ProgressState) error {
	completed, err := encodeCompleted(state.CompletedChallengeIDs)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin progress tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO progress_entries (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	values := [][2]string{
		{KeyPoints, strconv.Itoa(state.Points)},
		{KeyCompleted, completed},
		{KeyUsername, state.Username},
	}
	for _, kv := range values {
		if _, err := tx.ExecContext(ctx, query, kv[0], kv[1]); err != nil {
			return fmt.Errorf("write %s: %w", kv[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit progress tx: %w", err)
	}
	return nil
}

func (r *ProgressRepository) InitTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS progress_entries (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

func (r *ProgressRepository) readEntries(ctx context.Context) (map[string]string, error) {
	query := `SELECT key, value FROM progress_entries WHERE key IN (?, ?, ?)`
	rows, err := r.db.QueryContext(ctx, query, KeyPoints, KeyCompleted, KeyUsername)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistenceRead, err)
	}
	defer rows.Close()

	entries := make(map[string]string, 3)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrPersistenceRead, err)
		}
		entries[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistenceRead, err)
	}
	return entries, nil
}

// decodePoints degrades anything that is not a non-negative integer to 0.
func decodePoints(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// decodeCompleted degrades anything that is not a JSON array of strings to empty.
func decodeCompleted(raw string) []string {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{}
	}
	return domain.UniqueIDs(ids)
}

func encodeCompleted(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encode completed challenges: %w", err)
	}
	return string(b), nil
}
