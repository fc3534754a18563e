package sqlite

import "context"

// PutRaw stores an entry verbatim so tests can seed malformed data.
func (r *ProgressRepository) PutRaw(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO progress_entries (key, value) VALUES (?, ?)`, key, value)
	return err
}
