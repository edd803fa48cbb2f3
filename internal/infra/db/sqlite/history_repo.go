package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	domain "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/domain/history"
)

// timeNow stamps created_at on insert (can be mocked in tests).
var timeNow = time.Now

type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// EnsureSchema creates the history table if it does not exist.
// Idempotent, called on every process start. AUTOINCREMENT keeps ids
// monotonic and never reused, even after deletes.
func (r *HistoryRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS history (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL,
    analysis    TEXT,
    logo_url    TEXT NOT NULL,
    language    TEXT NOT NULL DEFAULT 'en',
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at);
`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating history schema: %w", err)
	}
	return nil
}

// Insert persists a new history row and returns the full stored record with
// its assigned id and timestamp.
func (r *HistoryRepository) Insert(ctx context.Context, description, analysis, logoURL, language string) (*domain.Record, error) {
	const q = `
INSERT INTO history (description, analysis, logo_url, language, created_at)
VALUES (?,?,?,?,?);
`
	createdAt := timeNow().UTC()
	res, err := r.db.ExecContext(ctx, q, description, analysis, logoURL, language, createdAt)
	if err != nil {
		return nil, fmt.Errorf("inserting history row: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted id: %w", err)
	}

	return &domain.Record{
		ID:          domain.RecordID(id),
		Description: description,
		Analysis:    analysis,
		LogoURL:     logoURL,
		Language:    language,
		CreatedAt:   createdAt,
	}, nil
}

// Latest returns up to limit records, most recently inserted first.
func (r *HistoryRepository) Latest(ctx context.Context, limit int) ([]*domain.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `
SELECT id, description, analysis, logo_url, language, created_at
FROM history
ORDER BY created_at DESC, id DESC
LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []*domain.Record
	for rows.Next() {
		var rec domain.Record
		var analysis sql.NullString
		if err := rows.Scan(
			&rec.ID, &rec.Description, &analysis,
			&rec.LogoURL, &rec.Language, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		rec.Analysis = analysis.String
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// Delete removes the record with the given id. Reports false when no row
// matched; absence is not an error at this layer.
func (r *HistoryRepository) Delete(ctx context.Context, id domain.RecordID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?;`, id)
	if err != nil {
		return false, fmt.Errorf("deleting history row: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
