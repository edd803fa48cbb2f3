// Package postgres mirrors the sqlite history repository for deployments
// that outgrow a single local database file.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	domain "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/domain/history"
)

type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// EnsureSchema creates the history table if it does not exist.
func (r *HistoryRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS history (
    id          BIGSERIAL PRIMARY KEY,
    description TEXT NOT NULL,
    analysis    TEXT,
    logo_url    TEXT NOT NULL,
    language    TEXT NOT NULL DEFAULT 'en',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at);
`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating history schema: %w", err)
	}
	return nil
}

func (r *HistoryRepository) Insert(ctx context.Context, description, analysis, logoURL, language string) (*domain.Record, error) {
	const q = `
INSERT INTO history (description, analysis, logo_url, language, created_at)
VALUES ($1,$2,$3,$4,$5)
RETURNING id;
`
	createdAt := time.Now().UTC()
	var id int64
	if err := r.db.QueryRowContext(ctx, q, description, analysis, logoURL, language, createdAt).Scan(&id); err != nil {
		return nil, fmt.Errorf("inserting history row: %w", err)
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

func (r *HistoryRepository) Latest(ctx context.Context, limit int) ([]*domain.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `
SELECT id, description, analysis, logo_url, language, created_at
FROM history
ORDER BY created_at DESC, id DESC
LIMIT $1;
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

func (r *HistoryRepository) Delete(ctx context.Context, id domain.RecordID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE id = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("deleting history row: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
