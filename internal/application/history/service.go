package history

import (
	"context"
	"fmt"
	"time"

	domain "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/domain/history"
)

// DefaultLimit caps how many records a listing returns.
const DefaultLimit = 50

// Item is the externally visible record shape: a stored record with the
// analysis restored to its structured form.
type Item struct {
	ID          domain.RecordID `json:"id"`
	Description string          `json:"description"`
	Analysis    map[string]any  `json:"analysis"`
	LogoURL     string          `json:"logo_url"`
	Language    string          `json:"language"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Service implements the history use-cases on top of the repository and the
// analysis codec. It is the only entry point handlers use for history.
type Service struct {
	Repo domain.Repository
}

func NewService(repo domain.Repository) *Service {
	return &Service{Repo: repo}
}

// Create encodes the analysis, persists a new record and returns it with the
// decoded analysis. For any JSON-representable input the returned analysis
// equals the one passed in.
func (s *Service) Create(ctx context.Context, description string, analysis map[string]any, logoURL, language string) (*Item, error) {
	encoded, err := domain.EncodeAnalysis(analysis)
	if err != nil {
		return nil, fmt.Errorf("encoding analysis: %w", err)
	}
	rec, err := s.Repo.Insert(ctx, description, encoded, logoURL, language)
	if err != nil {
		return nil, fmt.Errorf("saving history: %w", err)
	}
	return toItem(rec), nil
}

// List returns up to limit records, newest first. Zero or out-of-range limits
// fall back to DefaultLimit. Rows whose analysis text no longer parses are
// kept in the result carrying the invalid-format sentinel.
func (s *Service) List(ctx context.Context, limit int) ([]*Item, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}
	recs, err := s.Repo.Latest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	items := make([]*Item, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toItem(rec))
	}
	return items, nil
}

// Delete removes a record by id, returning ErrNotFound when no record
// matched.
func (s *Service) Delete(ctx context.Context, id domain.RecordID) error {
	found, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting history: %w", err)
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func toItem(rec *domain.Record) *Item {
	return &Item{
		ID:          rec.ID,
		Description: rec.Description,
		Analysis:    domain.DecodeAnalysis(rec.Analysis),
		LogoURL:     rec.LogoURL,
		Language:    rec.Language,
		CreatedAt:   rec.CreatedAt,
	}
}
