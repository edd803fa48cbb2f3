package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/domain/history"
	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/infra/db/sqlite"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	db, err := sqlite.Connect(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewHistoryRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return NewService(repo)
}

func TestCreate_RoundTrip(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	analysis := map[string]any{
		"brand_personality": map[string]any{"archetype": "The Creator"},
		"slogans":           []any{"Brewed with purpose."},
	}

	item, err := svc.Create(ctx, "A sustainable coffee brand", analysis, "/static/placeholder_logo.png", "en")
	require.NoError(t, err)

	assert.Equal(t, domain.RecordID(1), item.ID)
	assert.Equal(t, analysis, item.Analysis)
	assert.Equal(t, "/static/placeholder_logo.png", item.LogoURL)
	assert.False(t, item.CreatedAt.IsZero())

	items, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, analysis, items[0].Analysis)
}

func TestList_PreservesRecencyOrder(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	for _, desc := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, desc, map[string]any{"d": desc}, "/logo.png", "en")
		require.NoError(t, err)
	}

	items, err := svc.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "C", items[0].Description)
	assert.Equal(t, "B", items[1].Description)
	assert.Equal(t, "A", items[2].Description)
}

func TestList_CorruptedRowCarriesSentinel(t *testing.T) {
	db, err := sqlite.Connect(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := sqlite.NewHistoryRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	svc := NewService(repo)
	ctx := context.Background()

	// Simulate a row written outside this system's control.
	_, err = repo.Insert(ctx, "corrupted", "not { json", "/logo.png", "en")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "valid", map[string]any{"k": "v"}, "/logo.png", "en")
	require.NoError(t, err)

	items, err := svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, map[string]any{"k": "v"}, items[0].Analysis)
	assert.Equal(t, domain.InvalidAnalysis(), items[1].Analysis)
}

func TestList_ClampsLimit(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		_, err := svc.Create(ctx, "brand", map[string]any{}, "/logo.png", "en")
		require.NoError(t, err)
	}

	items, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, items, 50)

	items, err = svc.List(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, items, 50)
}

func TestDelete(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, "brand", map[string]any{}, "/logo.png", "en")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, item.ID))

	items, err := svc.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = svc.Delete(ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
