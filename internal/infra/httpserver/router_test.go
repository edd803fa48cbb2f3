package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbrand "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/application/brand"
	apphistory "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/application/history"
	brand "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/domain/brand"
	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/infra/ai/mock"
	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/infra/db/sqlite"
)

func newTestServer(t *testing.T) (http.Handler, *apphistory.Service) {
	t.Helper()
	return newTestServerWith(t, mock.NewGenerator("../../../mock_data.json", 0), "../../../web/templates")
}

func newTestServerWith(t *testing.T, gen brand.Generator, templatesDir string) (http.Handler, *apphistory.Service) {
	t.Helper()

	db, err := sqlite.Connect(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewHistoryRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	historySvc := apphistory.NewService(repo)

	brandSvc := &appbrand.Service{
		Generator: gen,
		Persona:   &mock.Persona{},
		Speech:    mock.Speech{},
		History:   historySvc,
	}

	handler, err := NewRouter(brandSvc, historySvc, Config{
		AssetsDir:    "../../../web/static",
		TemplatesDir: templatesDir,
	})
	require.NoError(t, err)
	return handler, historySvc
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGenerateBrand_EndToEnd(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/generate-brand",
		`{"description": "A sustainable coffee brand", "language": "en"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID       int64          `json:"id"`
		Analysis map[string]any `json:"analysis"`
		LogoURL  string         `json:"logo_url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Greater(t, resp.ID, int64(0))
	assert.Contains(t, resp.Analysis, "brand_personality")
	assert.Equal(t, "/static/placeholder_logo.png", resp.LogoURL)

	// the new record shows up first in the history listing
	rec = doJSON(t, h, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []struct {
		ID          int64          `json:"id"`
		Description string         `json:"description"`
		Analysis    map[string]any `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, resp.ID, items[0].ID)
	assert.Equal(t, "A sustainable coffee brand", items[0].Description)
	assert.Equal(t, resp.Analysis, items[0].Analysis)
}

func TestGenerateBrand_Validation(t *testing.T) {
	h, historySvc := newTestServer(t)

	for _, body := range []string{
		`{}`,
		`{"description": "   "}`,
		`not json`,
	} {
		rec := doJSON(t, h, http.MethodPost, "/api/generate-brand", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}

	// nothing was persisted
	items, err := historySvc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGenerateBrand_GeneratorFailure(t *testing.T) {
	// generator pointed at a data file that does not exist
	gen := mock.NewGenerator(filepath.Join(t.TempDir(), "missing.json"), 0)
	h, historySvc := newTestServerWith(t, gen, "../../../web/templates")

	rec := doJSON(t, h, http.MethodPost, "/api/generate-brand",
		`{"description": "A sustainable coffee brand", "language": "en"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to generate mock brand identity.", resp["error"])

	// the underlying cause stays out of the response
	assert.NotContains(t, rec.Body.String(), "missing.json")

	// nothing was persisted for the failed generation
	items, err := historySvc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestChatWithPersona(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/chat-with-persona",
		`{"analysis": "{}", "message": "What is your core value?", "language": "fr"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["reply"], "valeur fondamentale")

	// unknown language falls back to the English reply
	rec = doJSON(t, h, http.MethodPost, "/api/chat-with-persona",
		`{"analysis": "{}", "message": "hi", "language": "de"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["reply"], "core value is innovation")
}

func TestChatWithPersona_Validation(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/chat-with-persona", `{"analysis": "{}"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTTS_AlwaysNotImplemented(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/tts", `{"text": "hello world"}`)
	require.Equal(t, http.StatusNotImplemented, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Text-to-Speech is a feature available in the full version.", resp["error"])
}

func TestProxyImage(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/proxy-image?url=%2Fstatic%2Fplaceholder_logo.png", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "logo.png")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestProxyImage_UnknownURL(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/proxy-image?url=https%3A%2F%2Fexample.com%2Fevil.png", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Image not found in demo assets.", resp["detail"])
}

func TestDeleteHistory(t *testing.T) {
	h, historySvc := newTestServer(t)

	_, err := historySvc.Create(context.Background(), "brand", map[string]any{}, "/logo.png", "en")
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodDelete, "/api/history/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Item deleted successfully", resp["message"])

	items, err := historySvc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, items)

	// deleting it again is a 404
	rec = doJSON(t, h, http.MethodDelete, "/api/history/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "History item not found", resp["detail"])
}

func TestDeleteHistory_NonNumericID(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodDelete, "/api/history/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboard_LanguageFallback(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/?lang=xx", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PsyDesign AI - Brand Psychology Designer")

	rec = doJSON(t, h, http.MethodGet, "/?lang=es", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Diseñador de Psicología de Marca")
}

func TestDashboard_RenderFailureIsCleanError(t *testing.T) {
	// a template that parses fine but fails at render time
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dashboard.html"),
		[]byte(`<html><body>{{.NoSuchField}}</body></html>`), 0o600))

	h, _ := newTestServerWith(t, mock.NewGenerator("../../../mock_data.json", 0), dir)

	rec := doJSON(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// the response is the error body alone, with no partial page in front
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp["error"])
}

func TestHistory_EmptyListIsArray(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
