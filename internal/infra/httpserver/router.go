package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appbrand "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/application/brand"
	apphistory "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/application/history"
	brand "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/domain/brand"
	history "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/domain/history"
	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/i18n"
	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/infra/ai/mock"
)

// Config carries the router's filesystem and health wiring.
type Config struct {
	AssetsDir    string // served under /static/
	TemplatesDir string // holds dashboard.html
	Health       http.Handler
}

type Router struct {
	brandSvc   *appbrand.Service
	historySvc *apphistory.Service
	dashboard  *template.Template
	assetsDir  string
}

func NewRouter(brandSvc *appbrand.Service, historySvc *apphistory.Service, cfg Config) (http.Handler, error) {
	dashboard, err := template.ParseFiles(filepath.Join(cfg.TemplatesDir, "dashboard.html"))
	if err != nil {
		return nil, fmt.Errorf("parsing dashboard template: %w", err)
	}

	r := &Router{
		brandSvc:   brandSvc,
		historySvc: historySvc,
		dashboard:  dashboard,
		assetsDir:  cfg.AssetsDir,
	}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	if cfg.Health != nil {
		mux.Method(http.MethodGet, "/health", cfg.Health)
	} else {
		mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		})
	}

	mux.Get("/", r.wrap(r.handleDashboard))
	mux.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.AssetsDir))))

	mux.Route("/api", func(rt chi.Router) {
		rt.Post("/generate-brand", r.wrap(r.handleGenerateBrand))
		rt.Post("/chat-with-persona", r.wrap(r.handleChat))
		rt.Post("/tts", r.wrap(r.handleTTS))
		rt.Get("/proxy-image", r.wrap(r.handleProxyImage))
		rt.Get("/history", r.wrap(r.handleHistory))
		rt.Delete("/history/{item_id}", r.wrap(r.handleDeleteHistory))
	})

	return mux, nil
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// errImageNotFound marks a proxy request for anything but the known demo
// asset.
var errImageNotFound = errors.New("image not found in demo assets")

// wrap maps handler errors to responses. Validation and not-found errors are
// deterministic and carry specific messages; anything else is logged and
// degraded to a generic failure so internals never reach the client.
func (rt *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		var ve *validationError
		switch {
		case errors.As(err, &ve):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": ve.msg})
		case errors.Is(err, history.ErrNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "History item not found"})
		case errors.Is(err, errImageNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Image not found in demo assets."})
		case errors.Is(err, brand.ErrNotAvailable):
			writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "Text-to-Speech is a feature available in the full version."})
		default:
			log.Printf("internal error: method=%s path=%s err=%v", req.Method, req.URL.Path, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
	}
}

// GET /?lang=
func (rt *Router) handleDashboard(w http.ResponseWriter, req *http.Request) error {
	lang, bundle := i18n.ForLanguage(req.URL.Query().Get("lang"))

	// Render into a buffer so a mid-stream template failure cannot leave a
	// partial page in front of the error response.
	var buf bytes.Buffer
	if err := rt.dashboard.Execute(&buf, struct {
		Lang string
		T    i18n.Bundle
	}{Lang: lang, T: bundle}); err != nil {
		return fmt.Errorf("rendering dashboard: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
	return nil
}

// POST /api/generate-brand
func (rt *Router) handleGenerateBrand(w http.ResponseWriter, req *http.Request) error {
	var body BrandRequest
	if err := decodeJSON(req, &body); err != nil {
		return err
	}

	result, err := rt.brandSvc.Generate(req.Context(), appbrand.GenerateCommand{
		Description: body.Description,
		Language:    body.Language,
	})
	if err != nil {
		// Generator and store faults both degrade to the demo's generic
		// failure message; the cause stays in the server log.
		log.Printf("generate-brand failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate mock brand identity."})
		return nil
	}

	writeJSON(w, http.StatusOK, result)
	return nil
}

// POST /api/chat-with-persona
func (rt *Router) handleChat(w http.ResponseWriter, req *http.Request) error {
	var body ChatRequest
	if err := decodeJSON(req, &body); err != nil {
		return err
	}

	reply, err := rt.brandSvc.Chat(req.Context(), body.Analysis, body.Message, body.Language)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
	return nil
}

// POST /api/tts
func (rt *Router) handleTTS(w http.ResponseWriter, req *http.Request) error {
	var body TTSRequest
	if err := decodeJSON(req, &body); err != nil {
		return err
	}

	audio, err := rt.brandSvc.Synthesize(req.Context(), body.Text)
	if err != nil {
		// The demo synthesizer always lands here with ErrNotAvailable,
		// which wrap maps to the 501 contract.
		return err
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Write(audio)
	return nil
}

// GET /api/proxy-image?url=
func (rt *Router) handleProxyImage(w http.ResponseWriter, req *http.Request) error {
	url := req.URL.Query().Get("url")
	if url != mock.PlaceholderLogoURL {
		return errImageNotFound
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="logo.png"`)
	http.ServeFile(w, req, filepath.Join(rt.assetsDir, "placeholder_logo.png"))
	return nil
}

// GET /api/history
func (rt *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	items, err := rt.historySvc.List(req.Context(), apphistory.DefaultLimit)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, items)
	return nil
}

// DELETE /api/history/{item_id}
func (rt *Router) handleDeleteHistory(w http.ResponseWriter, req *http.Request) error {
	id, err := strconv.ParseInt(chi.URLParam(req, "item_id"), 10, 64)
	if err != nil {
		return history.ErrNotFound
	}

	if err := rt.historySvc.Delete(req.Context(), history.RecordID(id)); err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
