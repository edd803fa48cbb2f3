package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/i18n"
)

// validationError marks a malformed or incomplete request body. The router
// maps it to a 400 before any generator or store interaction happens.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

type validator interface {
	Validate() error
}

// decodeJSON parses the request body into dst and runs its validation.
func decodeJSON(r *http.Request, dst validator) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &validationError{msg: "invalid request body"}
	}
	return dst.Validate()
}

// BrandRequest is the body of POST /api/generate-brand.
type BrandRequest struct {
	Description string `json:"description"`
	Language    string `json:"language"`
}

func (r *BrandRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return &validationError{msg: "description is required"}
	}
	if r.Language == "" {
		r.Language = i18n.DefaultLanguage
	}
	return nil
}

// ChatRequest is the body of POST /api/chat-with-persona.
type ChatRequest struct {
	Analysis string `json:"analysis"`
	Message  string `json:"message"`
	Language string `json:"language"`
}

func (r *ChatRequest) Validate() error {
	if r.Analysis == "" {
		return &validationError{msg: "analysis is required"}
	}
	if strings.TrimSpace(r.Message) == "" {
		return &validationError{msg: "message is required"}
	}
	if r.Language == "" {
		r.Language = i18n.DefaultLanguage
	}
	return nil
}

// TTSRequest is the body of POST /api/tts.
type TTSRequest struct {
	Text string `json:"text"`
}

func (r *TTSRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &validationError{msg: "text is required"}
	}
	return nil
}
