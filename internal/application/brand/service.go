package brand

import (
	"context"
	"fmt"

	apphistory "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/application/history"
	domain "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/domain/brand"
)

// Service implements the brand generation use-cases. It orchestrates the AI
// collaborators and records every generated identity in the history service.
type Service struct {
	Generator domain.Generator
	Persona   domain.Persona
	Speech    domain.Speech
	History   *apphistory.Service
}

// GenerateCommand carries a validated brand-generation request.
type GenerateCommand struct {
	Description string
	Language    string
}

type GenerateResult struct {
	ID       int64          `json:"id"`
	Analysis map[string]any `json:"analysis"`
	LogoURL  string         `json:"logo_url"`
}

// Generate runs the generator collaborator and persists the outcome as a new
// history record.
func (s *Service) Generate(ctx context.Context, cmd GenerateCommand) (GenerateResult, error) {
	analysis, logoURL, err := s.Generator.Generate(ctx, cmd.Description, cmd.Language)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("generating brand identity: %w", err)
	}

	item, err := s.History.Create(ctx, cmd.Description, analysis, logoURL, cmd.Language)
	if err != nil {
		return GenerateResult{}, err
	}

	return GenerateResult{
		ID:       int64(item.ID),
		Analysis: item.Analysis,
		LogoURL:  item.LogoURL,
	}, nil
}

// Chat forwards a message to the persona collaborator.
func (s *Service) Chat(ctx context.Context, analysis, message, language string) (string, error) {
	reply, err := s.Persona.Chat(ctx, analysis, message, language)
	if err != nil {
		return "", fmt.Errorf("persona chat: %w", err)
	}
	return reply, nil
}

// Synthesize forwards text to the speech collaborator. The demo synthesizer
// always reports the feature as unavailable.
func (s *Service) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return s.Speech.Synthesize(ctx, text)
}
