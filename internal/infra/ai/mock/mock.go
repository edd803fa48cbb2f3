// Package mock provides the demo implementations of the AI collaborators.
// No model is called: the analysis comes from a static JSON file, chat
// replies are canned, and artificial latency simulates processing time.
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	domain "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/domain/brand"
)

// PlaceholderLogoURL is the fixed local asset returned instead of a real
// generated logo. The image proxy only recognizes this exact reference.
const PlaceholderLogoURL = "/static/placeholder_logo.png"

// Generator reads a pre-defined analysis from DataPath instead of calling a
// model.
type Generator struct {
	DataPath string
	Latency  time.Duration
}

func NewGenerator(dataPath string, latency time.Duration) *Generator {
	return &Generator{DataPath: dataPath, Latency: latency}
}

func (g *Generator) Generate(ctx context.Context, description, language string) (map[string]any, string, error) {
	if err := wait(ctx, g.Latency); err != nil {
		return nil, "", err
	}

	raw, err := os.ReadFile(g.DataPath)
	if err != nil {
		return nil, "", fmt.Errorf("reading mock analysis: %w", err)
	}
	var analysis map[string]any
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, "", fmt.Errorf("parsing mock analysis: %w", err)
	}
	return analysis, PlaceholderLogoURL, nil
}

// Persona returns a canned reply in the requested language, falling back to
// English for languages without a scripted reply.
type Persona struct {
	Latency time.Duration
}

var replies = map[string]string{
	"en": "Thank you for asking! As the persona for this brand, I believe our core value is innovation. (This is a simulated response).",
	"es": "¡Gracias por preguntar! Como la persona de esta marca, creo que nuestro valor principal es la innovación. (Esta es una respuesta simulada).",
	"fr": "Merci pour votre question ! En tant que persona de cette marque, je crois que notre valeur fondamentale est l'innovation. (Ceci est une réponse simulée).",
}

func (p *Persona) Chat(ctx context.Context, analysis, message, language string) (string, error) {
	if err := wait(ctx, p.Latency); err != nil {
		return "", err
	}
	reply, ok := replies[language]
	if !ok {
		reply = replies["en"]
	}
	return reply, nil
}

// Speech is the demo synthesizer stub. It always reports the feature as
// unavailable; the full build replaces it with the openai implementation.
type Speech struct{}

func (Speech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return nil, domain.ErrNotAvailable
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
