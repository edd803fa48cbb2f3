package brand

import "context"

// Generator port (interface for brand analysis generation)
type Generator interface {
	// Generate produces the brand psychology analysis for a description and
	// returns it together with a URL to the generated logo asset.
	Generate(ctx context.Context, description, language string) (map[string]any, string, error)
}

// Persona port (interface for chatting with the generated brand persona)
type Persona interface {
	Chat(ctx context.Context, analysis, message, language string) (string, error)
}

// Speech port (interface for text-to-speech synthesis)
type Speech interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// AssetStore port (interface for persisting generated logo assets)
type AssetStore interface {
	UploadPNG(ctx context.Context, key string, data []byte) (string, error)
}
