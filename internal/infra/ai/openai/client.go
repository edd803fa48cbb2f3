// Package openai implements the brand AI collaborators against the OpenAI
// API. This is the "full version" path; the demo build wires the mock
// package instead.
package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	domain "github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/domain/brand"
	"github.com/ArtinGhorbanian/PsyDesign-AI-DEMO/internal/infra/ai/prompt"
)

const maxTokens = 2048

type Client struct {
	api    *openai.Client
	model  string
	assets domain.AssetStore
}

// NewClient builds a client for the given key and chat model. When assets is
// non-nil, generated logos are copied into the asset store and the stored URL
// is returned; otherwise the provider's ephemeral image URL is passed through.
func NewClient(apiKey, model string, assets domain.AssetStore) *Client {
	return &Client{api: openai.NewClient(apiKey), model: model, assets: assets}
}

// Generate implements domain.Generator: a JSON-mode chat completion for the
// analysis plus an image generation for the logo.
func (c *Client) Generate(ctx context.Context, description, language string) (map[string]any, string, error) {
	content, err := c.complete(ctx,
		prompt.GetSystemPrompt(),
		prompt.GetUserPrompt(description, language),
		true,
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	var analysis map[string]any
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, "", fmt.Errorf("parsing analysis response: %w", err)
	}

	logoURL, err := c.generateLogo(ctx, description)
	if err != nil {
		return nil, "", err
	}
	return analysis, logoURL, nil
}

// Chat implements domain.Persona.
func (c *Client) Chat(ctx context.Context, analysis, message, language string) (string, error) {
	reply, err := c.complete(ctx,
		prompt.GetPersonaSystemPrompt(analysis, language),
		message,
		false,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	return reply, nil
}

// Synthesize implements domain.Speech using the speech endpoint.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: openai.VoiceAlloy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create speech: %w", err)
	}
	defer resp.Close()
	return io.ReadAll(resp)
}

func (c *Client) complete(ctx context.Context, system, user string, jsonMode bool) (string, error) {
	model := c.model
	if model == "" {
		model = openai.GPT4o
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) generateLogo(ctx context.Context, description string) (string, error) {
	req := openai.ImageRequest{
		Prompt: prompt.GetLogoPrompt(description),
		Model:  openai.CreateImageModelDallE3,
		N:      1,
		Size:   openai.CreateImageSize1024x1024,
	}
	if c.assets != nil {
		req.ResponseFormat = openai.CreateImageResponseFormatB64JSON
	}

	resp, err := c.api.CreateImage(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create logo image: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("image response contained no data")
	}

	if c.assets == nil {
		return resp.Data[0].URL, nil
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return "", fmt.Errorf("decoding logo image: %w", err)
	}
	key := fmt.Sprintf("logos/%s.png", uuid.New().String())
	url, err := c.assets.UploadPNG(ctx, key, data)
	if err != nil {
		return "", fmt.Errorf("storing logo image: %w", err)
	}
	return url, nil
}
