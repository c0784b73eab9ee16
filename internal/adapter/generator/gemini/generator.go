// Package gemini implements the itinerary generator port against Google's
// Gemini API via the official generative-ai-go SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

// BackendName is the unique identifier for the Gemini backend.
const BackendName = "gemini"

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-1.5-pro"

// generationTemperature balances variety against schema adherence.
const generationTemperature = 0.7

// Config contains the settings for the Gemini backend.
type Config struct {
	APIKey string
	Model  string
}

// Generator implements domain.ItineraryGenerator using the Gemini API.
type Generator struct {
	client *genai.Client
	model  string
}

// New creates a Gemini generator.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingAPIKey, BackendName)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Generator{
		client: client,
		model:  cfg.Model,
	}, nil
}

// Name implements domain.ItineraryGenerator.Name.
func (g *Generator) Name() string {
	return BackendName
}

// Generate implements domain.ItineraryGenerator.Generate. The JSON response
// MIME type makes the model answer with bare JSON instead of fenced markdown.
func (g *Generator) Generate(ctx context.Context, prompt domain.Prompt) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(generationTemperature)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompt.System)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt.User))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", domain.NewProviderTimeoutError(BackendName)
		}
		return "", domain.NewProviderError(BackendName, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err))
	}

	text := responseText(resp)
	if text == "" {
		return "", domain.NewProviderError(BackendName, errors.New("empty generation response"))
	}
	return text, nil
}

// Close releases the underlying client connection.
func (g *Generator) Close() error {
	return g.client.Close()
}

// responseText concatenates the text parts of the first candidate. Non-text
// parts are skipped.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

// Ensure Generator implements the port at compile time.
var _ domain.ItineraryGenerator = (*Generator)(nil)
