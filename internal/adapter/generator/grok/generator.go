// Package grok implements the itinerary generator port against the xAI Grok
// API, which speaks the OpenAI chat-completions protocol.
package grok

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

// BackendName is the unique identifier for the Grok backend.
const BackendName = "grok"

// DefaultBaseURL is the xAI API endpoint.
const DefaultBaseURL = "https://api.x.ai/v1"

// DefaultModel is the model used when none is configured.
const DefaultModel = "grok-2-latest"

// generationTemperature balances variety against schema adherence.
const generationTemperature = 0.7

// Config contains the settings for the Grok backend.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Generator implements domain.ItineraryGenerator using the Grok API.
type Generator struct {
	client *openai.Client
	model  string
}

// New creates a Grok generator. The base URL is overridable for tests.
func New(cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingAPIKey, BackendName)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &Generator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}, nil
}

// Name implements domain.ItineraryGenerator.Name.
func (g *Generator) Name() string {
	return BackendName
}

// Generate implements domain.ItineraryGenerator.Generate. It requests the
// JSON-object response format so the model answers with bare JSON.
func (g *Generator) Generate(ctx context.Context, prompt domain.Prompt) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.User},
		},
		Temperature: generationTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", wrapError(BackendName, err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.NewProviderError(BackendName, errors.New("empty completion response"))
	}
	return resp.Choices[0].Message.Content, nil
}

// wrapError converts transport errors into ProviderErrors, marking timeouts
// and upstream congestion as retryable.
func wrapError(backend string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewProviderTimeoutError(backend)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500 {
			return domain.NewRetryableProviderError(backend, err)
		}
		return domain.NewProviderError(backend, err)
	}

	return domain.NewProviderError(backend, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err))
}

// Ensure Generator implements the port at compile time.
var _ domain.ItineraryGenerator = (*Generator)(nil)
