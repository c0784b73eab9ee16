// Package huggingface implements the itinerary generator port against the
// Hugging Face inference router, which exposes an OpenAI-compatible
// chat-completions endpoint.
package huggingface

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

// BackendName is the unique identifier for the Hugging Face backend.
const BackendName = "huggingface"

// DefaultBaseURL is the Hugging Face inference router endpoint.
const DefaultBaseURL = "https://router.huggingface.co/v1"

// DefaultModel is the model used when none is configured.
const DefaultModel = "google/gemma-2-2b-it"

// maxCompletionTokens caps the response length. Small hosted models ramble
// without a hard cap.
const maxCompletionTokens = 1024

// Config contains the settings for the Hugging Face backend.
type Config struct {
	APIToken string
	BaseURL  string
	Model    string
}

// Generator implements domain.ItineraryGenerator using the Hugging Face
// inference router.
type Generator struct {
	client *openai.Client
	model  string
}

// New creates a Hugging Face generator. The base URL is overridable for tests.
func New(cfg Config) (*Generator, error) {
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingAPIKey, BackendName)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	clientCfg := openai.DefaultConfig(cfg.APIToken)
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

// Generate implements domain.ItineraryGenerator.Generate. Many router-hosted
// models reject system messages and the json_object response format, so the
// system and user prompts are merged into a single user message and the JSON
// shape is enforced downstream by extraction.
func (g *Generator) Generate(ctx context.Context, prompt domain.Prompt) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt.System + "\n\n" + prompt.User},
		},
		MaxTokens: maxCompletionTokens,
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
