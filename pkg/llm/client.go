package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"golang.org/x/time/rate"
)

// ClientConfig represents the configuration for the completion client.
type ClientConfig struct {
	Model     string
	MaxTokens int
	BaseURL   string // Ollama server URL
	Timeout   time.Duration
	RateLimit float64 // requests per second
}

// Client wraps an Ollama model behind the Completer contract: one
// role-structured prompt per call, no retry on failure.
type Client struct {
	config  ClientConfig
	llm     llms.Model
	limiter *rate.Limiter
}

// NewWithConfig creates a new completion client with the given configuration.
func NewWithConfig(config ClientConfig) (*Client, error) {
	if config.Model == "" {
		config.Model = "mistral" // Default Ollama model
	}
	if config.MaxTokens < 0 {
		return nil, fmt.Errorf("max tokens cannot be negative")
	} else if config.MaxTokens == 0 {
		config.MaxTokens = 2000
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:11434" // Default Ollama URL
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = 2
	}

	model, err := ollama.New(ollama.WithModel(config.Model),
		ollama.WithServerURL(config.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM: %w", err)
	}

	return &Client{
		config:  config,
		llm:     model,
		limiter: rate.NewLimiter(rate.Limit(config.RateLimit), 1),
	}, nil
}

// Complete issues a single completion call with a system instruction and a
// user turn. The configured timeout bounds the call; expiry surfaces as an
// ordinary error.
func (c *Client) Complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}

	response, err := c.llm.GenerateContent(ctx, content,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(c.config.MaxTokens))
	if err != nil {
		return "", fmt.Errorf("completion error: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}
