// Package ai provides a pluggable abstraction layer for commit message
// generation backends.
// Supported backend: OpenAI-compatible chat completion APIs
package ai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ai-commit-toolkit/ai-commit/pkg/config"
)

// ProviderType represents the type of generation backend
type ProviderType string

const (
	// ProviderOpenAI uses an OpenAI-compatible chat completion API
	ProviderOpenAI ProviderType = "openai"
)

// Generator is the abstraction interface for generation backends.
// All backends must implement this interface to ensure compatibility
type Generator interface {
	// GenerateCommitMessage produces a commit message for the given request
	GenerateCommitMessage(ctx context.Context, req Request) (*Response, error)

	// Validate checks if the backend is available and properly configured
	// Returns nil if the backend is ready to use
	Validate(ctx context.Context) error

	// Type returns the backend type identifier
	Type() ProviderType
}

// Request contains the inputs for one generation call
type Request struct {
	// Diff is the prepared diff payload, either verbatim or a
	// decomposed summary
	Diff string

	// Branch is the current branch name, used as naming context
	Branch string

	// Model overrides the configured model when non-empty
	Model string
}

// Response represents the parsed output from a generation backend
type Response struct {
	// Message is the extracted commit message
	Message string

	// Model is the model that produced the message
	Model string

	// Usage carries token accounting when the backend reports it
	Usage Usage
}

// Usage holds token counts reported by the backend
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// NewGenerator creates a generation backend from configuration.
func NewGenerator(provider ProviderType, cfg *config.Config, logger *slog.Logger) (Generator, error) {
	switch provider {
	case ProviderOpenAI, "":
		return NewOpenAIGenerator(cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", provider)
	}
}
