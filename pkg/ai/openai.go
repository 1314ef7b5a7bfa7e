package ai

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ai-commit-toolkit/ai-commit/pkg/config"
	"github.com/ai-commit-toolkit/ai-commit/pkg/errors"
)

// OpenAIGenerator implements Generator against an OpenAI-compatible
// chat completion API.
type OpenAIGenerator struct {
	client   *openai.Client
	model    string
	executor *Executor
	logger   *slog.Logger
}

// NewOpenAIGenerator creates the backend from configuration. The API
// key is read from the environment variable named in the config; it is
// never stored in configuration files.
func NewOpenAIGenerator(cfg *config.Config, logger *slog.Logger) (*OpenAIGenerator, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	apiKey := os.Getenv(cfg.OpenAI.APIKeyEnv)
	if apiKey == "" {
		return nil, errors.ConfigError(
			"API key not set, export "+cfg.OpenAI.APIKeyEnv+" before running", nil)
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if cfg.OpenAI.BaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAI.BaseURL
	}
	if cfg.OpenAI.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.OpenAI.Timeout}
	}

	return &OpenAIGenerator{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    cfg.OpenAI.Model,
		executor: NewExecutor(cfg.Retry, logger),
		logger:   logger,
	}, nil
}

// GenerateCommitMessage sends the prepared diff to the chat completion
// endpoint and extracts the commit message from the response. Transient
// failures and rate limits are retried by the executor.
func (g *OpenAIGenerator) GenerateCommitMessage(ctx context.Context, req Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	system, user := BuildPrompt(req)
	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.2,
	}

	g.logger.Debug("sending generation request",
		"model", model, "prompt_bytes", len(user))

	var resp openai.ChatCompletionResponse
	err := g.executor.Do(ctx, "chat_completion", func(ctx context.Context) error {
		var callErr error
		resp, callErr = g.client.CreateChatCompletion(ctx, chatReq)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, errors.InvalidRequestError("no choices in response", nil)
	}

	message := ExtractMessage(resp.Choices[0].Message.Content)
	g.logger.Debug("generation response received",
		"model", resp.Model,
		"total_tokens", resp.Usage.TotalTokens)

	return &Response{
		Message: message,
		Model:   resp.Model,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// Validate checks the backend is reachable by listing models.
func (g *OpenAIGenerator) Validate(ctx context.Context) error {
	err := g.executor.Do(ctx, "list_models", func(ctx context.Context) error {
		_, callErr := g.client.ListModels(ctx)
		return callErr
	})
	if err != nil {
		return errors.ConfigError("generation backend is not reachable", err)
	}
	return nil
}

// Type returns the backend type identifier.
func (g *OpenAIGenerator) Type() ProviderType {
	return ProviderOpenAI
}

var _ Generator = (*OpenAIGenerator)(nil)
