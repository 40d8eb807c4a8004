package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"

	"github.com/vbonduro/pantrychef/internal/llm"
)

// OpenAICompleter calls an OpenAI-compatible chat completions endpoint
// through langchaingo.
type OpenAICompleter struct {
	client *lcopenai.LLM
	model  string
}

// NewOpenAICompleter builds a completer for model. baseURL may be empty to use
// the public OpenAI endpoint.
func NewOpenAICompleter(apiKey, model, baseURL string) (*OpenAICompleter, error) {
	opts := []lcopenai.Option{
		lcopenai.WithToken(apiKey),
		lcopenai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(baseURL))
	}

	client, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize openai client: %w", err)
	}

	return &OpenAICompleter{client: client, model: model}, nil
}

func (c *OpenAICompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	messages := make([]llms.MessageContent, 0, 2)
	if req.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, req.Prompt))

	opts := []llms.CallOption{
		llms.WithModel(c.model),
		llms.WithTemperature(req.Temperature),
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := c.client.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to call openai: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", llm.ErrEmptyCompletion
	}

	return resp.Choices[0].Content, nil
}
