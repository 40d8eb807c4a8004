package claude

import (
	"context"
	"fmt"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/vbonduro/pantrychef/internal/llm"
)

// defaultMaxTokens is used when a request does not set MaxTokens; the
// Messages API requires the field.
const defaultMaxTokens = 1024

type ClaudeCompleter struct {
	client *anthropic.Client
	model  string
}

// NewClaudeCompleter builds a completer for model. baseURL may be empty to use
// the public Anthropic endpoint.
func NewClaudeCompleter(apiKey, model, baseURL string) *ClaudeCompleter {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	return &ClaudeCompleter{
		client: anthropic.NewClient(apiKey, opts...),
		model:  model,
	}
}

func (c *ClaudeCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	temperature := float32(req.Temperature)

	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:       anthropic.Model(c.model),
		System:      req.System,
		Messages:    []anthropic.Message{anthropic.NewUserTextMessage(req.Prompt)},
		MaxTokens:   maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to call claude: %w", err)
	}

	for _, blk := range resp.Content {
		if blk.Type != anthropic.MessagesContentTypeText {
			continue
		}
		if text := blk.GetText(); strings.TrimSpace(text) != "" {
			return text, nil
		}
	}

	return "", llm.ErrEmptyCompletion
}
