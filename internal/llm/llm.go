package llm

import (
	"context"
	"errors"
)

// SystemPrompt is the shared system instruction sent by every adapter.
const SystemPrompt = "You are a professional chef and nutritionist. Always respond with valid JSON only."

// ErrEmptyCompletion is returned when the model answers without any text.
var ErrEmptyCompletion = errors.New("empty completion from model")

// Request is a single chat-style completion: one system instruction and one
// user prompt.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Completer turns a prompt into the model's raw text reply. Implementations
// do not interpret the text.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}
