package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/pantrychef/internal/config"
	"github.com/vbonduro/pantrychef/internal/llm/claude"
	"github.com/vbonduro/pantrychef/internal/llm/ollama"
	"github.com/vbonduro/pantrychef/internal/llm/openai"
	"github.com/vbonduro/pantrychef/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewCompleter(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantNil bool
		check   func(t *testing.T, c any)
	}{
		{
			name:    "openai without key is unconfigured",
			cfg:     config.Config{LLMBackend: "openai"},
			wantNil: true,
		},
		{
			name: "openai with key",
			cfg:  config.Config{LLMBackend: "openai", OpenAIAPIKey: "sk-test", OpenAIModel: "gpt-3.5-turbo"},
			check: func(t *testing.T, c any) {
				assert.IsType(t, &openai.OpenAICompleter{}, c)
			},
		},
		{
			name:    "claude without key is unconfigured",
			cfg:     config.Config{LLMBackend: "claude"},
			wantNil: true,
		},
		{
			name: "claude with key",
			cfg:  config.Config{LLMBackend: "claude", ClaudeAPIKey: "sk-ant", ClaudeModel: "claude-3-5-haiku-latest"},
			check: func(t *testing.T, c any) {
				assert.IsType(t, &claude.ClaudeCompleter{}, c)
			},
		},
		{
			name: "ollama needs no key",
			cfg:  config.Config{LLMBackend: "ollama", OllamaHost: "http://localhost:11434", OllamaModel: "llama3.1"},
			check: func(t *testing.T, c any) {
				assert.IsType(t, &ollama.OllamaCompleter{}, c)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := newCompleter(&tt.cfg, discardLogger())
			require.NoError(t, err)
			if tt.wantNil {
				// must be an untyped nil so the generator sees it as unconfigured
				assert.True(t, c == nil)
				return
			}
			require.NotNil(t, c)
			tt.check(t, c)
		})
	}
}

func TestNewCompleterUnknownBackend(t *testing.T) {
	_, err := newCompleter(&config.Config{LLMBackend: "gemini"}, discardLogger())
	assert.Error(t, err)
}

func TestNewPantryStore(t *testing.T) {
	for _, backend := range []string{"memory", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			s, closeStore, err := newPantryStore(&config.Config{StoreBackend: backend}, discardLogger())
			require.NoError(t, err)
			defer closeStore()

			_, err = s.Add(context.Background(), store.SeedItems()[0])
			require.NoError(t, err)
			items, err := s.List(context.Background())
			require.NoError(t, err)
			assert.Len(t, items, 1)
		})
	}
}

func TestNewPantryStoreUnknownBackend(t *testing.T) {
	_, _, err := newPantryStore(&config.Config{StoreBackend: "redis"}, discardLogger())
	assert.Error(t, err)
}
