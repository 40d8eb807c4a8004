package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vbonduro/pantrychef/internal/config"
	"github.com/vbonduro/pantrychef/internal/db"
	"github.com/vbonduro/pantrychef/internal/llm"
	"github.com/vbonduro/pantrychef/internal/llm/claude"
	"github.com/vbonduro/pantrychef/internal/llm/ollama"
	"github.com/vbonduro/pantrychef/internal/llm/openai"
	"github.com/vbonduro/pantrychef/internal/logging"
	"github.com/vbonduro/pantrychef/internal/mealgen"
	"github.com/vbonduro/pantrychef/internal/metrics"
	"github.com/vbonduro/pantrychef/internal/service"
	"github.com/vbonduro/pantrychef/internal/store"
	"github.com/vbonduro/pantrychef/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pantry, closeStore, err := newPantryStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open pantry store", "error", err)
		return
	}
	defer closeStore()

	var m *metrics.Metrics
	var recorder mealgen.Recorder
	if cfg.MetricsEnabled {
		m = metrics.New()
		recorder = m
	}

	completer, err := newCompleter(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize llm backend", "error", err)
		return
	}

	generator := mealgen.NewGenerator(completer, cfg.LLMTimeout, recorder, logger)

	var sizes interface{ PantrySize(int) }
	if m != nil {
		sizes = m
	}
	pantryService := service.NewPantryService(pantry, generator, sizes, logger)
	if err := pantryService.Seed(ctx, store.SeedItems()); err != nil {
		logger.Error("failed to seed pantry", "error", err)
		return
	}

	server := web.NewServer(pantryService, m, cfg.CORSOrigins, logger)
	if err := server.ListenAndServe(ctx, cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

// newPantryStore returns the configured store and a function that releases it.
func newPantryStore(cfg *config.Config, logger *slog.Logger) (store.PantryStore, func(), error) {
	switch cfg.StoreBackend {
	case "memory":
		logger.Info("using in-memory pantry store")
		return store.NewMemoryStore(), func() {}, nil
	case "sqlite":
		database, err := db.Open("pantrychef")
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using sqlite pantry store")
		closeDB := func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}
		return store.NewSQLStore(database), closeDB, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}

// newCompleter returns the configured model backend. A missing credential
// yields a nil Completer, which leaves meal generation on its fallback path.
func newCompleter(cfg *config.Config, logger *slog.Logger) (llm.Completer, error) {
	switch cfg.LLMBackend {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			logger.Warn("OPENAI_API_KEY not set; meal generation will use fallback suggestions")
			return nil, nil
		}
		c, err := openai.NewOpenAICompleter(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("using OpenAI llm backend", "model", cfg.OpenAIModel)
		return c, nil
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			logger.Warn("CLAUDE_API_KEY not set; meal generation will use fallback suggestions")
			return nil, nil
		}
		logger.Info("using Claude llm backend", "model", cfg.ClaudeModel)
		return claude.NewClaudeCompleter(cfg.ClaudeAPIKey, cfg.ClaudeModel, ""), nil
	case "ollama":
		logger.Info("using Ollama llm backend", "host", cfg.OllamaHost, "model", cfg.OllamaModel)
		return ollama.NewOllamaCompleter(cfg.OllamaHost, cfg.OllamaModel), nil
	default:
		return nil, fmt.Errorf("unknown LLM_BACKEND %q", cfg.LLMBackend)
	}
}
