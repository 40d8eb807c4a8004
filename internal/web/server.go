package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vbonduro/pantrychef/internal/metrics"
	"github.com/vbonduro/pantrychef/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	service     *service.PantryService
	metrics     *metrics.Metrics
	corsOrigins []string
	validate    *validator.Validate
	mux         *http.ServeMux
	logger      *slog.Logger
}

// NewServer builds the JSON API. m may be nil, in which case /metrics is not
// served and requests are not counted.
func NewServer(svc *service.PantryService, m *metrics.Metrics, corsOrigins []string, logger *slog.Logger) *Server {
	s := &Server{
		service:     svc,
		metrics:     m,
		corsOrigins: corsOrigins,
		validate:    newValidator(),
		mux:         http.NewServeMux(),
		logger:      logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /pantry", s.handleListPantry)
	s.mux.HandleFunc("POST /pantry", s.handleAddPantryItem)
	s.mux.HandleFunc("PUT /pantry/{item_name}", s.handleUpdatePantryItem)
	s.mux.HandleFunc("DELETE /pantry/{item_name}", s.handleDeletePantryItem)
	s.mux.HandleFunc("POST /meal/generate", s.handleGenerateMeals)
	s.mux.HandleFunc("POST /meal/suggest", s.handleSuggestMeal)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}
}

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := requestLogger(s.logger, s.metrics, cors(s.corsOrigins, securityHeaders(s.mux)))
	requestID(h).ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
