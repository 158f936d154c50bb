package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

// storage is the subset of db.DB the handlers use.
type storage interface {
	SaveResume(ctx context.Context, filename, rawText, cleanedText string) (uuid.UUID, error)
	GetResume(ctx context.Context, resumeID uuid.UUID) (*db.Resume, error)
	ListResumes(ctx context.Context, limit int) ([]db.Resume, error)
	SaveAnalysis(ctx context.Context, resumeID uuid.UUID, categoryID *int, categoryName string, confidence float64) (uuid.UUID, error)
	LatestAnalysis(ctx context.Context, resumeID uuid.UUID) (*db.Analysis, error)
	SaveResumeSkills(ctx context.Context, resumeID uuid.UUID, skills []db.ResumeSkill) error
	ListResumeSkills(ctx context.Context, resumeID uuid.UUID) ([]db.ResumeSkill, error)
	SaveJobDescription(ctx context.Context, rawText string) (uuid.UUID, error)
	SaveMatch(ctx context.Context, resumeID, jdID uuid.UUID, score float64, matching, missing []string) (uuid.UUID, error)
	ListMatches(ctx context.Context, resumeID uuid.UUID) ([]db.Match, error)
	Close()
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	analyzer    *pipeline.Analyzer
	db          storage
	validator   *validator.Validate
	logger      *zap.Logger
	maxFileSize int64
}

// Config holds server configuration
type Config struct {
	ListenAddr  string
	MaxFileSize int64
}

// New creates a new server instance. The database handle may be nil, in
// which case persistence endpoints respond with 503.
func New(cfg Config, analyzer *pipeline.Analyzer, database *db.DB, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 10 * 1024 * 1024
	}

	s := &Server{
		analyzer:    analyzer,
		validator:   validator.New(),
		logger:      logger,
		maxFileSize: cfg.MaxFileSize,
	}
	if database != nil {
		s.db = database
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /categories", s.handleListCategories)

	// Analysis endpoints
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /categorize", s.handleCategorize)
	mux.HandleFunc("POST /skills/extract", s.handleExtractSkills)
	mux.HandleFunc("POST /match", s.handleMatch)

	// Resume storage endpoints
	mux.HandleFunc("POST /resumes", s.handleUploadResume)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("GET /resumes/{id}/skills", s.handleGetResumeSkills)
	mux.HandleFunc("GET /resumes/{id}/matches", s.handleGetResumeMatches)

	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.db != nil {
		s.db.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

// Handler returns the configured HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	status := map[string]any{
		"status":           "ok",
		"classifier_ready": s.analyzer.CategorizerReady(),
		"storage_enabled":  s.db != nil,
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
