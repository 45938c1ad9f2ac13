// Package server provides the HTTP REST API for the screening service.
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

	"go.uber.org/zap"

	"github.com/jonathan/hr-screener/internal/config"
	"github.com/jonathan/hr-screener/internal/db"
	"github.com/jonathan/hr-screener/internal/pipeline"
	"github.com/jonathan/hr-screener/internal/rules"
	"github.com/jonathan/hr-screener/internal/server/middleware"
	"github.com/jonathan/hr-screener/internal/voice"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	cfg         config.Config
	voiceClient *voice.Client
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	logger      *zap.Logger
}

// New creates a new server instance. The database schema is ensured on
// startup so a fresh deployment needs no separate migration step.
func New(cfg config.Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	s := &Server{
		db:     database,
		cfg:    cfg,
		logger: logger,
	}

	// Fail fast on an unreadable hiring config instead of at first request.
	if _, err := s.rulesConfig(); err != nil {
		return nil, err
	}
	s.voiceClient = voice.NewClient(cfg.VoiceBaseURL, cfg.VoiceAPIKey, cfg.VoiceAgentID, logger)

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.router())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // batch imports and call sync can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// router wires up all routes. Mutating routes require a valid JWT.
func (s *Server) router() http.Handler {
	authed := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Resume ingestion
	mux.Handle("POST /api/resumes/parse", authed(http.HandlerFunc(s.handleParseResume)))
	mux.Handle("POST /api/resumes/import", authed(http.HandlerFunc(s.handleImportResume)))
	mux.Handle("POST /api/resumes/import/batch", authed(http.HandlerFunc(s.handleImportBatch)))

	// Candidates
	mux.Handle("GET /api/candidates", authed(http.HandlerFunc(s.handleListCandidates)))
	mux.Handle("GET /api/candidates/{id}", authed(http.HandlerFunc(s.handleGetCandidate)))
	mux.Handle("PATCH /api/candidates/{id}/status", authed(http.HandlerFunc(s.handleUpdateCandidateStatus)))
	mux.Handle("DELETE /api/candidates/{id}", authed(http.HandlerFunc(s.handleDeleteCandidate)))
	mux.Handle("GET /api/candidates/{id}/calls", authed(http.HandlerFunc(s.handleListCandidateCalls)))

	// Hiring rules
	mux.Handle("GET /api/rules", authed(http.HandlerFunc(s.handleListRules)))
	mux.Handle("POST /api/rules", authed(http.HandlerFunc(s.handleCreateRule)))
	mux.Handle("DELETE /api/rules/{id}", authed(http.HandlerFunc(s.handleDeleteRule)))

	// Screening calls
	mux.Handle("POST /api/calls/queue", authed(http.HandlerFunc(s.handleQueueCalls)))
	mux.Handle("POST /api/calls/sync", authed(http.HandlerFunc(s.handleSyncCalls)))

	// Export
	mux.Handle("POST /api/export/sheets", authed(http.HandlerFunc(s.handleExportSheets)))
	mux.Handle("GET /api/export/xlsx", authed(http.HandlerFunc(s.handleExportXLSX)))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.db.Close()
	s.logger.Info("server stopped")
	return nil
}

// importerFor builds an importer with the current role detection mappings.
// The hiring config is re-read every time so keyword edits apply to the next
// upload without a restart. A nil store yields an extract-only importer.
func (s *Server) importerFor(store pipeline.CandidateStore) (*pipeline.Importer, error) {
	cfg, err := s.rulesConfig()
	if err != nil {
		return nil, err
	}
	return pipeline.NewImporter(store, cfg.KeywordMap(), s.logger), nil
}

// rulesConfig re-reads the hiring configuration file so HR edits take effect
// without a restart. With no file configured an empty config is returned and
// rules come from the database alone.
func (s *Server) rulesConfig() (*rules.Config, error) {
	if s.cfg.RulesPath == "" {
		return &rules.Config{}, nil
	}
	cfg, err := rules.LoadConfig(s.cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load hiring config: %w", err)
	}
	return cfg, nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

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
			zap.Duration("elapsed", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
