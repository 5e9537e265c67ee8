package server

import (
	"context"
	"net/http"
	"time"

	"github.com/hongminglow/skillbit-be/internal/auth"
	"github.com/hongminglow/skillbit-be/internal/config"
	"github.com/hongminglow/skillbit-be/internal/credits"
	"github.com/hongminglow/skillbit-be/internal/http/handlers"
	"github.com/hongminglow/skillbit-be/internal/middleware"
	"github.com/hongminglow/skillbit-be/internal/resume"
	"github.com/hongminglow/skillbit-be/internal/scoring"
	"github.com/hongminglow/skillbit-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Handler(cfg, store, auth.NewBcrypt(), scoring.RandomScorer{}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Handler builds the routed, middleware-wrapped handler tree.
func Handler(cfg config.Config, store storage.Store, hasher auth.PasswordHasher, scorer scoring.Scorer) http.Handler {
	policy := credits.PolicyFromConfig(cfg)

	var tokenManager *auth.TokenManager
	if cfg.TokensEnabled() {
		tokenManager = auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	}

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(store, hasher, tokenManager, policy).Register(mux)
	handlers.NewJobsHandler(store, time.Now).Register(mux)
	handlers.NewApplyHandler(store, scorer, policy, time.Now).Register(mux)
	handlers.NewResumeHandler(store, resume.NewExtractor(cfg.ResumeMaxChars), policy, cfg.ResumeMaxUploadBytes).Register(mux)

	return middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
