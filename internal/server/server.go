// Package server provides the HTTP REST API for the hiring workflow.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/titanhire/titanhire/internal/auth"
	"github.com/titanhire/titanhire/internal/generator"
	"github.com/titanhire/titanhire/internal/server/middleware"
	"github.com/titanhire/titanhire/internal/server/ratelimit"
	"github.com/titanhire/titanhire/internal/session"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	session     *session.Session
	generator   generator.Generator
	auth        auth.Service
	tokens      *auth.JWTService
	rateLimiter *ratelimit.Limiter
	closers     []func()
}

// Config holds server configuration. Dependencies are constructed by the
// caller so the same server works over any storage backend or generator.
type Config struct {
	Port      int
	Session   *session.Session
	Generator generator.Generator
	Auth      auth.Service
	Tokens    *auth.JWTService

	// Closers run after shutdown, in order (e.g. store and Gemini client
	// cleanup).
	Closers []func()
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Session == nil || cfg.Generator == nil || cfg.Auth == nil || cfg.Tokens == nil {
		return nil, fmt.Errorf("server config is missing dependencies")
	}

	s := &Server{
		session:   cfg.Session,
		generator: cfg.Generator,
		auth:      cfg.Auth,
		tokens:    cfg.Tokens,
		closers:   cfg.Closers,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	requireAuth := middleware.Auth(tokenValidator{jwt: cfg.Tokens})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Identity endpoints
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /auth/logout", s.handleLogout)
	mux.HandleFunc("GET /auth/me", s.handleMe)
	mux.HandleFunc("PUT /auth/profile", s.handleUpdateProfile)

	// Job collection endpoints (bearer token required)
	mux.Handle("GET /jobs", requireAuth(http.HandlerFunc(s.handleListJobs)))
	mux.Handle("POST /jobs", requireAuth(http.HandlerFunc(s.handleCreateJob)))
	mux.Handle("GET /jobs/{id}", requireAuth(http.HandlerFunc(s.handleGetJob)))
	mux.Handle("PUT /jobs/{id}", requireAuth(http.HandlerFunc(s.handleUpdateJob)))
	mux.Handle("DELETE /jobs/{id}", requireAuth(http.HandlerFunc(s.handleDeleteJob)))
	mux.Handle("POST /jobs/{id}/stages/{stage}/complete", requireAuth(http.HandlerFunc(s.handleCompleteStage)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second, // generation requests can hold up to the 30s race
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	for _, closer := range s.closers {
		closer()
	}

	log.Println("Server stopped")
	return nil
}

// Handler returns the configured handler chain (for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// tokenValidator adapts the auth package's JWT service to the middleware's
// validator interface.
type tokenValidator struct {
	jwt *auth.JWTService
}

func (v tokenValidator) ValidateToken(tokenString string) (middleware.UserIDGetter, error) {
	claims, err := v.jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
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
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)

		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
		}
		if !allowed {
			log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d", info.Limit, info.Remaining)
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractClientID extracts the client identifier (IP) from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
