// Package server provides the HTTP REST API for AndikaCV.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gedeon/andikacv/internal/config"
	"github.com/gedeon/andikacv/internal/db"
	"github.com/gedeon/andikacv/internal/export"
	"github.com/gedeon/andikacv/internal/server/middleware"
	"github.com/gedeon/andikacv/internal/server/ratelimit"
	"github.com/gedeon/andikacv/internal/session"
	"github.com/gedeon/andikacv/internal/storage"
	"github.com/gedeon/andikacv/pkg/logger"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	cfg         *config.Config
	log         logger.Logger
	db          *db.DB
	sessions    *session.Store
	uploader    storage.Uploader
	pdf         *export.PDFRenderer
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Deps holds the external dependencies the server is built from. The caller
// owns their lifecycles except for the database, which the server closes on
// shutdown.
type Deps struct {
	Config   *config.Config
	Logger   logger.Logger
	DB       *db.DB
	Sessions *session.Store
	Uploader storage.Uploader
	PDF      *export.PDFRenderer
}

// New creates a new server instance
func New(deps Deps) (*Server, error) {
	if deps.Config == nil || deps.DB == nil {
		return nil, fmt.Errorf("config and database are required")
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	if deps.Sessions == nil {
		deps.Sessions = session.NewStore(nil)
	}
	if deps.Uploader == nil {
		deps.Uploader = storage.Disabled()
	}
	if deps.PDF == nil {
		deps.PDF = export.NewPDFRenderer(deps.Config.ChromePath)
	}

	s := &Server{
		cfg:      deps.Config,
		log:      deps.Logger,
		db:       deps.DB,
		sessions: deps.Sessions,
		uploader: deps.Uploader,
		pdf:      deps.PDF,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig(), s.log)

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(deps.DB, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	s.authHandler = NewAuthHandler(s.userService, s.jwtService, s.sessions)

	s.httpServer = &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF export holds the connection while Chrome prints
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the ServeMux. Everything except registration, login, health
// and the template catalog sits behind the auth middleware.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(s.jwtService.AsTokenValidator(s.sessions))

	// Public endpoints
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("GET /templates/{id}", s.handleGetTemplate)

	// Account endpoints
	mux.Handle("POST /auth/logout", auth(http.HandlerFunc(s.authHandler.Logout)))
	mux.Handle("PUT /auth/password", auth(http.HandlerFunc(s.handleUpdatePassword)))
	mux.Handle("GET /users/me", auth(http.HandlerFunc(s.authHandler.Me)))
	mux.Handle("PUT /users/me", auth(http.HandlerFunc(s.authHandler.UpdateMe)))

	// CV endpoints
	mux.Handle("GET /cvs", auth(http.HandlerFunc(s.handleListCVs)))
	mux.Handle("POST /cvs", auth(http.HandlerFunc(s.handleCreateCV)))
	mux.Handle("GET /cvs/{id}", auth(http.HandlerFunc(s.handleGetCV)))
	mux.Handle("PUT /cvs/{id}", auth(http.HandlerFunc(s.handleUpdateCV)))
	mux.Handle("DELETE /cvs/{id}", auth(http.HandlerFunc(s.handleDeleteCV)))
	mux.Handle("GET /cvs/{id}/pdf", auth(http.HandlerFunc(s.handleExportCVPDF)))

	// Cover letter endpoints
	mux.Handle("POST /cover-letters/generate", auth(http.HandlerFunc(s.handleGenerateCoverLetter)))
	mux.Handle("GET /cover-letters", auth(http.HandlerFunc(s.handleListCoverLetters)))
	mux.Handle("POST /cover-letters", auth(http.HandlerFunc(s.handleSaveCoverLetter)))
	mux.Handle("GET /cover-letters/{id}", auth(http.HandlerFunc(s.handleGetCoverLetter)))
	mux.Handle("DELETE /cover-letters/{id}", auth(http.HandlerFunc(s.handleDeleteCoverLetter)))

	// Dashboard
	mux.Handle("GET /dashboard", auth(http.HandlerFunc(s.handleDashboard)))

	// Uploads
	mux.Handle("POST /uploads/photo", auth(http.HandlerFunc(s.handleUploadPhoto)))

	// Admin endpoints
	mux.Handle("GET /admin/users", auth(s.requireAdmin(http.HandlerFunc(s.handleAdminListUsers))))
	mux.Handle("DELETE /admin/users/{id}", auth(s.requireAdmin(http.HandlerFunc(s.handleAdminDeleteUser))))
	mux.Handle("GET /admin/templates", auth(s.requireAdmin(http.HandlerFunc(s.handleAdminListTemplates))))
	mux.Handle("POST /admin/templates", auth(s.requireAdmin(http.HandlerFunc(s.handleAdminUpsertTemplate))))
	mux.Handle("DELETE /admin/templates/{id}", auth(s.requireAdmin(http.HandlerFunc(s.handleAdminDeleteTemplate))))

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if err := s.sessions.Close(); err != nil {
		s.log.Warn("failed to close session store", zap.Error(err))
	}

	s.db.Close()
	s.log.Info("server stopped")
	return nil
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

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

// requireAdmin gates a handler on the admin email list. It runs inside the
// auth middleware, so the user ID is always present.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.GetUserID(r)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		profile, err := s.db.GetProfileByID(r.Context(), userID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
			return
		}
		if profile == nil || !s.cfg.IsAdmin(profile.Email) {
			s.errorResponse(w, http.StatusForbidden, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status including database reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  "database unreachable",
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdatePassword resolves the caller from the token and delegates.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Rate limiting keys on the IP address from RemoteAddr. X-Forwarded-For is
// deliberately ignored until a trusted proxy list exists.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.log.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Int("remaining", info.Remaining),
		zap.Time("reset", info.ResetTime))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
