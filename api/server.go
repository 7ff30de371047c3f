// ABOUTME: HTTP server wiring routes, CORS, and middleware for the news API
// ABOUTME: Exposes update, snapshot, stats, and industries endpoints

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/cors"

	"news-intel-api/api/handlers"
	"news-intel-api/api/middleware"
	"news-intel-api/core/interfaces"
)

// Config holds configuration for the API server
type Config struct {
	// Port is the listen port, without a colon
	Port string

	// Logger receives request logs; nil disables request logging
	Logger interfaces.Logger

	// RateLimit is the allowed requests per window per IP; zero disables
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration
}

// Server is the HTTP server for the news intelligence API
type Server struct {
	httpServer *http.Server
	logger     interfaces.Logger
}

// NewServer builds the route table and middleware chain around the handler
func NewServer(cfg Config, handler *handlers.NewsHandler) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/update", handler.HandleUpdate)
	mux.HandleFunc("GET /api/snapshot", handler.HandleSnapshot)
	mux.HandleFunc("GET /api/stats", handler.HandleStats)
	mux.HandleFunc("GET /api/industries", handler.HandleIndustries)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	var chained http.Handler = mux

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		chained = middleware.RateLimitMiddleware(limiter)(chained)
	}

	if cfg.Logger != nil {
		chained = middleware.RequestLoggingMiddleware(cfg.Logger)(chained)
	}

	// CORS wraps the whole chain so preflight requests short-circuit early
	chained = cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler(chained)

	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      chained,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: cfg.Logger,
	}
}

// Start begins serving and blocks until the server stops
func (s *Server) Start() error {
	if s.logger != nil {
		s.logger.Info("HTTP server starting", map[string]interface{}{
			"addr": s.httpServer.Addr,
		})
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
