package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/poker-hand-logger/internal/api/middleware"
	"github.com/feral-file/poker-hand-logger/internal/api/rest"
	"github.com/feral-file/poker-hand-logger/internal/api/shared/executor"
	"github.com/feral-file/poker-hand-logger/internal/logger"
	"github.com/feral-file/poker-hand-logger/internal/ratelimit"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  []string
	WSPath       string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   executor.Executor
	limiter    ratelimit.Limiter
	ws         http.HandlerFunc
	httpServer *http.Server
}

// New creates a new API server.
// limiter may be nil to disable rate limiting; ws serves websocket upgrades on Config.WSPath.
func New(cfg Config, exec executor.Executor, limiter ratelimit.Limiter, ws http.HandlerFunc) *Server {
	if cfg.WSPath == "" {
		cfg.WSPath = "/ws"
	}
	return &Server{
		config:   cfg,
		executor: exec,
		limiter:  limiter,
		ws:       ws,
	}
}

// Router builds the gin engine with every route and middleware
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.CORSOrigins))

	var apiMiddlewares []gin.HandlerFunc
	if s.limiter != nil {
		apiMiddlewares = append(apiMiddlewares, middleware.RateLimit(s.limiter))
	}
	rest.SetupRoutes(router, rest.NewHandler(s.executor), apiMiddlewares...)

	if s.ws != nil {
		router.GET(s.config.WSPath, gin.WrapF(s.ws))
	}

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
		zap.String("wsPath", s.config.WSPath),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
