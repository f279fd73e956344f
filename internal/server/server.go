// Package server exposes the benefits engine over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rallyforge/benefits-engine/internal/calculation"
	"github.com/rallyforge/benefits-engine/internal/config"
	_ "github.com/rallyforge/benefits-engine/internal/docs" // swagger docs
	"github.com/rallyforge/benefits-engine/internal/store"
)

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	engine  *calculation.Engine
	parser  *config.InputParser
	history *store.History
	log     *logrus.Logger
	router  *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithEngine sets the engine used by every handler.
func WithEngine(e *calculation.Engine) Option {
	return func(s *Server) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithHistory enables the history endpoints and saving runs.
func WithHistory(h *store.History) Option {
	return func(s *Server) { s.history = h }
}

// WithLogger sets the request and application logger.
func WithLogger(l *logrus.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// New builds a server and its routes.
func New(opts ...Option) *Server {
	s := &Server{
		engine: calculation.NewEngine(),
		parser: config.NewInputParser(),
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(s.log))

	router.GET("/health", s.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	v1.POST("/ratings/combine", s.CombineRatings)
	v1.POST("/projections/compound", s.CompoundProjection)
	v1.POST("/projections/income", s.IncomeProjection)
	v1.POST("/compensation", s.Compensation)
	v1.POST("/crsc/classify", s.ClassifyCRSC)
	v1.POST("/offsets", s.Offset)
	v1.POST("/pension", s.Pension)
	v1.POST("/budget", s.Budget)
	v1.POST("/evidence/confidence", s.EvidenceConfidence)
	v1.POST("/scenarios/run", s.RunScenarios)

	if s.history != nil {
		v1.GET("/history", s.ListHistory)
		v1.GET("/history/:id", s.GetHistory)
	}
	return router
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down,
// giving in-flight requests up to shutdownTimeout to finish.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("Server exited")
	return nil
}
