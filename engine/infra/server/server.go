// Package server wires the HTTP surface: gin engine, middleware, handlers
// and the background index refresher.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/indiepages/indiepages/engine/infra/monitoring"
	"github.com/indiepages/indiepages/engine/locator"
	"github.com/indiepages/indiepages/engine/redirect"
	"github.com/indiepages/indiepages/engine/shop"
	"github.com/indiepages/indiepages/pkg/config"
	"github.com/indiepages/indiepages/pkg/logger"
)

const defaultSlugCacheSize = 1024

// Server owns the HTTP listener and the subsystem wiring.
type Server struct {
	cfg        *config.Config
	router     *gin.Engine
	httpServer *http.Server
	store      shop.Store
	holder     *locator.Holder
	refresher  *locator.Refresher
	redirects  *redirect.Engine
	metrics    *monitoring.Service
	slugCache  *lru.Cache[int64, string]
	cleanup    []func(context.Context)
}

// NewServer builds the server from the configuration attached to ctx.
func NewServer(ctx context.Context) (*Server, error) {
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return nil, fmt.Errorf("configuration missing from context; attach it with config.ContextWithConfig")
	}
	s := &Server{
		cfg:     cfg,
		holder:  locator.NewHolder(),
		metrics: monitoring.NewService(),
	}
	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s.store = store
	if cleanup != nil {
		s.cleanup = append(s.cleanup, cleanup)
	}
	s.redirects = redirect.New(s.holder)
	s.refresher = locator.NewRefresher(store, s.holder, locator.RefresherConfig{
		CronSpec:      cfg.Refresh.CronSpec,
		RetryAttempts: cfg.Refresh.RetryAttempts,
		RetryBase:     cfg.Refresh.RetryBase,
		OnRebuild:     s.metrics.RecordRebuild,
	})
	cacheSize := cfg.Server.SlugCacheSize
	if cacheSize <= 0 {
		cacheSize = defaultSlugCacheSize
	}
	cache, err := lru.New[int64, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("building slug cache: %w", err)
	}
	s.slugCache = cache
	s.router = s.buildRouter(ctx)
	return s, nil
}

func (s *Server) buildRouter(ctx context.Context) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	log := logger.FromContext(ctx)
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	if len(s.cfg.Server.AllowedOrigins) > 0 {
		router.Use(CORSMiddleware(s.cfg.Server.AllowedOrigins))
	}
	router.Use(RedirectMiddleware(s.redirects, s.metrics))
	s.registerRoutes(router)
	return router
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET(redirect.DirectoryPath, s.handleDirectory)
	router.GET(redirect.ListingBase+"/:token", s.handleListing)
	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// RefreshIndex triggers an immediate index rebuild outside the schedule.
func (s *Server) RefreshIndex(ctx context.Context) error {
	return s.refresher.Refresh(ctx)
}

// Run starts the refresher and serves HTTP until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if err := s.refresher.Start(ctx); err != nil {
		return err
	}
	defer s.refresher.Stop()
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	return s.shutdown(log)
}

func (s *Server) shutdown(log logger.Logger) error {
	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	log.Info("Shutting down HTTP server")
	err := s.httpServer.Shutdown(shutdownCtx)
	for _, fn := range s.cleanup {
		fn(shutdownCtx)
	}
	if err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
