// Package site hosts the public marketing site and its feature demos.
package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/louisbranch/gameforge/internal/platform/branding"
	platformgrpc "github.com/louisbranch/gameforge/internal/platform/grpc"
	"github.com/louisbranch/gameforge/internal/platform/timeouts"
	siteapp "github.com/louisbranch/gameforge/internal/services/site/app"
	"github.com/louisbranch/gameforge/internal/services/site/content"
	module "github.com/louisbranch/gameforge/internal/services/site/module"
	"github.com/louisbranch/gameforge/internal/services/site/modules"
	"github.com/louisbranch/gameforge/internal/services/site/platform/httpx"
	"github.com/louisbranch/gameforge/internal/services/site/platform/observability"
	"github.com/louisbranch/gameforge/internal/services/site/platform/requestmeta"
	"github.com/louisbranch/gameforge/internal/services/site/routepath"
	sitestatic "github.com/louisbranch/gameforge/internal/services/site/static"
	"github.com/louisbranch/gameforge/internal/services/site/storage"
)

// HealthService is the gRPC health service name reported by the site.
const HealthService = "gameforge.site"

// Config defines startup inputs for the site.
type Config struct {
	HTTPAddr string
	// GRPCAddr enables the gRPC health listener when set.
	GRPCAddr    string
	Brand       branding.Info
	Content     *content.Catalog
	Inbox       storage.InboxStore
	RequestMeta requestmeta.SchemePolicy
	Logger      *log.Logger
	Now         func() time.Time
}

// Server hosts the site HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	health     *platformgrpc.HealthServer
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	catalog := cfg.Content
	if catalog == nil {
		var err error
		catalog, err = content.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("load content: %w", err)
		}
	}
	if cfg.Brand.Name == "" {
		cfg.Brand = branding.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	deps := module.Dependencies{
		Content:     catalog,
		Brand:       cfg.Brand,
		Inbox:       cfg.Inbox,
		RequestMeta: cfg.RequestMeta,
		Logger:      logger,
		Now:         cfg.Now,
	}
	composition, err := siteapp.Composer{}.Compose(siteapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.Default(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(sitestatic.FS))))
	rootMux.Handle("/", composition.Handler)

	middlewares := []httpx.Middleware{
		httpx.RecoverPanic(),
		httpx.RequestID(),
	}
	if cfg.RequestMeta.TrustForwardedProto {
		middlewares = append(middlewares, middleware.RealIP)
	}
	middlewares = append(middlewares,
		observability.RequestLogger(logger),
		middleware.Compress(5),
	)
	return httpx.Chain(rootMux, middlewares...), nil
}

// NewServer validates config and constructs a site server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	server := &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}
	if grpcAddr := strings.TrimSpace(cfg.GRPCAddr); grpcAddr != "" {
		server.health, err = platformgrpc.NewHealthServer(grpcAddr, HealthService)
		if err != nil {
			return nil, fmt.Errorf("start site health listener: %w", err)
		}
	}
	return server, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	healthCtx, stopHealth := context.WithCancel(ctx)
	defer stopHealth()
	healthErr := make(chan error, 1)
	if s.health != nil {
		go func() {
			healthErr <- s.health.Serve(healthCtx)
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("site listening on %s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return s.shutdown()
	case err := <-healthErr:
		if ctx.Err() != nil {
			return s.shutdown()
		}
		_ = s.httpServer.Close()
		if err != nil {
			return err
		}
		return errors.New("site health listener stopped")
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

func (s *Server) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown site http server: %w", err)
	}
	return nil
}

// HealthAddr returns the gRPC health listener address, if enabled.
func (s *Server) HealthAddr() string {
	if s == nil || s.health == nil {
		return ""
	}
	return s.health.Addr()
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Stop()
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
}
