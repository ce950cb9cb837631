package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zctpy/paiban/pkg/ai"
	"github.com/zctpy/paiban/pkg/config"
	"github.com/zctpy/paiban/pkg/log"
	"github.com/zctpy/paiban/pkg/theme"
)

const (
	PingURL   = "/ping"
	ThemesURL = "/themes"
	RenderURL = "/render"
	AIURL     = "/ai"
)

type Service struct {
	config      config.Config
	themes      *theme.Catalog
	transformer ai.Transformer
	log         log.Logger
	server      *http.Server
	router      *gin.Engine
}

// NewService returns a service rendering with the themes of catalog.
// A nil transformer disables the AI endpoint.
func NewService(cfg config.Config, catalog *theme.Catalog, transformer ai.Transformer, logger log.Logger) *Service {
	if catalog == nil {
		catalog = theme.Builtin()
	}
	if logger == nil {
		logger = log.NewEmptyLog()
	}
	service := &Service{
		config:      cfg,
		themes:      catalog,
		transformer: transformer,
		log:         logger,
	}

	server := &http.Server{
		Addr: cfg.HTTPServerAddress,
		// caps how long a client can take to send the headers
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// AI calls take a while
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	service.setupRouter(server)
	service.server = server

	return service
}

// Handler exposes the router, mostly for tests
func (service *Service) Handler() http.Handler {
	return service.router
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
