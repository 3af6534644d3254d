// Package api serves the reporting HTTP API and the Prometheus metrics
// endpoint.
package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tphakala/vocalization-go/internal/conf"
	"github.com/tphakala/vocalization-go/internal/datastore"
	"github.com/tphakala/vocalization-go/internal/logger"
)

var (
	apiLogger  logger.Logger
	loggerOnce sync.Once
)

func getLogger() logger.Logger {
	loggerOnce.Do(func() {
		apiLogger = logger.Global().Module("api")
	})
	return apiLogger
}

// ModelInfo reports the available model inventory to the stats endpoint.
type ModelInfo interface {
	ModelCount() int
	AvailableSpecies() []string
}

// Server is the reporting HTTP server.
type Server struct {
	echo     *echo.Echo
	settings *conf.Settings
	store    datastore.Interface
	models   ModelInfo
	registry *prometheus.Registry
	log      logger.Logger
}

// New creates the HTTP server and registers all routes. registry may be nil,
// in which case no metrics endpoint is exposed.
func New(settings *conf.Settings, store datastore.Interface, models ModelInfo, registry *prometheus.Registry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:     e,
		settings: settings,
		store:    store,
		models:   models,
		registry: registry,
		log:      getLogger(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	v1 := s.echo.Group("/api/v1")
	v1.GET("/health", s.handleHealth)
	v1.GET("/vocalizations", s.handleVocalizations)
	v1.GET("/stats", s.handleStats)
	v1.GET("/charts", s.handleCharts)
	v1.POST("/feedback", s.handleFeedback)

	if s.registry != nil {
		handler := promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
		s.echo.GET("/metrics", echo.WrapHandler(handler))
	}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("HTTP server starting", logger.String("address", s.settings.Web.Address))
	err := s.echo.Start(s.settings.Web.Address)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
