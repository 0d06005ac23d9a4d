package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/99minutos/tracking-system/internal/api/handler"
	"github.com/99minutos/tracking-system/internal/api/middleware"
	"github.com/99minutos/tracking-system/internal/core/domain"
	"github.com/99minutos/tracking-system/internal/core/ports"
)

// Dependencies are the services and probes the router exposes.
type Dependencies struct {
	Tracking     ports.TrackingService
	Watches      ports.WatchService
	Auth         ports.AuthService
	RefreshQueue handler.RefreshQueue
	Probes       map[string]handler.Pinger
	JWTSecret    string
	Log          zerolog.Logger
	// Metrics receives the HTTP metrics and backs /metrics. Nil means the
	// default Prometheus registry, where the domain metrics live.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Metrics != nil {
		registerer, gatherer = deps.Metrics, deps.Metrics
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "tracking_http",
		Registerer: registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	trackingHandler := handler.NewTrackingHandler(deps.Tracking)
	watchHandler := handler.NewWatchHandler(deps.Watches, deps.RefreshQueue)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Probes)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Versioned API ---
	v1 := e.Group("/v1",
		middleware.Auth(deps.JWTSecret),
		middleware.RBAC(domain.RoleAdmin, domain.RoleClient),
	)

	v1.POST("/trackings/batch", trackingHandler.Batch)
	v1.GET("/trackings/:tracking_number", trackingHandler.Get)

	v1.POST("/watches", watchHandler.Create)
	v1.GET("/watches", watchHandler.List)
	v1.GET("/watches/:id", watchHandler.Get)
	v1.GET("/watches/:id/snapshot", watchHandler.Snapshot)
	v1.DELETE("/watches/:id", watchHandler.Delete)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
