// Package server assembles the Fiber application: middleware chain,
// operational routes and the public API routes.
package server

import (
	"fmt"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"adgenie/docs"
	"adgenie/internal/config"
	handlers "adgenie/internal/http/handler"
	"adgenie/internal/http/middleware"
	"adgenie/internal/service"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Config          *config.AppConfig
	Logger          *zap.Logger
	Registry        *prometheus.Registry
	CampaignService service.CampaignService
}

// New builds the Fiber app with all middleware and routes registered.
func New(d Deps) (*fiber.App, error) {
	cfg := d.Config

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		ErrorHandler:          handlers.ErrorHandler(),
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           cfg.Server.IdleTimeout,
		DisableStartupMessage: true,
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(d.Registry)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	app.Use(middleware.RequestID())
	app.Use(middleware.CORS(cfg.CORS))
	app.Use(otelfiber.Middleware(
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			return c.Path() == middleware.MetricsPath
		}),
	))
	app.Use(promMiddleware.Handler())
	app.Use(middleware.Logger(d.Logger))
	// Must stay innermost: Logger and the metrics see a recovered panic as a 500.
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			d.Logger.Error("panic_recovered",
				zap.String("request_id", middleware.RequestIDFromCtx(c)),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Any("panic", e),
				zap.Stack("stack"),
			)
		},
	}))

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(
		promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{Registry: d.Registry}),
	))

	if cfg.SwaggerEnabled {
		// An empty host makes Swagger UI target the host and scheme it was served from.
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	handlers.RegisterRoutes(app, d.CampaignService)

	return app, nil
}
