package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/aigovhub/lineage/pkg/config"
	"github.com/aigovhub/lineage/pkg/contract"
)

// NewApp builds the fiber application serving the lineage API, mounted both at the root
// and under /api/v1.
func NewApp(log *logrus.Logger, cfg *config.Config, service contract.LineageService) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		BodyLimit:             4 * 1024 * 1024,
		ReadBufferSize:        16384,
		ReadTimeout:           5 * time.Second,
		WriteTimeout:          60 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "lineage/" + cfg.Version,
		DisableStartupMessage: true,
		ErrorHandler:          newErrorHandler(log),
	})

	app.Use(compress.New())
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(logger.New(logger.Config{
		Format: "${status} - ${latency} ${method} ${path}\n",
		Output: log.Writer(),
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/version", func(c *fiber.Ctx) error {
		return c.SendString(cfg.Version)
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	parser, err := NewHTTPRequestParser()
	if err != nil {
		return nil, err
	}

	RegisterLineageServiceRoutes(service, parser, app.Group("/api/v1"))
	RegisterLineageServiceRoutes(service, parser, app)

	return app, nil
}

func newErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var e *contract.Error
		if !errors.As(err, &e) {
			code := contract.ErrorCodeInternalError

			var f *fiber.Error
			if errors.As(err, &f) {
				switch f.Code {
				case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
					code = contract.ErrorCodeBadRequest
				case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
					code = contract.ErrorCodeEndpointNotFound
				}
			}

			e = contract.NewError(code, err.Error())
		}

		var fn func(format string, args ...any)

		switch e.StatusCode() {
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			fn = log.Infof
		case fiber.StatusNotFound:
			fn = log.Debugf
		default:
			fn = log.Errorf
		}

		fn("Error encountered in %s %s: %s", c.Method(), c.Path(), err)

		return c.Status(e.StatusCode()).JSON(e)
	}
}

func launchServer(ctx context.Context, log *logrus.Logger, cfg *config.Config, service contract.LineageService) error {
	app, err := NewApp(log, cfg, service)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout.Duration); err != nil {
			log.Errorf("Failed to gracefully shutdown lineage server: %v", err)
		}
	}()

	log.Infof("Lineage server listening on %s", cfg.Address)

	if err := app.Listen(cfg.Address); err != nil {
		return fmt.Errorf("failed to start lineage server: %w", err)
	}

	return nil
}
