package main

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kdudkov/gocoord/internal/config"
	"github.com/kdudkov/gocoord/pkg/log"
)

const bodyLimit = 1024 * 1024

type HttpServer struct {
	f    *fiber.App
	addr string
}

func NewHttp(app *App, s *config.Snapshot) *HttpServer {
	srv := &HttpServer{addr: s.APIAddr}

	srv.f = fiber.New(fiber.Config{
		EnablePrintRoutes:     false,
		DisableStartupMessage: true,
		BodyLimit:             bodyLimit,
		ErrorHandler:          errorHandler,
	})

	srv.f.Use(recover.New())
	srv.f.Use(cors.New(cors.Config{AllowMethods: "GET,POST,OPTIONS"}))
	srv.f.Use(log.NewFiberLogger(&log.LoggerConfig{
		Name:          "api",
		Level:         slog.LevelInfo,
		DoMetrics:     s.Metrics,
		LogErrorsOnly: s.LogErrorsOnly,
	}))

	api := srv.f.Group("/api")
	api.Get("/coordinate", getCoordinateHandler(app))
	api.Get("/format", getFormatHandler(app))
	api.Post("/centroid", getCentroidHandler())
	api.Get("/systems", getSystemsHandler())

	if s.Metrics {
		srv.f.Get("/metrics", getMetricsHandler())
	}

	return srv
}

func (h *HttpServer) Address() string {
	return h.addr
}

func (h *HttpServer) Listen() error {
	return h.f.Listen(h.addr)
}

func (h *HttpServer) Shutdown(ctx context.Context) error {
	return h.f.ShutdownWithContext(ctx)
}

func getMetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(
		prometheus.DefaultGatherer,
		promhttp.HandlerOpts{DisableCompression: true},
	))
}
