package log

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const HeaderRequestID = "X-Request-Id"

var (
	httpRequestsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gocoord",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "The latency of the HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"api"})

	httpRequestsCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gocoord",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of the HTTP requests.",
	}, []string{"api", "path", "method", "code"})
)

type LoggerConfig struct {
	Name          string
	Level         slog.Level
	DoMetrics     bool
	LogErrorsOnly bool
}

// NewFiberLogger logs every request and tags it with a request id, taken from
// the X-Request-Id header when the client sent one.
func NewFiberLogger(conf *LoggerConfig) fiber.Handler {
	if conf == nil {
		conf = &LoggerConfig{Name: "http", Level: slog.LevelInfo}
	}

	logger := slog.Default().With(slog.String("logger", conf.Name))

	return func(c *fiber.Ctx) error {
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Locals("request_id", reqID)
		c.Set(HeaderRequestID, reqID)

		start := time.Now()
		chainErr := c.Next()
		wt := time.Since(start)

		// the error handler has not run yet, take the status from the error
		status := c.Response().StatusCode()

		var fe *fiber.Error
		if chainErr != nil {
			status = fiber.StatusInternalServerError

			if errors.As(chainErr, &fe) {
				status = fe.Code
			}
		}

		if conf.DoMetrics {
			metrics(conf.Name, c, status, wt)
		}

		msg := fmt.Sprintf("%d %s %s %s", status, c.Method(), c.Path(), c.Request().URI().QueryArgs().String())
		l := logger

		if chainErr != nil {
			l = l.With(slog.Any("error", chainErr))
		}

		attrs := []any{
			slog.String("client", c.IP()+":"+c.Port()),
			slog.Int("status", status),
			slog.String("request_id", reqID),
			slog.Int64("ms", wt.Milliseconds()),
		}

		if conf.LogErrorsOnly {
			switch {
			case status < 300:
				l.Debug(msg, attrs...)
			case status < 400:
				l.Info(msg, attrs...)
			default:
				l.Warn(msg, attrs...)
			}
		} else {
			l.Log(c.UserContext(), conf.Level, msg, attrs...)
		}

		return chainErr
	}
}

// RequestID returns the id NewFiberLogger gave to the request.
func RequestID(c *fiber.Ctx) string {
	if s, ok := c.Locals("request_id").(string); ok {
		return s
	}

	return ""
}

func metrics(api string, ctx *fiber.Ctx, status int, t time.Duration) {
	httpRequestsDuration.With(prometheus.Labels{"api": api}).Observe(t.Seconds())

	httpRequestsCount.With(prometheus.Labels{
		"api":    api,
		"path":   ctx.Route().Path,
		"method": ctx.Method(),
		"code":   strconv.Itoa(status),
	}).Inc()
}
