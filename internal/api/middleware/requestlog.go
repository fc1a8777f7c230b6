package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// healthPaths are probe endpoints whose repeated successes are suppressed
// from the request log. Failures are always logged.
var healthPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context.
//
// Probe endpoints get quieter treatment: a success is logged only when the
// probe's state changes (first success, or recovery after a failure), while
// every failure is logged at WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu        sync.Mutex
		healthyAt = map[string]bool{}
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			attrs := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}

			if _, probe := healthPaths[path]; probe {
				ok := status >= 200 && status < 300
				mu.Lock()
				wasOK := healthyAt[path]
				healthyAt[path] = ok
				mu.Unlock()

				switch {
				case !ok:
					log.Warn("request", attrs...)
				case !wasOK:
					log.Info("request", attrs...)
				}
				return err
			}

			log.Info("request", attrs...)
			return err
		}
	}
}
