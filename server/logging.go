package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// accessLog logs each request, at warn level when it failed.
func accessLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()
			res := c.Response()

			path := req.URL.Path
			raw := req.URL.RawQuery

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			if raw != "" {
				path = path + "?" + raw
			}

			logger := zap.L().With(
				zap.String("client", c.RealIP()),
				zap.String("method", req.Method),
				zap.String("path", path),
				zap.String("proto", req.Proto),
				zap.Int("status", res.Status),
				zap.String("status_text", http.StatusText(res.Status)),
				zap.Int64("size_bytes", res.Size),
				zap.Int64("latency_ms", latency.Milliseconds()),
				zap.String("user_agent", req.Header.Get("User-Agent")),
			)

			if res.Status >= http.StatusBadRequest {
				logger.Warn("request failed")
			} else {
				logger.Debug("request served")
			}

			return nil
		}
	}
}
