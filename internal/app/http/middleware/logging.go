package middleware

import (
	"log/slog"
	"time"

	"portfolio-api/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each completed request and feeds the request metrics.
func RequestLogger(log *slog.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		status := c.Writer.Status()

		m.ObserveRequest(route, c.Request.Method, status, elapsed)

		log.Info("request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("duration", elapsed),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}
