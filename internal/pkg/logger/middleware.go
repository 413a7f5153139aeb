package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EchoMiddleware logs every HTTP request through the Zap logger and, when a
// New Relic transaction is present on the request context, decorates it with
// request attributes.
func EchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			requestID := c.Response().Header().Get("X-Request-ID")

			if txn != nil {
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			fields := []Field{
				zap.String("method", method),
				zap.String("path", path),
				zap.String("client_ip", c.RealIP()),
				zap.String("request_id", requestID),
				zap.Int("status", statusCode),
				zap.Duration("latency", latency),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}

			level := zapcore.InfoLevel
			switch {
			case statusCode >= 500:
				level = zapcore.ErrorLevel
			case statusCode >= 400:
				level = zapcore.WarnLevel
			}
			logger.Check(level, "HTTP request").Write(fields...)

			return err
		}
	}
}
