package middleware

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"lifeplan/pkg/logger"
)

// RequestLog writes one line per request through the app logger.
func RequestLog() echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			kv := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if uid := UserID(c); uid != "" {
				kv = append(kv, "user", uid)
			}
			switch {
			case v.Error != nil:
				logger.Error("request", append(kv, "err", v.Error)...)
			case v.Status >= 500:
				logger.Warn("request", kv...)
			default:
				logger.Debug("request", kv...)
			}
			return nil
		},
	})
}
