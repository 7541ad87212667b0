package middleware

import (
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/logger"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs one line per request with zerolog. Handlers get a logger tagged with
// the request id through logger.FromContext. Handler errors are passed to echo's error
// handler first so the logged status is the one sent to the client.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqLog := log.With().Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).Logger()
			c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context(), reqLog)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			var evt *zerolog.Event
			switch {
			case res.Status >= 500:
				evt = reqLog.Error().Err(err)
			case res.Status >= 400:
				evt = reqLog.Warn()
			default:
				evt = reqLog.Info()
			}

			evt.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Msg("request")

			return nil
		}
	}
}
