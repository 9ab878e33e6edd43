package middleware

import (
    "time"

    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog"
)

// RequestLogger logs one line per request with its outcome and attaches
// the logger to the request context for zerolog.Ctx. Handler errors are
// passed to c.Error so the logged status is the one sent to the client.
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
    log := logger.With().Str("component", "http").Logger()
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            c.SetRequest(c.Request().WithContext(log.WithContext(c.Request().Context())))
            err := next(c)
            if err != nil {
                c.Error(err)
            }

            req := c.Request()
            res := c.Response()
            ev := log.Info()
            switch {
            case res.Status >= 500:
                ev = log.Error().Err(err)
            case res.Status >= 400:
                ev = log.Warn()
            }
            ev.Str("method", req.Method).
                Str("route", c.Path()).
                Str("uri", req.RequestURI).
                Int("status", res.Status).
                Int64("bytes", res.Size).
                Dur("latency", time.Since(start)).
                Str("ip", c.RealIP()).
                Str("cache", res.Header().Get("X-Cache")).
                Msg("request")
            return nil
        }
    }
}
