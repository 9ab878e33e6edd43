package handler // declare the package name; contains HTTP handlers

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
)

// HealthHandler reports liveness for load balancers and monitoring.  Redis
// is optional: when it is down the service still answers, only without
// caching and rate limiting, so the status stays 200.
type HealthHandler struct {
    Redis *redis.Client // nil when Redis was unreachable at startup
}

// Health handles GET /healthz.
func (h *HealthHandler) Health(c echo.Context) error {
    redisState := "disabled"
    if h.Redis != nil {
        ctx, cancel := context.WithTimeout(c.Request().Context(), 500*time.Millisecond)
        defer cancel()
        redisState = "up"
        if err := h.Redis.Ping(ctx).Err(); err != nil {
            redisState = "down"
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"status": "ok", "redis": redisState})
}
