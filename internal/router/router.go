package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iliyamo/popcorngo/internal/config"
	"github.com/iliyamo/popcorngo/internal/handler"
	"github.com/iliyamo/popcorngo/internal/middleware"
)

// Deps bundles what the routes need. Redis may be nil, in which case the
// response cache and the rate limiter pass every request through.
type Deps struct {
	Logger    zerolog.Logger
	Redis     *redis.Client
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
	Catalog   *handler.CatalogHandler
	Booking   *handler.BookingHandler
}

// New returns an Echo instance with every route registered.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()

	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomw.Recover())

	RegisterRoutes(e, d.Redis)
	RegisterCatalog(e, d.Catalog, middleware.NewRedisCache(d.Cache, d.Redis))
	RegisterBooking(e, d.Booking, middleware.NewTokenBucket(d.RateLimit, d.Redis))
	return e
}

// RegisterRoutes registers operational routes. Currently it exposes only
// a health check.
func RegisterRoutes(e *echo.Echo, rdb *redis.Client) {
	h := &handler.HealthHandler{Redis: rdb}
	e.GET("/healthz", h.Health)
}

// RegisterCatalog registers the read-only browsing endpoints under /v1.
// Their responses depend on the route, the query string and, for date
// filters, the current day, so they all sit behind the response cache.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", cache)
	g.GET("/cities", h.Cities)
	g.GET("/dates", h.Dates)
	g.GET("/theaters", h.Theaters)
	g.GET("/movies", h.Movies)
	g.GET("/movies/:slug", h.Movie)
	g.GET("/events", h.Events)
	g.GET("/filters/movies", h.MovieFilters)
	g.GET("/filters/events", h.EventFilters)
}

// RegisterBooking registers the booking flow under /v1/bookings. Reads are
// not limited; every mutation goes through the token bucket.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/bookings")
	g.POST("", h.Start, limit)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Discard, limit)
	g.GET("/:id/seats", h.Seats)
	g.POST("/:id/theater", h.SelectTheater, limit)
	g.DELETE("/:id/theater", h.ChangeTheater, limit)
	g.POST("/:id/seats/:seat", h.ToggleSeat, limit)
	g.POST("/:id/payment", h.Payment, limit)
	g.POST("/:id/confirm", h.Confirm, limit)
	g.GET("/:id/confirmation", h.Confirmation)
	g.GET("/:id/ticket.png", h.Ticket)
}
