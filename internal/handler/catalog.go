package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/popcorngo/internal/catalog"
	"github.com/iliyamo/popcorngo/internal/service"
)

// CatalogHandler serves the browsing endpoints. They are unauthenticated
// and side-effect free, so their responses are cacheable.
type CatalogHandler struct {
	Svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// criteriaFromQuery reads the drop-down selections from the query string.
// Price and date values may be either option keys or their display labels.
func criteriaFromQuery(c echo.Context, dims ...catalog.Dimension) catalog.Criteria {
	out := catalog.Criteria{}
	for _, d := range dims {
		v := c.QueryParam(string(d))
		if v == "" {
			continue
		}
		if (d == catalog.DimPrice || d == catalog.DimDate) && v != catalog.All {
			v = catalog.NormalizeOptionKey(v)
		}
		out[d] = v
	}
	return out
}

// Movies handles GET /v1/movies?q=&genre=&language=&format=&price=.
func (h *CatalogHandler) Movies(c echo.Context) error {
	crit := criteriaFromQuery(c, catalog.DimGenre, catalog.DimLanguage, catalog.DimFormat, catalog.DimPrice)
	items, err := h.Svc.SearchMovies(c.Request().Context(), c.QueryParam("q"), crit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Movie handles GET /v1/movies/:slug.
func (h *CatalogHandler) Movie(c echo.Context) error {
	m, err := h.Svc.Movie(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if service.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog unavailable"})
	}
	return c.JSON(http.StatusOK, m)
}

// Events handles GET /v1/events?q=&category=&city=&price=&date=.
func (h *CatalogHandler) Events(c echo.Context) error {
	crit := criteriaFromQuery(c, catalog.DimCategory, catalog.DimCity, catalog.DimPrice, catalog.DimDate)
	items, err := h.Svc.SearchEvents(c.Request().Context(), c.QueryParam("q"), crit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// MovieFilters handles GET /v1/filters/movies.
func (h *CatalogHandler) MovieFilters(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"options":     h.Svc.MovieOptions(c.Request().Context()),
		"price_bands": catalog.DefaultMovieBands,
	})
}

// EventFilters handles GET /v1/filters/events.
func (h *CatalogHandler) EventFilters(c echo.Context) error {
	opts, err := h.Svc.EventOptions(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"options":     opts,
		"price_bands": catalog.DefaultEventBands,
	})
}

// Cities handles GET /v1/cities.
func (h *CatalogHandler) Cities(c echo.Context) error {
	cities, err := h.Svc.Cities(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": cities})
}

// Dates handles GET /v1/dates.
func (h *CatalogHandler) Dates(c echo.Context) error {
	dates, err := h.Svc.Dates(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": dates})
}

// Theaters handles GET /v1/theaters?city=.
func (h *CatalogHandler) Theaters(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "city is required"})
	}
	items, err := h.Svc.Theaters(c.Request().Context(), city)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
