package middleware

// identity.go defines helpers shared across middleware files. Booking
// requests carry their session id in the :id path parameter; requests
// outside a booking are attributed to "guest".

import (
    "github.com/labstack/echo/v4"
)

// sessionID returns the booking session the request targets, or "guest".
func sessionID(c echo.Context) string {
    if v := c.Param("id"); v != "" {
        return v
    }
    if v := c.Request().Header.Get("X-Booking-Session"); v != "" {
        return v
    }
    return "guest"
}
