package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/popcorngo/internal/booking"
	"github.com/iliyamo/popcorngo/internal/model"
	"github.com/iliyamo/popcorngo/internal/service"
	"github.com/iliyamo/popcorngo/internal/utils"
)

const ticketQRSize = 256

// BookingHandler exposes the booking flow. The session id returned by
// Start is the only credential; every other route takes it as :id.
type BookingHandler struct {
	Svc *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

type startBookingRequest struct {
	Movie string `json:"movie" validate:"required"`
	City  string `json:"city" validate:"omitempty,max=64"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type selectTheaterRequest struct {
	TheaterID string `json:"theater_id" validate:"required"`
	Showtime  string `json:"showtime" validate:"required"`
}

// bindAndValidate decodes the body into req and runs the echo validator.
// It writes the 400 response itself and reports whether the caller may
// continue.
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		body := echo.Map{"error": "validation failed"}
		if details := validationDetails(err); details != nil {
			body["fields"] = details
		}
		return false, c.JSON(http.StatusBadRequest, body)
	}
	return true, nil
}

// bookingError translates service errors into HTTP responses.
func bookingError(c echo.Context, err error) error {
	switch {
	case service.IsNotFound(err):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidSelection):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// Start handles POST /v1/bookings.
func (h *BookingHandler) Start(c echo.Context) error {
	var req startBookingRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.Svc.Start(c.Request().Context(), req.Movie, req.City, req.Date)
	if err != nil {
		return bookingError(c, err)
	}
	c.Response().Header().Set(echo.HeaderLocation, "/v1/bookings/"+v.ID)
	return c.JSON(http.StatusCreated, v)
}

// Get handles GET /v1/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	v, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

type seatRow struct {
	Row   string       `json:"row"`
	Price int          `json:"price"`
	Seats []model.Seat `json:"seats"`
}

// Seats handles GET /v1/bookings/:id/seats. Seats are grouped by row in
// display order.
func (h *BookingHandler) Seats(c echo.Context) error {
	seats, err := h.Svc.Seats(c.Request().Context(), c.Param("id"))
	if err != nil {
		return bookingError(c, err)
	}
	rows := make([]seatRow, 0, 8)
	for _, s := range seats {
		if n := len(rows); n == 0 || rows[n-1].Row != s.Row {
			rows = append(rows, seatRow{Row: s.Row, Price: s.Price})
		}
		rows[len(rows)-1].Seats = append(rows[len(rows)-1].Seats, s)
	}
	return c.JSON(http.StatusOK, echo.Map{"rows": rows})
}

// SelectTheater handles POST /v1/bookings/:id/theater.
func (h *BookingHandler) SelectTheater(c echo.Context) error {
	var req selectTheaterRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.Svc.SelectTheater(c.Request().Context(), c.Param("id"), req.TheaterID, req.Showtime)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// ChangeTheater handles DELETE /v1/bookings/:id/theater.
func (h *BookingHandler) ChangeTheater(c echo.Context) error {
	v, err := h.Svc.ChangeTheater(c.Request().Context(), c.Param("id"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// ToggleSeat handles POST /v1/bookings/:id/seats/:seat. An ignored toggle
// is still a 200; "changed" is false and "reason" says why.
func (h *BookingHandler) ToggleSeat(c echo.Context) error {
	v, outcome, err := h.Svc.ToggleSeat(c.Request().Context(), c.Param("id"), c.Param("seat"))
	if err != nil {
		return bookingError(c, err)
	}
	resp := echo.Map{"changed": outcome.Changed(), "session": v}
	if !outcome.Changed() {
		resp["reason"] = string(outcome)
	}
	return c.JSON(http.StatusOK, resp)
}

// Payment handles POST /v1/bookings/:id/payment.
func (h *BookingHandler) Payment(c echo.Context) error {
	v, err := h.Svc.ProceedToPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// Confirm handles POST /v1/bookings/:id/confirm.
func (h *BookingHandler) Confirm(c echo.Context) error {
	conf, err := h.Svc.Confirm(c.Request().Context(), c.Param("id"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, conf)
}

// Confirmation handles GET /v1/bookings/:id/confirmation.
func (h *BookingHandler) Confirmation(c echo.Context) error {
	conf, err := h.Svc.Ticket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, conf)
}

// Ticket handles GET /v1/bookings/:id/ticket.png and renders the
// confirmation as a QR code.
func (h *BookingHandler) Ticket(c echo.Context) error {
	conf, err := h.Svc.Ticket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return bookingError(c, err)
	}
	png, err := utils.GenerateQRCode(ticketPayload(conf), ticketQRSize)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "ticket rendering failed"})
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func ticketPayload(conf *model.Confirmation) string {
	return fmt.Sprintf("POPCORNGO|%s|%s|%s|%s %s|%s",
		conf.Reference, conf.Movie, conf.Theater, conf.Date, conf.Showtime, strings.Join(conf.Seats, ","))
}

// Discard handles DELETE /v1/bookings/:id.
func (h *BookingHandler) Discard(c echo.Context) error {
	if err := h.Svc.Discard(c.Request().Context(), c.Param("id")); err != nil {
		return bookingError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
