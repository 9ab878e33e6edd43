// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// BookingConfirmedQueue is the durable queue confirmed bookings are
// published to. The default exchange routes by queue name.
const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent is published when a booking session is confirmed.
// It carries enough information for downstream consumers to log, notify or
// trigger analytics without asking the storefront for the booking.
type BookingConfirmedEvent struct {
    Reference      string   `json:"reference"`
    SessionID      string   `json:"session_id"`
    MovieTitle     string   `json:"movie_title"`
    City           string   `json:"city"`
    Date           string   `json:"date"`
    TheaterName    string   `json:"theater_name"`
    Showtime       string   `json:"showtime"`
    SeatLabels     []string `json:"seats"`
    TotalAmount    int      `json:"total_amount"`
    ConvenienceFee int      `json:"convenience_fee"`
    FinalAmount    int      `json:"final_amount"`
    ConfirmedAt    string   `json:"confirmed_at"`
}
