package config

import "time"

// BookingConfig holds the seat map and pricing rules of the booking flow.
type BookingConfig struct {
    Tier1Price     int           // rows A-C
    Tier2Price     int           // rows D-F
    Tier3Price     int           // rows G-H
    ConvenienceFee int           // per selected seat
    MaxSeats       int           // seats per booking
    BookedRatio    float64       // share of seats pre-booked when a session starts
    SessionTTL     time.Duration // idle time after which a session is discarded
}

func LoadBookingConfig() BookingConfig {
    c := BookingConfig{
        Tier1Price:     envInt("BOOKING_TIER1_PRICE", 300),
        Tier2Price:     envInt("BOOKING_TIER2_PRICE", 250),
        Tier3Price:     envInt("BOOKING_TIER3_PRICE", 200),
        ConvenienceFee: envInt("BOOKING_CONVENIENCE_FEE", 20),
        MaxSeats:       envInt("BOOKING_MAX_SEATS", 6),
        BookedRatio:    envFloat("BOOKING_BOOKED_RATIO", 0.3),
        SessionTTL:     envDur("BOOKING_SESSION_TTL", 30*time.Minute),
    }
    if c.MaxSeats < 1 { c.MaxSeats = 1 }
    if c.ConvenienceFee < 0 { c.ConvenienceFee = 0 }
    if c.BookedRatio < 0 { c.BookedRatio = 0 }
    if c.BookedRatio > 1 { c.BookedRatio = 1 }
    return c
}
