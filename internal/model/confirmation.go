package model

import "time"

// Confirmation is the receipt issued when a booking session is confirmed.
// It outlives the session so the ticket can still be fetched afterwards.
//
// Fields:
//  Reference      – human-facing booking reference, e.g. "BK-3F9A1C2E".
//  SessionID      – id of the session that produced it.
//  Movie          – movie title.
//  City, Date     – where and on which day.
//  Theater        – theater name.
//  Showtime       – time-of-day label.
//  Seats          – seat ids sorted by row and number.
//  TotalAmount    – sum of the seat prices.
//  ConvenienceFee – per-seat fee times the number of seats.
//  FinalAmount    – TotalAmount + ConvenienceFee.
//  ConfirmedAt    – UTC time of confirmation.
type Confirmation struct {
    Reference      string    `json:"reference"`
    SessionID      string    `json:"session_id"`
    Movie          string    `json:"movie"`
    City           string    `json:"city"`
    Date           string    `json:"date"`
    Theater        string    `json:"theater"`
    Showtime       string    `json:"showtime"`
    Seats          []string  `json:"seats"`
    TotalAmount    int       `json:"total_amount"`
    ConvenienceFee int       `json:"convenience_fee"`
    FinalAmount    int       `json:"final_amount"`
    ConfirmedAt    time.Time `json:"confirmed_at"`
}
