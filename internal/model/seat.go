package model

// SeatStatus is the state of a single seat in a session's seat map.
type SeatStatus string

const (
    // SeatAvailable seats may be selected.
    SeatAvailable SeatStatus = "available"
    // SeatBooked seats were taken before the session started and never
    // become selectable.
    SeatBooked SeatStatus = "booked"
    // SeatSelected is the only status the client can set.
    SeatSelected SeatStatus = "selected"
)

// Seat describes one seat of the seat map.
//
// Fields:
//  ID     – row letter followed by the seat number, e.g. "F7".
//  Row    – row letter (A..H).
//  Number – 1-based position within the row.
//  Price  – tier price derived from the row.
//  Status – available, booked or selected.
type Seat struct {
    ID     string     `json:"id"`
    Row    string     `json:"row"`
    Number int        `json:"number"`
    Price  int        `json:"price"`
    Status SeatStatus `json:"status"`
}
