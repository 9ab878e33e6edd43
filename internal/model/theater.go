package model

// Theater is a cinema that screens the movie being booked.  Theaters are
// grouped by city and are read-only for the whole booking session.
//
// Fields:
//  ID        – stable identifier.
//  Name      – display name, e.g. "PVR Phoenix Mills".
//  City      – city the theater belongs to.
//  Location  – neighbourhood/address line.
//  Distance  – distance label shown to the user ("2.5 km").
//  Showtimes – ordered time-of-day labels ("10:00 AM", "1:30 PM").
//  Price     – base seat price advertised on the theater card.
//  Amenities – amenity tags (IMAX, Dolby Atmos, ...).
type Theater struct {
    ID        string   `json:"id"`
    Name      string   `json:"name"`
    City      string   `json:"city"`
    Location  string   `json:"location"`
    Distance  string   `json:"distance"`
    Showtimes []string `json:"showtimes"`
    Price     int      `json:"price"`
    Amenities []string `json:"amenities"`
}

// HasShowtime reports whether st is one of the theater's showtimes.
func (t Theater) HasShowtime(st string) bool {
    for _, s := range t.Showtimes {
        if s == st {
            return true
        }
    }
    return false
}

// BookingDate is a selectable day in the booking flow.
type BookingDate struct {
    Date  string `json:"date"`  // YYYY-MM-DD
    Label string `json:"label"` // Today, Tomorrow, Sat 17 Feb ...
}
