package model

import "time"

// Event is a non-movie catalog entry (concert, comedy show, workshop ...).
//
// Fields:
//  ID       – slug derived from the title.
//  Title    – display title.
//  Category – single category name, e.g. "Comedy Shows".
//  Venue    – venue with city, e.g. "NSCI Stadium, Mumbai".
//  Date     – day of the event (time of day is not tracked).
//  Price    – ticket price in rupees; zero means a free event.
//  Image    – banner URL.
type Event struct {
    ID       string    `json:"id"`
    Title    string    `json:"title"`
    Category string    `json:"category"`
    Venue    string    `json:"venue"`
    Date     time.Time `json:"date"`
    Price    int       `json:"price"`
    Image    string    `json:"image"`
}
