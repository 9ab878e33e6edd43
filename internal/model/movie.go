package model

// Movie is a catalog entry on the movies page.  Movies are loaded once
// from the catalog repository and never modified afterwards.
//
// Fields:
//  ID        – slug derived from the title (e.g. "the-batman").
//  Title     – display title.
//  Genres    – genre tags in display order (Action, Drama, ...).
//  Rating    – audience rating out of 10.
//  Price     – starting ticket price in rupees.
//  Languages – language tags the movie is screened in.
//  Formats   – screening formats (2D, 3D, IMAX, 4DX).
//  Image     – poster URL.
type Movie struct {
    ID        string   `json:"id"`
    Title     string   `json:"title"`
    Genres    []string `json:"genres"`
    Rating    float64  `json:"rating"`
    Price     int      `json:"price"`
    Languages []string `json:"languages"`
    Formats   []string `json:"formats"`
    Image     string   `json:"image"`
}
