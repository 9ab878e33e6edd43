package repository

import (
	"context"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/iliyamo/popcorngo/internal/model"
)

// CatalogRepo serves the read-only storefront catalog: movies, events,
// theaters per city and the bookable dates. The data is loaded once at
// construction and never changes, so the repo is safe for concurrent use.
// Every accessor returns a copy.
type CatalogRepo struct {
	movies   []model.Movie
	events   []model.Event
	theaters []model.Theater
	cities   []string
	dates    []model.BookingDate
}

// NewCatalogRepo builds the repo from the built-in sample catalog.
func NewCatalogRepo() *CatalogRepo {
	return NewCatalogRepoFrom(sampleMovies(), sampleEvents(), sampleTheaters(), sampleCities, sampleDates)
}

// NewCatalogRepoFrom builds a repo over the given data. Missing ids are
// derived from titles and names with slug.Make.
func NewCatalogRepoFrom(movies []model.Movie, events []model.Event, theaters []model.Theater, cities []string, dates []model.BookingDate) *CatalogRepo {
	r := &CatalogRepo{
		movies:   append([]model.Movie(nil), movies...),
		events:   append([]model.Event(nil), events...),
		theaters: append([]model.Theater(nil), theaters...),
		cities:   append([]string(nil), cities...),
		dates:    append([]model.BookingDate(nil), dates...),
	}
	for i := range r.movies {
		if r.movies[i].ID == "" {
			r.movies[i].ID = slug.Make(r.movies[i].Title)
		}
	}
	for i := range r.events {
		if r.events[i].ID == "" {
			r.events[i].ID = slug.Make(r.events[i].Title)
		}
	}
	for i := range r.theaters {
		if r.theaters[i].ID == "" {
			r.theaters[i].ID = slug.Make(r.theaters[i].Name)
		}
	}
	return r
}

// ListMovies returns every movie in catalog order.
func (r *CatalogRepo) ListMovies(ctx context.Context) ([]model.Movie, error) {
	return append([]model.Movie(nil), r.movies...), nil
}

// MovieBySlug returns the movie whose id is slug. Titles are accepted too
// and are slugified before the lookup.
func (r *CatalogRepo) MovieBySlug(ctx context.Context, s string) (*model.Movie, error) {
	key := slug.Make(s)
	for _, m := range r.movies {
		if m.ID == s || m.ID == key {
			mv := m
			return &mv, nil
		}
	}
	return nil, ErrMovieNotFound
}

// ListEvents returns every event in catalog order.
func (r *CatalogRepo) ListEvents(ctx context.Context) ([]model.Event, error) {
	return append([]model.Event(nil), r.events...), nil
}

// TheatersByCity returns the theaters of city (case-insensitive). An
// unknown city yields an empty list.
func (r *CatalogRepo) TheatersByCity(ctx context.Context, city string) ([]model.Theater, error) {
	out := make([]model.Theater, 0, len(r.theaters))
	for _, t := range r.theaters {
		if strings.EqualFold(t.City, city) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Cities lists the cities the storefront operates in.
func (r *CatalogRepo) Cities(ctx context.Context) ([]string, error) {
	return append([]string(nil), r.cities...), nil
}

// HasCity reports whether city is one of Cities (case-insensitive) and
// returns its canonical spelling.
func (r *CatalogRepo) HasCity(ctx context.Context, city string) (string, bool) {
	for _, c := range r.cities {
		if strings.EqualFold(c, strings.TrimSpace(city)) {
			return c, true
		}
	}
	return "", false
}

// Dates lists the bookable dates.
func (r *CatalogRepo) Dates(ctx context.Context) ([]model.BookingDate, error) {
	return append([]model.BookingDate(nil), r.dates...), nil
}

// HasDate reports whether date (YYYY-MM-DD) is bookable.
func (r *CatalogRepo) HasDate(ctx context.Context, date string) bool {
	for _, d := range r.dates {
		if d.Date == date {
			return true
		}
	}
	return false
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
