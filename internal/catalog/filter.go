package catalog

import (
	"strings"
	"time"

	"github.com/iliyamo/popcorngo/internal/model"
)

// Filter evaluates search queries and criteria over catalog listings. The
// price band tables and the clock used for date ranges are configuration;
// the zero value is not usable, construct it with NewFilter.
type Filter struct {
	MovieBands PriceBands
	EventBands PriceBands
	Now        func() time.Time
}

// NewFilter returns a Filter using the default band tables and the
// wall clock.
func NewFilter() *Filter {
	return &Filter{
		MovieBands: DefaultMovieBands,
		EventBands: DefaultEventBands,
		Now:        time.Now,
	}
}

// Movies returns the movies matching query and every active criterion, in
// the order of items.
func (f *Filter) Movies(items []model.Movie, query string, c Criteria) []model.Movie {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Movie, 0, len(items))
	for _, m := range items {
		if f.matchMovie(m, q, c) {
			out = append(out, m)
		}
	}
	return out
}

// Events returns the events matching query and every active criterion, in
// the order of items.
func (f *Filter) Events(items []model.Event, query string, c Criteria) []model.Event {
	q := strings.ToLower(strings.TrimSpace(query))
	today := f.Now()
	out := make([]model.Event, 0, len(items))
	for _, e := range items {
		if f.matchEvent(e, q, c, today) {
			out = append(out, e)
		}
	}
	return out
}

func (f *Filter) matchMovie(m model.Movie, q string, c Criteria) bool {
	if q != "" && !contains(m.Title, q) && !anyContains(m.Genres, q) {
		return false
	}
	for d := range c {
		v, ok := c.Active(d)
		if !ok {
			continue
		}
		switch d {
		case DimGenre:
			if !hasTag(m.Genres, v) {
				return false
			}
		case DimLanguage:
			if !hasTag(m.Languages, v) {
				return false
			}
		case DimFormat:
			if !hasTag(m.Formats, v) {
				return false
			}
		case DimPrice:
			b, ok := f.MovieBands.Lookup(v)
			if !ok || !b.Contains(m.Price) {
				return false
			}
		default:
			// dimension does not apply to movies
			return false
		}
	}
	return true
}

func (f *Filter) matchEvent(e model.Event, q string, c Criteria, today time.Time) bool {
	if q != "" && !contains(e.Title, q) && !contains(e.Venue, q) && !contains(e.Category, q) {
		return false
	}
	for d := range c {
		v, ok := c.Active(d)
		if !ok {
			continue
		}
		switch d {
		case DimCategory:
			if !strings.EqualFold(e.Category, v) {
				return false
			}
		case DimCity:
			if !contains(e.Venue, strings.ToLower(v)) {
				return false
			}
		case DimPrice:
			b, ok := f.EventBands.Lookup(v)
			if !ok || !b.Contains(e.Price) {
				return false
			}
		case DimDate:
			if !inDateRange(v, e.Date, today) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// contains reports whether s contains the already lower-cased needle.
func contains(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

func anyContains(tags []string, needle string) bool {
	for _, t := range tags {
		if contains(t, needle) {
			return true
		}
	}
	return false
}

func hasTag(tags []string, v string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, v) {
			return true
		}
	}
	return false
}
