package service

import (
	"context"

	"github.com/iliyamo/popcorngo/internal/catalog"
	"github.com/iliyamo/popcorngo/internal/model"
	"github.com/iliyamo/popcorngo/internal/repository"
)

// CatalogService answers the browsing pages: filtered movie and event
// listings, their drop-down options, and the theaters and dates offered by
// the booking flow.
type CatalogService struct {
	repo   *repository.CatalogRepo
	filter *catalog.Filter
}

func NewCatalogService(repo *repository.CatalogRepo, filter *catalog.Filter) *CatalogService {
	if filter == nil {
		filter = catalog.NewFilter()
	}
	return &CatalogService{repo: repo, filter: filter}
}

// SearchMovies returns the movies matching query and criteria in catalog
// order.
func (s *CatalogService) SearchMovies(ctx context.Context, query string, c catalog.Criteria) ([]model.Movie, error) {
	movies, err := s.repo.ListMovies(ctx)
	if err != nil {
		return nil, err
	}
	return s.filter.Movies(movies, query, c), nil
}

// SearchEvents returns the events matching query and criteria in catalog
// order.
func (s *CatalogService) SearchEvents(ctx context.Context, query string, c catalog.Criteria) ([]model.Event, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	return s.filter.Events(events, query, c), nil
}

func (s *CatalogService) Movie(ctx context.Context, slug string) (*model.Movie, error) {
	return s.repo.MovieBySlug(ctx, slug)
}

func (s *CatalogService) Theaters(ctx context.Context, city string) ([]model.Theater, error) {
	return s.repo.TheatersByCity(ctx, city)
}

func (s *CatalogService) Cities(ctx context.Context) ([]string, error) {
	return s.repo.Cities(ctx)
}

func (s *CatalogService) Dates(ctx context.Context) ([]model.BookingDate, error) {
	return s.repo.Dates(ctx)
}

// MovieOptions returns the movies page drop-down values.
func (s *CatalogService) MovieOptions(ctx context.Context) catalog.Options {
	return s.filter.MovieOptions()
}

// EventOptions returns the events page drop-down values; the city list
// comes from the catalog.
func (s *CatalogService) EventOptions(ctx context.Context) (catalog.Options, error) {
	cities, err := s.repo.Cities(ctx)
	if err != nil {
		return nil, err
	}
	return s.filter.EventOptions(cities), nil
}
