package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/iliyamo/popcorngo/internal/booking"
	"github.com/iliyamo/popcorngo/internal/model"
	q "github.com/iliyamo/popcorngo/internal/queue"
	"github.com/iliyamo/popcorngo/internal/repository"
)

// BookingConfig carries the seat map layout and per-booking rules every
// new session is created with.
type BookingConfig struct {
	Layout booking.Layout
	Rules  booking.Rules
	// NewRand seeds the seat map of each session; nil uses the clock.
	NewRand func() booking.RandSource
}

// SessionView is the client-facing snapshot of a booking session.
type SessionView struct {
	ID            string          `json:"id"`
	Movie         string          `json:"movie"`
	City          string          `json:"city"`
	Date          string          `json:"date"`
	Step          booking.Step    `json:"step"`
	Theater       *model.Theater  `json:"theater,omitempty"`
	Showtime      string          `json:"showtime,omitempty"`
	SelectedSeats []string        `json:"selected_seats"`
	Totals        booking.Totals  `json:"totals"`
	MaxSeats      int             `json:"max_seats"`
	Theaters      []model.Theater `json:"theaters,omitempty"`
}

// BookingService drives booking sessions stored in a SessionRepo. Each
// call loads the session, applies one operation under the session's lock
// and returns a fresh view.
type BookingService struct {
	catalog   *repository.CatalogRepo
	sessions  *repository.SessionRepo
	publisher EventPublisher
	cfg       BookingConfig
	log       zerolog.Logger

	newRand func() booking.RandSource
	now     func() time.Time
}

func NewBookingService(catalog *repository.CatalogRepo, sessions *repository.SessionRepo, publisher EventPublisher, cfg BookingConfig, logger zerolog.Logger) *BookingService {
	newRand := cfg.NewRand
	if newRand == nil {
		newRand = clockRand
	}
	return &BookingService{
		catalog:   catalog,
		sessions:  sessions,
		publisher: publisher,
		cfg:       cfg,
		log:       logger.With().Str("component", "booking").Logger(),
		newRand:   newRand,
		now:       time.Now,
	}
}

func clockRand() booking.RandSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func view(id string, s *booking.Session) *SessionView {
	v := &SessionView{
		ID:            id,
		Movie:         s.Movie,
		City:          s.City,
		Date:          s.Date,
		Step:          s.Step(),
		Theater:       s.Theater(),
		Showtime:      s.Showtime(),
		SelectedSeats: s.SelectedSeatIDs(),
		Totals:        s.Totals(),
		MaxSeats:      s.Rules().MaxSeats,
	}
	if v.Step == booking.StepTheater {
		v.Theaters = s.Theaters()
	}
	return v
}

// Start opens a session for the movie identified by movieSlug. An empty
// city or date selects the first one offered by the catalog.
func (s *BookingService) Start(ctx context.Context, movieSlug, city, date string) (*SessionView, error) {
	movie, err := s.catalog.MovieBySlug(ctx, movieSlug)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(city) == "" {
		cities, err := s.catalog.Cities(ctx)
		if err != nil {
			return nil, err
		}
		if len(cities) > 0 {
			city = cities[0]
		}
	}
	canonical, ok := s.catalog.HasCity(ctx, city)
	if !ok {
		return nil, fmt.Errorf("city %q: %w", city, booking.ErrInvalidSelection)
	}

	if date == "" {
		dates, err := s.catalog.Dates(ctx)
		if err != nil {
			return nil, err
		}
		if len(dates) > 0 {
			date = dates[0].Date
		}
	}
	if !s.catalog.HasDate(ctx, date) {
		return nil, fmt.Errorf("date %q: %w", date, booking.ErrInvalidSelection)
	}

	theaters, err := s.catalog.TheatersByCity(ctx, canonical)
	if err != nil {
		return nil, err
	}
	if len(theaters) == 0 {
		return nil, fmt.Errorf("no theaters in %s: %w", canonical, booking.ErrInvalidSelection)
	}

	sess := booking.NewSession(movie.Title, canonical, date, theaters, s.cfg.Layout, s.newRand(), s.cfg.Rules)
	id, err := s.sessions.Create(ctx, sess)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("session_id", id).Str("movie", movie.Title).Str("city", canonical).Str("date", date).Msg("booking session started")
	return view(id, sess), nil
}

// apply runs fn under the session lock and returns the resulting view.
func (s *BookingService) apply(ctx context.Context, id string, fn func(*booking.Session) error) (*SessionView, error) {
	var v *SessionView
	err := s.sessions.With(ctx, id, func(sess *booking.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		v = view(id, sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*SessionView, error) {
	return s.apply(ctx, id, func(*booking.Session) error { return nil })
}

// Seats returns the session's seat map.
func (s *BookingService) Seats(ctx context.Context, id string) ([]model.Seat, error) {
	var seats []model.Seat
	err := s.sessions.With(ctx, id, func(sess *booking.Session) error {
		seats = sess.Seats()
		return nil
	})
	return seats, err
}

func (s *BookingService) SelectTheater(ctx context.Context, id, theaterID, showtime string) (*SessionView, error) {
	return s.apply(ctx, id, func(sess *booking.Session) error {
		return sess.SelectTheaterAndShowtime(theaterID, showtime)
	})
}

// ToggleSeat flips seatID and returns what happened to it. An ignored
// click (booked seat or seat cap reached) is not an error.
func (s *BookingService) ToggleSeat(ctx context.Context, id, seatID string) (*SessionView, booking.ToggleOutcome, error) {
	var outcome booking.ToggleOutcome
	v, err := s.apply(ctx, id, func(sess *booking.Session) error {
		var err error
		outcome, err = sess.Toggle(strings.ToUpper(strings.TrimSpace(seatID)))
		return err
	})
	return v, outcome, err
}

func (s *BookingService) ChangeTheater(ctx context.Context, id string) (*SessionView, error) {
	return s.apply(ctx, id, func(sess *booking.Session) error { return sess.ChangeTheater() })
}

func (s *BookingService) ProceedToPayment(ctx context.Context, id string) (*SessionView, error) {
	return s.apply(ctx, id, func(sess *booking.Session) error { return sess.ProceedToPayment() })
}

// Confirm completes a session in the payment step. The session is replaced
// by its confirmation and a booking.confirmed event is published; publish
// failures are logged and do not fail the confirmation.
func (s *BookingService) Confirm(ctx context.Context, id string) (*model.Confirmation, error) {
	var conf model.Confirmation
	err := s.sessions.With(ctx, id, func(sess *booking.Session) error {
		if sess.Step() != booking.StepPayment {
			return fmt.Errorf("confirm in step %s: %w", sess.Step(), booking.ErrInvalidTransition)
		}
		totals := sess.Totals()
		conf = model.Confirmation{
			Reference:      newReference(),
			SessionID:      id,
			Movie:          sess.Movie,
			City:           sess.City,
			Date:           sess.Date,
			Theater:        sess.Theater().Name,
			Showtime:       sess.Showtime(),
			Seats:          sess.SelectedSeatIDs(),
			TotalAmount:    totals.TotalAmount,
			ConvenienceFee: totals.ConvenienceFee,
			FinalAmount:    totals.FinalAmount,
			ConfirmedAt:    s.now().UTC(),
		}
		return s.sessions.Complete(ctx, id, conf)
	})
	if err != nil {
		return nil, err
	}

	log := s.log.With().Str("session_id", id).Str("reference", conf.Reference).Logger()
	log.Info().Int("final_amount", conf.FinalAmount).Strs("seats", conf.Seats).Msg("booking confirmed")
	if s.publisher != nil {
		if err := s.publisher.PublishBookingConfirmed(ctx, confirmedEvent(conf)); err != nil {
			log.Warn().Err(err).Msg("publish booking.confirmed failed")
		}
	}
	return &conf, nil
}

// Ticket returns the confirmation issued for session id.
func (s *BookingService) Ticket(ctx context.Context, id string) (*model.Confirmation, error) {
	return s.sessions.Confirmation(ctx, id)
}

// Discard abandons the session.
func (s *BookingService) Discard(ctx context.Context, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("session_id", id).Msg("booking session discarded")
	return nil
}

func newReference() string {
	return "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func confirmedEvent(c model.Confirmation) q.BookingConfirmedEvent {
	return q.BookingConfirmedEvent{
		Reference:      c.Reference,
		SessionID:      c.SessionID,
		MovieTitle:     c.Movie,
		City:           c.City,
		Date:           c.Date,
		TheaterName:    c.Theater,
		Showtime:       c.Showtime,
		SeatLabels:     c.Seats,
		TotalAmount:    c.TotalAmount,
		ConvenienceFee: c.ConvenienceFee,
		FinalAmount:    c.FinalAmount,
		ConfirmedAt:    c.ConfirmedAt.Format(time.RFC3339),
	}
}

// IsNotFound reports whether err means the requested session, confirmation
// or movie does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrSessionNotFound) ||
		errors.Is(err, repository.ErrConfirmationNotFound) ||
		errors.Is(err, repository.ErrMovieNotFound)
}
