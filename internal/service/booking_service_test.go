package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/popcorngo/internal/booking"
	q "github.com/iliyamo/popcorngo/internal/queue"
	"github.com/iliyamo/popcorngo/internal/repository"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishBookingConfirmed(ctx context.Context, event q.BookingConfirmedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

func newTestBookingService(pub EventPublisher) (*BookingService, *repository.SessionRepo) {
	sessions := repository.NewSessionRepo(time.Hour)
	cfg := BookingConfig{
		Layout:  booking.DefaultLayout(300, 250, 200),
		Rules:   booking.DefaultRules(),
		NewRand: func() booking.RandSource { return constRand(0.5) },
	}
	svc := NewBookingService(repository.NewCatalogRepo(), sessions, pub, cfg, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2024, 2, 15, 11, 30, 0, 0, time.UTC) }
	return svc, sessions
}

func TestBookingService_StartDefaults(t *testing.T) {
	svc, _ := newTestBookingService(nil)
	ctx := context.Background()

	v, err := svc.Start(ctx, "avengers-endgame", "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "Avengers: Endgame", v.Movie)
	assert.Equal(t, "Mumbai", v.City)
	assert.Equal(t, "2024-02-15", v.Date)
	assert.Equal(t, booking.StepTheater, v.Step)
	assert.Len(t, v.Theaters, 3)
	assert.Equal(t, 6, v.MaxSeats)
	assert.Empty(t, v.SelectedSeats)
}

func TestBookingService_StartRejectsUnknownInput(t *testing.T) {
	svc, _ := newTestBookingService(nil)
	ctx := context.Background()

	_, err := svc.Start(ctx, "rrr", "Mumbai", "")
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)
	assert.True(t, IsNotFound(err))

	_, err = svc.Start(ctx, "dune", "Atlantis", "")
	assert.ErrorIs(t, err, booking.ErrInvalidSelection)

	_, err = svc.Start(ctx, "dune", "Mumbai", "2030-01-01")
	assert.ErrorIs(t, err, booking.ErrInvalidSelection)

	// listed city without screens
	_, err = svc.Start(ctx, "dune", "Delhi", "")
	assert.ErrorIs(t, err, booking.ErrInvalidSelection)
}

func TestBookingService_FullFlowPublishesEvent(t *testing.T) {
	pub := new(MockPublisher)
	svc, _ := newTestBookingService(pub)
	ctx := context.Background()

	v, err := svc.Start(ctx, "avengers-endgame", "mumbai", "2024-02-16")
	require.NoError(t, err)
	id := v.ID

	v, err = svc.SelectTheater(ctx, id, "pvr-phoenix-mills", "5:00 PM")
	require.NoError(t, err)
	assert.Equal(t, booking.StepSeats, v.Step)
	assert.Nil(t, v.Theaters)

	v, outcome, err := svc.ToggleSeat(ctx, id, "a1")
	require.NoError(t, err)
	assert.Equal(t, booking.ToggleSelected, outcome)
	assert.Equal(t, booking.Totals{TotalAmount: 300, ConvenienceFee: 20, FinalAmount: 320}, v.Totals)

	_, _, err = svc.ToggleSeat(ctx, id, "G5")
	require.NoError(t, err)

	v, err = svc.ProceedToPayment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, booking.StepPayment, v.Step)

	pub.On("PublishBookingConfirmed", mock.Anything, mock.MatchedBy(func(ev q.BookingConfirmedEvent) bool {
		return ev.MovieTitle == "Avengers: Endgame" &&
			ev.TheaterName == "PVR Phoenix Mills" &&
			ev.FinalAmount == 540 &&
			ev.ConfirmedAt == "2024-02-15T11:30:00Z"
	})).Return(nil).Once()

	conf, err := svc.Confirm(ctx, id)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BK-[0-9A-F]{8}$`), conf.Reference)
	assert.Equal(t, []string{"A1", "G5"}, conf.Seats)
	assert.Equal(t, 500, conf.TotalAmount)
	assert.Equal(t, 40, conf.ConvenienceFee)
	assert.Equal(t, 540, conf.FinalAmount)
	pub.AssertExpectations(t)

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	ticket, err := svc.Ticket(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, conf.Reference, ticket.Reference)
}

func TestBookingService_ConfirmIgnoresPublishFailure(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("PublishBookingConfirmed", mock.Anything, mock.Anything).Return(errors.New("broker down"))
	svc, _ := newTestBookingService(pub)
	ctx := context.Background()

	v, err := svc.Start(ctx, "dune", "Mumbai", "")
	require.NoError(t, err)
	_, err = svc.SelectTheater(ctx, v.ID, "inox-megaplex", "6:00 PM")
	require.NoError(t, err)
	_, _, err = svc.ToggleSeat(ctx, v.ID, "D1")
	require.NoError(t, err)
	_, err = svc.ProceedToPayment(ctx, v.ID)
	require.NoError(t, err)

	conf, err := svc.Confirm(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 270, conf.FinalAmount)
	pub.AssertNumberOfCalls(t, "PublishBookingConfirmed", 1)
}

func TestBookingService_ConfirmOutsidePayment(t *testing.T) {
	pub := new(MockPublisher)
	svc, _ := newTestBookingService(pub)
	ctx := context.Background()

	v, err := svc.Start(ctx, "dune", "Mumbai", "")
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, v.ID)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	pub.AssertNotCalled(t, "PublishBookingConfirmed", mock.Anything, mock.Anything)

	// the session is still usable
	_, err = svc.Get(ctx, v.ID)
	assert.NoError(t, err)
}

func TestBookingService_ChangeTheaterAndDiscard(t *testing.T) {
	svc, sessions := newTestBookingService(nil)
	ctx := context.Background()

	v, err := svc.Start(ctx, "the-batman", "Mumbai", "")
	require.NoError(t, err)
	_, err = svc.SelectTheater(ctx, v.ID, "cinepolis-fun-republic", "7:00 PM")
	require.NoError(t, err)
	_, _, err = svc.ToggleSeat(ctx, v.ID, "B2")
	require.NoError(t, err)

	v, err = svc.ChangeTheater(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StepTheater, v.Step)
	assert.Empty(t, v.SelectedSeats)
	assert.Len(t, v.Theaters, 3)

	seats, err := svc.Seats(ctx, v.ID)
	require.NoError(t, err)
	assert.Len(t, seats, 96)

	require.NoError(t, svc.Discard(ctx, v.ID))
	assert.Equal(t, 0, sessions.Len())
	assert.True(t, IsNotFound(svc.Discard(ctx, v.ID)))
}

func TestBookingService_UnknownSeat(t *testing.T) {
	svc, _ := newTestBookingService(nil)
	ctx := context.Background()

	v, _ := svc.Start(ctx, "dune", "Mumbai", "")
	_, err := svc.SelectTheater(ctx, v.ID, "pvr-phoenix-mills", "10:00 AM")
	require.NoError(t, err)

	_, outcome, err := svc.ToggleSeat(ctx, v.ID, "Q1")
	assert.False(t, outcome.Changed())
	assert.ErrorIs(t, err, booking.ErrInvalidSelection)
}
