// Package booking implements the per-visit booking session: theater and
// showtime choice, seat selection on a generated seat map, and the derived
// price totals.
package booking

import (
	"fmt"
	"sort"

	"github.com/iliyamo/popcorngo/internal/model"
)

// Step is the current stage of a session.
type Step string

const (
	StepTheater Step = "theater"
	StepSeats   Step = "seats"
	StepPayment Step = "payment"
)

const (
	DefaultMaxSeats       = 6
	DefaultConvenienceFee = 20
)

// Rules holds the per-booking limits. A non-positive MaxSeats or a
// negative ConvenienceFee falls back to the default.
type Rules struct {
	MaxSeats       int
	ConvenienceFee int // charged per selected seat
}

// DefaultRules caps a booking at six seats with a fee of 20 per seat.
func DefaultRules() Rules {
	return Rules{MaxSeats: DefaultMaxSeats, ConvenienceFee: DefaultConvenienceFee}
}

func (r Rules) withDefaults() Rules {
	if r.MaxSeats <= 0 {
		r.MaxSeats = DefaultMaxSeats
	}
	if r.ConvenienceFee < 0 {
		r.ConvenienceFee = DefaultConvenienceFee
	}
	return r
}

// Totals is derived from the selected seats; it is never stored.
type Totals struct {
	TotalAmount    int `json:"total_amount"`
	ConvenienceFee int `json:"convenience_fee"`
	FinalAmount    int `json:"final_amount"`
}

// Session is the aggregate root of one booking flow. It is owned by a
// single caller and is not safe for concurrent use.
type Session struct {
	Movie string
	City  string
	Date  string

	theaters []model.Theater
	rules    Rules

	step     Step
	theater  *model.Theater
	showtime string

	seats    []model.Seat
	index    map[string]int
	selected []string // selection order
}

// NewSession starts a session in the theater step. theaters are the
// options for the session's city; the seat map is generated once from
// layout and rng.
func NewSession(movie, city, date string, theaters []model.Theater, layout Layout, rng RandSource, rules Rules) *Session {
	seats := GenerateSeats(layout, rng)
	index := make(map[string]int, len(seats))
	for i, s := range seats {
		index[s.ID] = i
	}
	ts := make([]model.Theater, len(theaters))
	copy(ts, theaters)
	return &Session{
		Movie:    movie,
		City:     city,
		Date:     date,
		theaters: ts,
		rules:    rules.withDefaults(),
		step:     StepTheater,
		seats:    seats,
		index:    index,
	}
}

func (s *Session) Step() Step { return s.step }

// Theater returns the chosen theater, or nil before one is chosen.
func (s *Session) Theater() *model.Theater {
	if s.theater == nil {
		return nil
	}
	t := *s.theater
	return &t
}

func (s *Session) Showtime() string { return s.showtime }

// Theaters lists the theaters the session may choose from.
func (s *Session) Theaters() []model.Theater {
	out := make([]model.Theater, len(s.theaters))
	copy(out, s.theaters)
	return out
}

func (s *Session) Rules() Rules { return s.rules }

// SelectTheaterAndShowtime chooses where and when to watch and moves the
// session to the seats step.
func (s *Session) SelectTheaterAndShowtime(theaterID, showtime string) error {
	if s.step != StepTheater {
		return fmt.Errorf("select theater in step %s: %w", s.step, ErrInvalidTransition)
	}
	for i := range s.theaters {
		t := s.theaters[i]
		if t.ID != theaterID {
			continue
		}
		if !t.HasShowtime(showtime) {
			return fmt.Errorf("showtime %q at %s: %w", showtime, t.Name, ErrInvalidSelection)
		}
		s.theater = &t
		s.showtime = showtime
		s.step = StepSeats
		return nil
	}
	return fmt.Errorf("theater %q in %s: %w", theaterID, s.City, ErrInvalidSelection)
}

// ToggleOutcome says what a seat click did. The two ignored outcomes
// double as the reason reported to the client.
type ToggleOutcome string

const (
	ToggleSelected      ToggleOutcome = "selected"
	ToggleDeselected    ToggleOutcome = "deselected"
	ToggleIgnoredBooked ToggleOutcome = "seat_booked"
	ToggleIgnoredCap    ToggleOutcome = "max_seats_reached"
)

// Changed reports whether the selection was modified.
func (o ToggleOutcome) Changed() bool {
	return o == ToggleSelected || o == ToggleDeselected
}

// ToggleSeat selects or deselects seatID and reports whether the selection
// changed. Booked seats and selections beyond the seat cap are ignored.
func (s *Session) ToggleSeat(seatID string) (bool, error) {
	o, err := s.Toggle(seatID)
	return o.Changed(), err
}

// Toggle is ToggleSeat reporting which branch was taken. On error the
// outcome is empty.
func (s *Session) Toggle(seatID string) (ToggleOutcome, error) {
	if s.step != StepSeats {
		return "", fmt.Errorf("toggle seat in step %s: %w", s.step, ErrInvalidTransition)
	}
	i, ok := s.index[seatID]
	if !ok {
		return "", fmt.Errorf("seat %q: %w", seatID, ErrInvalidSelection)
	}
	seat := &s.seats[i]
	switch seat.Status {
	case model.SeatBooked:
		return ToggleIgnoredBooked, nil
	case model.SeatSelected:
		seat.Status = model.SeatAvailable
		s.removeSelected(seatID)
		return ToggleDeselected, nil
	}
	if len(s.selected) >= s.rules.MaxSeats {
		return ToggleIgnoredCap, nil
	}
	seat.Status = model.SeatSelected
	s.selected = append(s.selected, seatID)
	return ToggleSelected, nil
}

func (s *Session) removeSelected(id string) {
	for i, v := range s.selected {
		if v == id {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
}

// ChangeTheater returns to the theater step. The seat selection belongs to
// the previous screening and is cleared.
func (s *Session) ChangeTheater() error {
	if s.step != StepSeats {
		return fmt.Errorf("change theater in step %s: %w", s.step, ErrInvalidTransition)
	}
	for _, id := range s.selected {
		s.seats[s.index[id]].Status = model.SeatAvailable
	}
	s.selected = nil
	s.theater = nil
	s.showtime = ""
	s.step = StepTheater
	return nil
}

// ProceedToPayment moves to the payment step once at least one seat is
// selected. On failure the step is unchanged.
func (s *Session) ProceedToPayment() error {
	if s.step != StepSeats {
		return fmt.Errorf("proceed to payment in step %s: %w", s.step, ErrInvalidTransition)
	}
	if len(s.selected) == 0 {
		return fmt.Errorf("proceed to payment with no seats: %w", ErrInvalidTransition)
	}
	s.step = StepPayment
	return nil
}

// Seats returns a copy of the full seat map in row-major order.
func (s *Session) Seats() []model.Seat {
	out := make([]model.Seat, len(s.seats))
	copy(out, s.seats)
	return out
}

// SelectedSeats returns the selected seats in selection order.
func (s *Session) SelectedSeats() []model.Seat {
	out := make([]model.Seat, 0, len(s.selected))
	for _, id := range s.selected {
		out = append(out, s.seats[s.index[id]])
	}
	return out
}

// SelectedSeatIDs returns the selected seat ids sorted by row and number.
func (s *Session) SelectedSeatIDs() []string {
	seats := s.SelectedSeats()
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].Row != seats[j].Row {
			return seats[i].Row < seats[j].Row
		}
		return seats[i].Number < seats[j].Number
	})
	ids := make([]string, 0, len(seats))
	for _, st := range seats {
		ids = append(ids, st.ID)
	}
	return ids
}

// Totals computes the amounts for the current selection.
func (s *Session) Totals() Totals {
	var t Totals
	for _, id := range s.selected {
		t.TotalAmount += s.seats[s.index[id]].Price
	}
	t.ConvenienceFee = len(s.selected) * s.rules.ConvenienceFee
	t.FinalAmount = t.TotalAmount + t.ConvenienceFee
	return t
}
