package booking

import (
	"fmt"

	"github.com/iliyamo/popcorngo/internal/model"
)

// RandSource supplies uniform floats in [0, 1). *rand.Rand satisfies it;
// tests inject fixed sequences to get deterministic seat maps.
type RandSource interface {
	Float64() float64
}

// Tier assigns a price to a contiguous block of rows.
type Tier struct {
	FromRow string
	ToRow   string
	Price   int
}

// Layout describes the seat map generated for every session.
type Layout struct {
	Rows        []string
	SeatsPerRow int
	BookedRatio float64
	Tiers       []Tier
}

// DefaultLayout is eight rows of twelve seats with three price tiers.
func DefaultLayout(tier1, tier2, tier3 int) Layout {
	return Layout{
		Rows:        []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		SeatsPerRow: 12,
		BookedRatio: 0.3,
		Tiers: []Tier{
			{FromRow: "A", ToRow: "C", Price: tier1},
			{FromRow: "D", ToRow: "F", Price: tier2},
			{FromRow: "G", ToRow: "H", Price: tier3},
		},
	}
}

// PriceForRow returns the tier price of row, or 0 when no tier covers it.
func (l Layout) PriceForRow(row string) int {
	for _, t := range l.Tiers {
		if row >= t.FromRow && row <= t.ToRow {
			return t.Price
		}
	}
	return 0
}

// GenerateSeats builds the seat map row by row. Each seat is booked
// independently with probability BookedRatio, drawing one value from rng
// per seat in row-major order.
func GenerateSeats(l Layout, rng RandSource) []model.Seat {
	seats := make([]model.Seat, 0, len(l.Rows)*l.SeatsPerRow)
	for _, row := range l.Rows {
		price := l.PriceForRow(row)
		for n := 1; n <= l.SeatsPerRow; n++ {
			status := model.SeatAvailable
			if rng.Float64() < l.BookedRatio {
				status = model.SeatBooked
			}
			seats = append(seats, model.Seat{
				ID:     fmt.Sprintf("%s%d", row, n),
				Row:    row,
				Number: n,
				Price:  price,
				Status: status,
			})
		}
	}
	return seats
}
