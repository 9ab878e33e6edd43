package catalog

import "fmt"

// PriceBand is one entry of a price-range drop-down. Min/Max bound the
// price; a negative Max means the band is open upwards.
type PriceBand struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Min          int    `json:"min"`
	Max          int    `json:"max"`
	MinInclusive bool   `json:"min_inclusive"`
	MaxInclusive bool   `json:"max_inclusive"`
}

// Contains reports whether price falls inside the band.
func (b PriceBand) Contains(price int) bool {
	if b.MinInclusive {
		if price < b.Min {
			return false
		}
	} else if price <= b.Min {
		return false
	}
	if b.Max < 0 {
		return true
	}
	if b.MaxInclusive {
		return price <= b.Max
	}
	return price < b.Max
}

// PriceBands is an ordered band table.
type PriceBands []PriceBand

// Lookup returns the band registered under key.
func (bs PriceBands) Lookup(key string) (PriceBand, bool) {
	for _, b := range bs {
		if b.Key == key {
			return b, true
		}
	}
	return PriceBand{}, false
}

// Keys lists the band keys in table order.
func (bs PriceBands) Keys() []string {
	out := make([]string, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.Key)
	}
	return out
}

func under(n int) PriceBand {
	return PriceBand{Key: fmt.Sprintf("under-%d", n), Label: fmt.Sprintf("Under ₹%d", n), Min: 0, Max: n, MinInclusive: true}
}

func between(lo, hi int) PriceBand {
	return PriceBand{Key: fmt.Sprintf("%d-%d", lo, hi), Label: fmt.Sprintf("₹%d-₹%d", lo, hi), Min: lo, Max: hi, MinInclusive: true, MaxInclusive: true}
}

func above(n int) PriceBand {
	return PriceBand{Key: fmt.Sprintf("above-%d", n), Label: fmt.Sprintf("Above ₹%d", n), Min: n, Max: -1}
}

// DefaultMovieBands mirrors the movies page drop-down.
var DefaultMovieBands = PriceBands{
	under(150),
	between(150, 250),
	between(250, 350),
	above(350),
}

// DefaultEventBands mirrors the events page drop-down. Free is exactly 0,
// so the "under" band starts above zero.
var DefaultEventBands = PriceBands{
	{Key: "free", Label: "Free", Min: 0, Max: 0, MinInclusive: true, MaxInclusive: true},
	{Key: "under-500", Label: "Under ₹500", Min: 0, Max: 500},
	between(500, 1000),
	between(1000, 2000),
	above(2000),
}
