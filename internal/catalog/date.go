package catalog

import "time"

// Date range keys offered on the events page.
const (
	DateToday       = "today"
	DateTomorrow    = "tomorrow"
	DateThisWeekend = "this-weekend"
	DateNextWeek    = "next-week"
	DateThisMonth   = "this-month"
)

// DateRanges lists the date keys in drop-down order.
var DateRanges = []string{DateToday, DateTomorrow, DateThisWeekend, DateNextWeek, DateThisMonth}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dateWindow returns the inclusive [from, to] days for key relative to today.
func dateWindow(key string, today time.Time) (from, to time.Time, ok bool) {
	today = day(today)
	switch key {
	case DateToday:
		return today, today, true
	case DateTomorrow:
		t := today.AddDate(0, 0, 1)
		return t, t, true
	case DateThisWeekend:
		switch today.Weekday() {
		case time.Sunday:
			return today, today, true
		case time.Saturday:
			return today, today.AddDate(0, 0, 1), true
		}
		sat := today.AddDate(0, 0, int(time.Saturday-today.Weekday()))
		return sat, sat.AddDate(0, 0, 1), true
	case DateNextWeek:
		// weeks start on Monday
		offset := (int(today.Weekday()) + 6) % 7
		mon := today.AddDate(0, 0, 7-offset)
		return mon, mon.AddDate(0, 0, 6), true
	case DateThisMonth:
		last := time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, time.UTC)
		return today, last, true
	}
	return time.Time{}, time.Time{}, false
}

func inDateRange(key string, d, today time.Time) bool {
	from, to, ok := dateWindow(key, today)
	if !ok {
		return false
	}
	d = day(d)
	return !d.Before(from) && !d.After(to)
}
