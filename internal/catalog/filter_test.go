package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/popcorngo/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testFilter() *Filter {
	f := NewFilter()
	f.Now = func() time.Time { return date("2024-02-15") } // Thursday
	return f
}

func testMovies() []model.Movie {
	return []model.Movie{
		{ID: "avengers-endgame", Title: "Avengers: Endgame", Genres: []string{"Action", "Adventure", "Drama"}, Price: 150, Languages: []string{"English", "Hindi"}, Formats: []string{"2D", "3D", "IMAX"}},
		{ID: "dune", Title: "Dune", Genres: []string{"Sci-Fi", "Adventure", "Drama"}, Price: 160, Languages: []string{"English", "Hindi"}, Formats: []string{"2D", "IMAX"}},
		{ID: "black-widow", Title: "Black Widow", Genres: []string{"Action", "Adventure", "Thriller"}, Price: 140, Languages: []string{"English", "Hindi"}, Formats: []string{"2D", "3D"}},
		{ID: "eternals", Title: "Eternals", Genres: []string{"Action", "Adventure", "Drama"}, Price: 190, Languages: []string{"English", "Hindi", "Tamil"}, Formats: []string{"2D", "3D", "IMAX"}},
	}
}

func testEvents() []model.Event {
	return []model.Event{
		{Title: "Arijit Singh Live Concert", Category: "Concerts", Venue: "NSCI Stadium, Mumbai", Date: date("2024-02-15"), Price: 1500},
		{Title: "Stand-up Comedy Night", Category: "Comedy Shows", Venue: "Phoenix Marketcity, Bangalore", Date: date("2024-02-10"), Price: 800},
		{Title: "Mumbai Indians vs CSK", Category: "Sports", Venue: "Wankhede Stadium, Mumbai", Date: date("2024-02-20"), Price: 2500},
		{Title: "Digital Marketing Workshop", Category: "Workshops", Venue: "ITC Grand Central, Mumbai", Date: date("2024-02-18"), Price: 1200},
		{Title: "Art Exhibition: Modern Masters", Category: "Exhibitions", Venue: "National Gallery, Delhi", Date: date("2024-02-25"), Price: 300},
		{Title: "Sunburn Music Festival", Category: "Concerts", Venue: "Vagator Beach, Goa", Date: date("2024-03-01"), Price: 3500},
		{Title: "Tech Talk: AI & Future", Category: "Workshops", Venue: "Bangalore International Centre", Date: date("2024-02-14"), Price: 0},
		{Title: "Food & Wine Festival", Category: "Exhibitions", Venue: "Mahalaxmi Racecourse, Mumbai", Date: date("2024-02-28"), Price: 1800},
	}
}

func eventTitles(es []model.Event) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Title)
	}
	return out
}

func movieTitles(ms []model.Movie) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Title)
	}
	return out
}

func TestMovies_NoConstraintsReturnsEverything(t *testing.T) {
	f := testFilter()
	items := testMovies()

	got := f.Movies(items, "", Criteria{DimGenre: All, DimLanguage: All, DimFormat: All, DimPrice: All})
	assert.Equal(t, items, got)

	got = f.Movies(items, "   ", nil)
	assert.Equal(t, items, got)
}

func TestEvents_NoConstraintsReturnsEverything(t *testing.T) {
	f := testFilter()
	items := testEvents()

	got := f.Events(items, "", Criteria{DimCategory: All, DimCity: All, DimPrice: All, DimDate: All})
	assert.Equal(t, items, got)
}

func TestEvents_FreePriceBand(t *testing.T) {
	f := testFilter()
	items := []model.Event{
		{Title: "Dune", Price: 160},
		{Title: "RRR", Price: 0},
	}

	got := f.Events(items, "", Criteria{DimPrice: "free"})
	require.Len(t, got, 1)
	assert.Equal(t, "RRR", got[0].Title)

	// the movies page has no Free band
	movies := []model.Movie{{Title: "Dune", Price: 160}, {Title: "RRR", Price: 0}}
	assert.Empty(t, f.Movies(movies, "", Criteria{DimPrice: "free"}))
}

func TestEvents_QueryMatchesCategoryAndVenue(t *testing.T) {
	f := testFilter()

	got := f.Events(testEvents(), "COMEDY", nil)
	assert.Equal(t, []string{"Stand-up Comedy Night"}, eventTitles(got))

	// only the category carries the plural form
	got = f.Events(testEvents(), "exhibitions", nil)
	assert.Equal(t, []string{"Art Exhibition: Modern Masters", "Food & Wine Festival"}, eventTitles(got))

	got = f.Events(testEvents(), "wankhede", nil)
	assert.Equal(t, []string{"Mumbai Indians vs CSK"}, eventTitles(got))
}

func TestMovies_QueryMatchesTitleOrGenre(t *testing.T) {
	f := testFilter()

	got := f.Movies(testMovies(), "sci-fi", nil)
	assert.Equal(t, []string{"Dune"}, movieTitles(got))

	got = f.Movies(testMovies(), "WIDOW", nil)
	assert.Equal(t, []string{"Black Widow"}, movieTitles(got))
}

func TestMovies_TagDimensionsAreAnded(t *testing.T) {
	f := testFilter()

	got := f.Movies(testMovies(), "", Criteria{DimGenre: "Action", DimFormat: "IMAX"})
	assert.Equal(t, []string{"Avengers: Endgame", "Eternals"}, movieTitles(got))

	got = f.Movies(testMovies(), "", Criteria{DimGenre: "Action", DimFormat: "IMAX", DimLanguage: "Tamil"})
	assert.Equal(t, []string{"Eternals"}, movieTitles(got))

	got = f.Movies(testMovies(), "eternals", Criteria{DimLanguage: "Bengali"})
	assert.Empty(t, got)
}

func TestMovies_PriceBands(t *testing.T) {
	f := testFilter()

	cases := map[string][]string{
		"under-150": {"Black Widow"},
		"150-250":   {"Avengers: Endgame", "Dune", "Eternals"},
		"250-350":   {},
		"above-350": {},
	}
	for band, want := range cases {
		got := f.Movies(testMovies(), "", Criteria{DimPrice: band})
		assert.Equal(t, want, movieTitles(got), band)
	}
}

func TestFilter_UnknownValuesMatchNothing(t *testing.T) {
	f := testFilter()

	assert.Empty(t, f.Movies(testMovies(), "", Criteria{DimGenre: "Western"}))
	assert.Empty(t, f.Movies(testMovies(), "", Criteria{DimPrice: "cheap"}))
	assert.Empty(t, f.Events(testEvents(), "", Criteria{DimDate: "someday"}))
	assert.Empty(t, f.Events(testEvents(), "", Criteria{DimCategory: "Opera"}))

	// dimensions that do not apply to the item kind
	assert.Empty(t, f.Movies(testMovies(), "", Criteria{DimCategory: "Concerts"}))
	assert.Empty(t, f.Events(testEvents(), "", Criteria{DimGenre: "Action"}))
}

func TestEvents_CategoryCityAndPrice(t *testing.T) {
	f := testFilter()

	got := f.Events(testEvents(), "", Criteria{DimCategory: "Concerts"})
	assert.Equal(t, []string{"Arijit Singh Live Concert", "Sunburn Music Festival"}, eventTitles(got))

	got = f.Events(testEvents(), "", Criteria{DimCity: "Mumbai", DimPrice: "1000-2000"})
	assert.Equal(t, []string{"Arijit Singh Live Concert", "Digital Marketing Workshop", "Food & Wine Festival"}, eventTitles(got))

	got = f.Events(testEvents(), "", Criteria{DimPrice: "under-500"})
	assert.Equal(t, []string{"Art Exhibition: Modern Masters"}, eventTitles(got))

	got = f.Events(testEvents(), "", Criteria{DimPrice: "above-2000"})
	assert.Equal(t, []string{"Mumbai Indians vs CSK", "Sunburn Music Festival"}, eventTitles(got))
}

func TestEvents_DateRanges(t *testing.T) {
	f := testFilter()

	cases := map[string][]string{
		DateToday:       {"Arijit Singh Live Concert"},
		DateTomorrow:    {},
		DateThisWeekend: {"Digital Marketing Workshop"},
		DateNextWeek:    {"Mumbai Indians vs CSK", "Art Exhibition: Modern Masters"},
		DateThisMonth:   {"Arijit Singh Live Concert", "Mumbai Indians vs CSK", "Digital Marketing Workshop", "Art Exhibition: Modern Masters", "Food & Wine Festival"},
	}
	for key, want := range cases {
		got := f.Events(testEvents(), "", Criteria{DimDate: key})
		assert.Equal(t, want, eventTitles(got), key)
	}
}

func TestDateWindow_Weekend(t *testing.T) {
	from, to, ok := dateWindow(DateThisWeekend, date("2024-02-17")) // Saturday
	require.True(t, ok)
	assert.Equal(t, date("2024-02-17"), from)
	assert.Equal(t, date("2024-02-18"), to)

	from, to, ok = dateWindow(DateThisWeekend, date("2024-02-18")) // Sunday
	require.True(t, ok)
	assert.Equal(t, date("2024-02-18"), from)
	assert.Equal(t, date("2024-02-18"), to)

	from, to, ok = dateWindow(DateNextWeek, date("2024-02-18"))
	require.True(t, ok)
	assert.Equal(t, date("2024-02-19"), from)
	assert.Equal(t, date("2024-02-25"), to)
}

func TestFilter_IdempotentAndDoesNotMutate(t *testing.T) {
	f := testFilter()
	items := testEvents()
	snapshot := testEvents()
	c := Criteria{DimCity: "Mumbai", DimDate: DateThisMonth}

	once := f.Events(items, "a", c)
	twice := f.Events(once, "a", c)

	assert.Equal(t, once, twice)
	assert.Equal(t, snapshot, items)
	assert.Equal(t, Criteria{DimCity: "Mumbai", DimDate: DateThisMonth}, c)
}

func TestNormalizeOptionKey(t *testing.T) {
	cases := map[string]string{
		"Under ₹150":     "under-150",
		"₹150-₹250":      "150-250",
		"Above ₹350":     "above-350",
		"‚Çπ500-‚Çπ1000":   "500-1000",
		"Under ‚Çπ500":    "under-500",
		"Free":           "free",
		"This Weekend":   "this-weekend",
		"  next   week ": "next-week",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeOptionKey(in), in)
	}
}

func TestPriceBand_Contains(t *testing.T) {
	free, ok := DefaultEventBands.Lookup("free")
	require.True(t, ok)
	assert.True(t, free.Contains(0))
	assert.False(t, free.Contains(1))

	under, _ := DefaultEventBands.Lookup("under-500")
	assert.False(t, under.Contains(0))
	assert.True(t, under.Contains(499))
	assert.False(t, under.Contains(500))

	mid, _ := DefaultEventBands.Lookup("500-1000")
	assert.True(t, mid.Contains(500))
	assert.True(t, mid.Contains(1000))

	top, _ := DefaultEventBands.Lookup("above-2000")
	assert.False(t, top.Contains(2000))
	assert.True(t, top.Contains(2001))
}
