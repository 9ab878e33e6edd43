package repository

import "github.com/iliyamo/popcorngo/internal/model"

const posterQuery = "?w=400&h=600&fit=crop"
const bannerQuery = "?w=400&h=300&fit=crop"

func unsplash(id, q string) string {
	return "https://images.unsplash.com/" + id + q
}

var sampleCities = []string{"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata", "Pune"}

var sampleDates = []model.BookingDate{
	{Date: "2024-02-15", Label: "Today"},
	{Date: "2024-02-16", Label: "Tomorrow"},
	{Date: "2024-02-17", Label: "Sat, 17 Feb"},
	{Date: "2024-02-18", Label: "Sun, 18 Feb"},
}

func sampleMovies() []model.Movie {
	en := []string{"English", "Hindi"}
	return []model.Movie{
		{Title: "Avengers: Endgame", Genres: []string{"Action", "Adventure", "Drama"}, Rating: 8.4, Price: 150, Languages: en, Formats: []string{"2D", "3D", "IMAX"}, Image: unsplash("photo-1489599904472-c2269952b9e4", posterQuery)},
		{Title: "Spider-Man: No Way Home", Genres: []string{"Action", "Adventure", "Sci-Fi"}, Rating: 8.7, Price: 180, Languages: en, Formats: []string{"2D", "3D", "IMAX"}, Image: unsplash("photo-1635805737707-575885ab0820", posterQuery)},
		{Title: "The Batman", Genres: []string{"Action", "Crime", "Drama"}, Rating: 7.8, Price: 200, Languages: en, Formats: []string{"2D", "IMAX"}, Image: unsplash("photo-1608889476561-6242cfdbf622", posterQuery)},
		{Title: "Top Gun: Maverick", Genres: []string{"Action", "Drama"}, Rating: 8.3, Price: 170, Languages: en, Formats: []string{"2D", "IMAX"}, Image: unsplash("photo-1518709268805-4e9042af2176", posterQuery)},
		{Title: "Dune", Genres: []string{"Sci-Fi", "Adventure", "Drama"}, Rating: 8.0, Price: 160, Languages: en, Formats: []string{"2D", "IMAX"}, Image: unsplash("photo-1506905925346-21bda4d32df4", posterQuery)},
		{Title: "Black Widow", Genres: []string{"Action", "Adventure", "Thriller"}, Rating: 6.7, Price: 140, Languages: en, Formats: []string{"2D", "3D"}, Image: unsplash("photo-1440404653325-ab127d49abc1", posterQuery)},
		{Title: "Fast & Furious 9", Genres: []string{"Action", "Crime", "Thriller"}, Rating: 5.2, Price: 130, Languages: en, Formats: []string{"2D", "3D"}, Image: unsplash("photo-1518676590629-3dcbd9c5a5c9", posterQuery)},
		{Title: "Eternals", Genres: []string{"Action", "Adventure", "Drama"}, Rating: 6.3, Price: 190, Languages: []string{"English", "Hindi", "Tamil"}, Formats: []string{"2D", "3D", "IMAX"}, Image: unsplash("photo-1635863138275-d9864d3e8e2f", posterQuery)},
		{Title: "No Time to Die", Genres: []string{"Action", "Adventure", "Thriller"}, Rating: 7.3, Price: 175, Languages: en, Formats: []string{"2D", "IMAX"}, Image: unsplash("photo-1516450360452-9312f5e86fc7", posterQuery)},
		{Title: "Shang-Chi", Genres: []string{"Action", "Adventure", "Fantasy"}, Rating: 7.4, Price: 165, Languages: en, Formats: []string{"2D", "3D", "IMAX"}, Image: unsplash("photo-1541961017774-22349e4a1262", posterQuery)},
		{Title: "Venom: Let There Be Carnage", Genres: []string{"Action", "Sci-Fi", "Thriller"}, Rating: 5.9, Price: 155, Languages: en, Formats: []string{"2D", "3D"}, Image: unsplash("photo-1578662996442-48f60103fc96", posterQuery)},
		{Title: "The Matrix Resurrections", Genres: []string{"Action", "Sci-Fi"}, Rating: 5.7, Price: 185, Languages: en, Formats: []string{"2D", "IMAX"}, Image: unsplash("photo-1574375927938-d5a98e8ffe85", posterQuery)},
	}
}

func sampleEvents() []model.Event {
	return []model.Event{
		{Title: "Arijit Singh Live Concert", Category: "Concerts", Venue: "NSCI Stadium, Mumbai", Date: mustDate("2024-02-15"), Price: 1500, Image: unsplash("photo-1493225457124-a3eb161ffa5f", bannerQuery)},
		{Title: "Stand-up Comedy Night", Category: "Comedy Shows", Venue: "Phoenix Marketcity, Bangalore", Date: mustDate("2024-02-10"), Price: 800, Image: unsplash("photo-1527224857830-43a7acc85260", bannerQuery)},
		{Title: "Mumbai Indians vs CSK", Category: "Sports", Venue: "Wankhede Stadium, Mumbai", Date: mustDate("2024-02-20"), Price: 2500, Image: unsplash("photo-1540747913346-19e32dc3e97e", bannerQuery)},
		{Title: "Shakespeare's Hamlet", Category: "Theatre", Venue: "Prithvi Theatre, Mumbai", Date: mustDate("2024-02-12"), Price: 600, Image: unsplash("photo-1507924538820-ede94a04019d", bannerQuery)},
		{Title: "Digital Marketing Workshop", Category: "Workshops", Venue: "ITC Grand Central, Mumbai", Date: mustDate("2024-02-18"), Price: 1200, Image: unsplash("photo-1515187029135-18ee286d815b", bannerQuery)},
		{Title: "Art Exhibition: Modern Masters", Category: "Exhibitions", Venue: "National Gallery, Delhi", Date: mustDate("2024-02-25"), Price: 300, Image: unsplash("photo-1578662996442-48f60103fc96", bannerQuery)},
		{Title: "Sunburn Music Festival", Category: "Concerts", Venue: "Vagator Beach, Goa", Date: mustDate("2024-03-01"), Price: 3500, Image: unsplash("photo-1459749411175-04bf5292ceea", bannerQuery)},
		{Title: "Tech Talk: AI & Future", Category: "Workshops", Venue: "Bangalore International Centre", Date: mustDate("2024-02-14"), Price: 0, Image: unsplash("photo-1485827404703-89b55fcc595e", bannerQuery)},
		{Title: "Classical Dance Performance", Category: "Theatre", Venue: "Music Academy, Chennai", Date: mustDate("2024-02-22"), Price: 750, Image: unsplash("photo-1508700115892-45ecd05ae2ad", bannerQuery)},
		{Title: "Food & Wine Festival", Category: "Exhibitions", Venue: "Mahalaxmi Racecourse, Mumbai", Date: mustDate("2024-02-28"), Price: 1800, Image: unsplash("photo-1414235077428-338989a2e8c0", bannerQuery)},
	}
}

// Only Mumbai has screens listed today; other cities return no theaters.
func sampleTheaters() []model.Theater {
	return []model.Theater{
		{Name: "PVR Phoenix Mills", City: "Mumbai", Location: "Lower Parel, Mumbai", Distance: "2.5 km", Showtimes: []string{"10:00 AM", "1:30 PM", "5:00 PM", "8:30 PM"}, Price: 250, Amenities: []string{"IMAX", "Dolby Atmos", "Recliner Seats"}},
		{Name: "INOX Megaplex", City: "Mumbai", Location: "Inorbit Mall, Malad", Distance: "8.2 km", Showtimes: []string{"11:00 AM", "2:30 PM", "6:00 PM", "9:30 PM"}, Price: 200, Amenities: []string{"4DX", "Premium Seats"}},
		{Name: "Cinepolis Fun Republic", City: "Mumbai", Location: "Andheri West, Mumbai", Distance: "5.1 km", Showtimes: []string{"12:00 PM", "3:30 PM", "7:00 PM", "10:30 PM"}, Price: 180, Amenities: []string{"VIP Lounge", "Gourmet Food"}},
	}
}
