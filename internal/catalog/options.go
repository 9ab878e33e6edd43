package catalog

// Options lists the selectable values of each dimension for one catalog
// page. Every list starts with All.
type Options map[Dimension][]string

// MovieOptions returns the drop-down values of the movies page.
func (f *Filter) MovieOptions() Options {
	return Options{
		DimGenre:    {All, "Action", "Comedy", "Drama", "Horror", "Romance", "Sci-Fi", "Thriller", "Adventure"},
		DimLanguage: {All, "English", "Hindi", "Tamil", "Telugu", "Marathi", "Bengali"},
		DimFormat:   {All, "2D", "3D", "IMAX", "4DX"},
		DimPrice:    append([]string{All}, f.MovieBands.Keys()...),
	}
}

// EventOptions returns the drop-down values of the events page.
func (f *Filter) EventOptions(cities []string) Options {
	return Options{
		DimCategory: {All, "Concerts", "Comedy Shows", "Theatre", "Sports", "Workshops", "Exhibitions"},
		DimCity:     append([]string{All}, cities...),
		DimPrice:    append([]string{All}, f.EventBands.Keys()...),
		DimDate:     append([]string{All}, DateRanges...),
	}
}
