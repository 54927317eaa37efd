package tmdb

// MovieSummary is the list-item shape returned by the catalog's list and
// search endpoints. Summaries are value types: copied, never mutated in
// place. Two summaries with the same ID refer to the same movie even when
// the remaining fields differ (a stored copy may be stale).
type MovieSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
}

// MoviePage mirrors the paged payload returned by list and search endpoints.
type MoviePage struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// Genre is a catalog genre tag.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the full record for a single movie, including the
// credits, videos and similar-movies sections appended to the details
// request.
type MovieDetails struct {
	MovieSummary
	BackdropPath string     `json:"backdrop_path"`
	Runtime      int        `json:"runtime"`
	Tagline      string     `json:"tagline"`
	Genres       []Genre    `json:"genres"`
	Credits      *Credits   `json:"credits"`
	Videos       *VideoList `json:"videos"`
	Similar      *MoviePage `json:"similar"`
}

// Summary returns the list-item view of the details record. Favourites
// store this shape, not the full record.
func (d MovieDetails) Summary() MovieSummary {
	return d.MovieSummary
}

// Credits lists the cast and crew of a movie.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// CastMember is one entry in a movie's cast list.
type CastMember struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// CrewMember is one entry in a movie's crew list.
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// VideoList mirrors the /movie/{id}/videos payload.
type VideoList struct {
	Results []Video `json:"results"`
}

// Video describes a trailer, teaser or clip hosted off-catalog.
type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}
