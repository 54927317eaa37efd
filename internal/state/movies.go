package state

import "github.com/ThilinikaEvanthi1221/StreamBox/internal/tmdb"

// MoviesState is the movies container's state. Each list is a catalog
// snapshot replaced wholesale on a successful fetch; a failure records
// the error and leaves whatever list was already loaded visible.
type MoviesState struct {
	Trending      []tmdb.MovieSummary
	Popular       []tmdb.MovieSummary
	TopRated      []tmdb.MovieSummary
	SearchResults []tmdb.MovieSummary
	Details       *tmdb.MovieDetails
	Loading       bool
	Error         string
	Page          int
	TotalPages    int
}

// Movies container actions.
type (
	// FetchStart marks a catalog request in flight and clears any error.
	FetchStart struct{}
	// TrendingLoaded replaces the trending snapshot.
	TrendingLoaded struct{ Page tmdb.MoviePage }
	// PopularLoaded replaces the popular snapshot.
	PopularLoaded struct{ Page tmdb.MoviePage }
	// TopRatedLoaded replaces the top-rated snapshot.
	TopRatedLoaded struct{ Page tmdb.MoviePage }
	// SearchLoaded replaces the search snapshot.
	SearchLoaded struct{ Page tmdb.MoviePage }
	// DetailsLoaded replaces the movie-details record.
	DetailsLoaded struct{ Details tmdb.MovieDetails }
	// FetchFailure records the display message for a failed fetch.
	FetchFailure struct{ Message string }
	// ClearDetails drops the movie-details record.
	ClearDetails struct{}
	// ClearSearch drops the search snapshot.
	ClearSearch struct{}
	// ClearError drops the recorded error.
	ClearError struct{}
)

func reduceMovies(s MoviesState, action any) MoviesState {
	switch a := action.(type) {
	case FetchStart:
		s.Loading = true
		s.Error = ""
	case TrendingLoaded:
		s.Loading = false
		s.Trending = a.Page.Results
		s.Page = a.Page.Page
		s.TotalPages = a.Page.TotalPages
	case PopularLoaded:
		s.Loading = false
		s.Popular = a.Page.Results
		s.Page = a.Page.Page
		s.TotalPages = a.Page.TotalPages
	case TopRatedLoaded:
		s.Loading = false
		s.TopRated = a.Page.Results
		s.Page = a.Page.Page
		s.TotalPages = a.Page.TotalPages
	case SearchLoaded:
		s.Loading = false
		s.SearchResults = a.Page.Results
		s.Page = a.Page.Page
		s.TotalPages = a.Page.TotalPages
	case DetailsLoaded:
		s.Loading = false
		details := a.Details
		s.Details = &details
	case FetchFailure:
		s.Loading = false
		s.Error = a.Message
	case ClearDetails:
		s.Details = nil
	case ClearSearch:
		s.SearchResults = nil
	case ClearError:
		s.Error = ""
	}
	return s
}

func cloneMovies(s MoviesState) MoviesState {
	s.Trending = cloneSummaries(s.Trending)
	s.Popular = cloneSummaries(s.Popular)
	s.TopRated = cloneSummaries(s.TopRated)
	s.SearchResults = cloneSummaries(s.SearchResults)
	if s.Details != nil {
		details := *s.Details
		s.Details = &details
	}
	return s
}

// NewMovies builds the movies container with empty snapshots.
func NewMovies() *Container[MoviesState] {
	return NewContainer(MoviesState{Page: 1, TotalPages: 1}, reduceMovies, cloneMovies)
}

func cloneSummaries(items []tmdb.MovieSummary) []tmdb.MovieSummary {
	if len(items) == 0 {
		return nil
	}
	dup := make([]tmdb.MovieSummary, len(items))
	copy(dup, items)
	return dup
}
