package state

import "github.com/ThilinikaEvanthi1221/StreamBox/internal/tmdb"

// FavouritesState is the favourites container's state: an ordered list
// with membership keyed by movie ID. The reducer guarantees no two
// entries share an ID.
type FavouritesState struct {
	Items []tmdb.MovieSummary
}

// Contains reports membership by ID.
func (s FavouritesState) Contains(id int64) bool {
	for _, item := range s.Items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Favourites container actions.
type (
	// AddFavourite appends a movie; a no-op if the ID is already present.
	AddFavourite struct{ Movie tmdb.MovieSummary }
	// RemoveFavourite drops the entry with the given ID.
	RemoveFavourite struct{ ID int64 }
	// SetFavourites replaces the list wholesale (startup hydration).
	SetFavourites struct{ Items []tmdb.MovieSummary }
	// ClearFavourites empties the list.
	ClearFavourites struct{}
	// ToggleFavourite removes the movie if present, appends it otherwise.
	ToggleFavourite struct{ Movie tmdb.MovieSummary }
)

func reduceFavourites(s FavouritesState, action any) FavouritesState {
	switch a := action.(type) {
	case AddFavourite:
		if !s.Contains(a.Movie.ID) {
			s.Items = append(cloneSummaries(s.Items), a.Movie)
		}
	case RemoveFavourite:
		s.Items = removeByID(s.Items, a.ID)
	case SetFavourites:
		// Hydrated data may predate the no-duplicates rule; enforce it
		// here so the invariant holds regardless of what storage returns.
		s.Items = dedupeByID(a.Items)
	case ClearFavourites:
		s.Items = nil
	case ToggleFavourite:
		if s.Contains(a.Movie.ID) {
			s.Items = removeByID(s.Items, a.Movie.ID)
		} else {
			s.Items = append(cloneSummaries(s.Items), a.Movie)
		}
	}
	return s
}

func cloneFavourites(s FavouritesState) FavouritesState {
	s.Items = cloneSummaries(s.Items)
	return s
}

// NewFavourites builds an empty favourites container.
func NewFavourites() *Container[FavouritesState] {
	return NewContainer(FavouritesState{}, reduceFavourites, cloneFavourites)
}

func removeByID(items []tmdb.MovieSummary, id int64) []tmdb.MovieSummary {
	var out []tmdb.MovieSummary
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

func dedupeByID(items []tmdb.MovieSummary) []tmdb.MovieSummary {
	var out []tmdb.MovieSummary
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}
