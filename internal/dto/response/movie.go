package response

import (
	"moviehub/pkg/catalog"
)

// PlaceholderPoster stands in when the catalog has no poster for a record.
const PlaceholderPoster = "https://via.placeholder.com/300x445?text=No+Poster"

// MovieCard is the uniform display shape for catalog records.
type MovieCard struct {
	Title     string `json:"title"`
	Year      string `json:"year"`
	Poster    string `json:"poster"`
	ImdbID    string `json:"imdb_id"`
	DetailURL string `json:"detail_url"`
}

type DiscoverResponse struct {
	Query   string      `json:"query,omitempty"`
	Notice  string      `json:"notice,omitempty"`
	Results []MovieCard `json:"results,omitempty"`
	Popular []MovieCard `json:"popular,omitempty"`
	TopTen  []MovieCard `json:"top_ten,omitempty"`
}

func CatalogToCard(movie catalog.Movie) MovieCard {
	poster := movie.Poster
	if poster == "" || poster == "N/A" {
		poster = PlaceholderPoster
	}

	return MovieCard{
		Title:     movie.Title,
		Year:      movie.Year,
		Poster:    poster,
		ImdbID:    movie.ImdbID,
		DetailURL: movie.DetailURL(),
	}
}
