package response

import (
	"moviehub/internal/data/entity"
)

type WatchlistItem struct {
	Title string `json:"title"`
	Year  *int   `json:"year,omitempty"`
}

type AuthoredReviewItem struct {
	MovieTitle string `json:"movie_title"`
	Rating     int    `json:"rating"`
	Body       string `json:"body"`
}

type TopMovieItem struct {
	Title       string  `json:"title"`
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int64   `json:"review_count"`
}

type ProfileResponse struct {
	Username  string               `json:"username"`
	Order     string               `json:"order"`
	Watchlist []WatchlistItem      `json:"watchlist"`
	Reviews   []AuthoredReviewItem `json:"reviews"`
	Top       []TopMovieItem       `json:"top"`
}

func ProfileToResponse(
	username, order string,
	watchlist []*entity.WatchlistMovie,
	reviews []*entity.AuthoredReview,
	top []*entity.RatedMovie,
) *ProfileResponse {
	resp := &ProfileResponse{
		Username:  username,
		Order:     order,
		Watchlist: make([]WatchlistItem, 0, len(watchlist)),
		Reviews:   make([]AuthoredReviewItem, 0, len(reviews)),
		Top:       make([]TopMovieItem, 0, len(top)),
	}

	for _, movie := range watchlist {
		resp.Watchlist = append(resp.Watchlist, WatchlistItem{Title: movie.Title, Year: movie.Year})
	}

	for _, review := range reviews {
		resp.Reviews = append(resp.Reviews, AuthoredReviewItem{
			MovieTitle: review.MovieTitle,
			Rating:     review.Rating,
			Body:       review.Body,
		})
	}

	for _, movie := range top {
		resp.Top = append(resp.Top, TopMovieItem{
			Title:       movie.Title,
			AvgRating:   movie.AvgRating,
			ReviewCount: movie.ReviewCount,
		})
	}

	return resp
}
