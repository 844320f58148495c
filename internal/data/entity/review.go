package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	MovieID uuid.UUID `db:"movie_id"`
	Rating  int       `db:"rating"` // 1-10, enforced by a check constraint
	Body    string    `db:"body"`
}

// MovieReview is the read shape for a movie's review page: review joined with
// its author's username.
type MovieReview struct {
	Username string
	Rating   int
	Body     string
}

// AuthoredReview is the read shape for the profile page: review joined with
// the movie title.
type AuthoredReview struct {
	MovieTitle string
	Rating     int
	Body       string
}

// RatedMovie is one row of the profile's top-movies aggregation.
type RatedMovie struct {
	Title       string
	AvgRating   float64
	ReviewCount int64
}
