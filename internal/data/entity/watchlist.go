package entity

import (
	"github.com/google/uuid"
)

type WatchlistEntry struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	MovieID uuid.UUID `db:"movie_id"`
}

// WatchlistMovie is the read shape for the profile page: entry joined with
// the movie it points at.
type WatchlistMovie struct {
	Title string
	Year  *int
}
