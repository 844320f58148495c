package repository

import (
	"moviehub/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Movie     MovieRepository
	Watchlist WatchlistRepository
	Review    ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		Movie:     NewMovieRepository(db, log),
		Watchlist: NewWatchlistRepository(db, log),
		Review:    NewReviewRepository(db, log),
	}
}
