package repository

import (
	"context"
	"fmt"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WatchlistRepository interface {
	// Add inserts a (user, movie) entry. Adding a pair that already exists
	// is a no-op (no-op-on-conflict), the add is idempotent.
	Add(ctx context.Context, userID, movieID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistMovie, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type watchlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWatchlistRepository(db database.PgxIface, log *zap.Logger) WatchlistRepository {
	return &watchlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "watchlist")),
	}
}

func (r *watchlistRepository) Add(ctx context.Context, userID, movieID uuid.UUID) error {
	query := `
		INSERT INTO user_list (id, user_id, movie_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, movie_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, uuid.New(), userID, movieID, time.Now())
	if err != nil {
		r.log.Error("Failed to add watchlist entry",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("add watchlist entry for user %s: %w", userID.String(), err)
	}

	return nil
}

// ListByUser returns the user's watchlist joined with movie data,
// alphabetical by title.
func (r *watchlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistMovie, error) {
	query := `
		SELECT m.title, m.year
		FROM user_list ul
		JOIN movies m ON m.id = ul.movie_id
		WHERE ul.user_id = $1
		ORDER BY m.title ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list watchlist",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list watchlist for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var movies []*entity.WatchlistMovie
	for rows.Next() {
		var movie entity.WatchlistMovie
		if err := rows.Scan(&movie.Title, &movie.Year); err != nil {
			r.log.Error("Failed to scan watchlist row", zap.Error(err))
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate watchlist rows: %w", err)
	}

	return movies, nil
}

func (r *watchlistRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM user_list WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count watchlist entries",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count watchlist for user %s: %w", userID.String(), err)
	}

	return count, nil
}
