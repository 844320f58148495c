package repository

import (
	"context"
	"fmt"

	"moviehub/internal/data/entity"
	"moviehub/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	// ListByMovie joins reviews with their authors for display.
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieReview, error)
	// ListByUser returns the user's reviews ordered by rating. ascending
	// selects the sort direction; ties break alphabetically by title.
	ListByUser(ctx context.Context, userID uuid.UUID, ascending bool) ([]*entity.AuthoredReview, error)
	// TopRatedByUser aggregates the user's reviews per movie: average rating
	// descending, then review count descending, then title ascending.
	TopRatedByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RatedMovie, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

// Create inserts a review row. A rating outside 1-10 trips the table's check
// constraint and surfaces as ErrCheckViolation.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, movie_id, rating, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.Body,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("movie_id", review.MovieID.String()),
		)
		return fmt.Errorf("create review for movie %s: %w", review.MovieID.String(), translateError(err))
	}

	return nil
}

func (r *reviewRepository) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieReview, error) {
	query := `
		SELECT u.username, rv.rating, rv.body
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.movie_id = $1
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to list reviews by movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("list reviews for movie %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.MovieReview
	for rows.Next() {
		var review entity.MovieReview
		if err := rows.Scan(&review.Username, &review.Rating, &review.Body); err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID uuid.UUID, ascending bool) ([]*entity.AuthoredReview, error) {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	// direction comes from the bool above, never from user input
	query := fmt.Sprintf(`
		SELECT m.title, rv.rating, rv.body
		FROM reviews rv
		JOIN movies m ON m.id = rv.movie_id
		WHERE rv.user_id = $1
		ORDER BY rv.rating %s, m.title ASC
	`, direction)

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list reviews by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list reviews for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.AuthoredReview
	for rows.Next() {
		var review entity.AuthoredReview
		if err := rows.Scan(&review.MovieTitle, &review.Rating, &review.Body); err != nil {
			r.log.Error("Failed to scan authored review row", zap.Error(err))
			return nil, fmt.Errorf("scan authored review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate authored review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) TopRatedByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RatedMovie, error) {
	query := `
		SELECT m.title, AVG(rv.rating) AS avg_rating, COUNT(*) AS review_count
		FROM reviews rv
		JOIN movies m ON m.id = rv.movie_id
		WHERE rv.user_id = $1
		GROUP BY m.title
		ORDER BY avg_rating DESC, review_count DESC, m.title ASC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		r.log.Error("Failed to aggregate top rated movies",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("top rated movies for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var movies []*entity.RatedMovie
	for rows.Next() {
		var movie entity.RatedMovie
		if err := rows.Scan(&movie.Title, &movie.AvgRating, &movie.ReviewCount); err != nil {
			r.log.Error("Failed to scan rated movie row", zap.Error(err))
			return nil, fmt.Errorf("scan rated movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rated movie rows: %w", err)
	}

	return movies, nil
}
