package repository

import (
	"context"
	"fmt"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// Upsert finds or creates a movie by title. A later write with a
	// different year updates the stored year (update-on-conflict).
	Upsert(ctx context.Context, title string, year *int) (*entity.Movie, error)
	FindByTitle(ctx context.Context, title string) (*entity.Movie, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Upsert(ctx context.Context, title string, year *int) (*entity.Movie, error) {
	query := `
		INSERT INTO movies (id, title, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (title) DO UPDATE
		SET year = COALESCE(EXCLUDED.year, movies.year), updated_at = EXCLUDED.updated_at
		RETURNING id, title, year, created_at, updated_at
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, uuid.New(), title, year, time.Now()).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert movie",
			zap.Error(err),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("upsert movie %s: %w", title, translateError(err))
	}

	return &movie, nil
}

func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	query := `
		SELECT id, title, year, created_at, updated_at
		FROM movies
		WHERE title = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, title).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by title",
			zap.Error(err),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("find movie by title %s: %w", title, err)
	}

	return &movie, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, year, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return &movie, nil
}
