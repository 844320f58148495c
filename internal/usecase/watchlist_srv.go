package usecase

import (
	"context"
	"fmt"

	"moviehub/internal/data/repository"
	"moviehub/internal/dto/request"
	"moviehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WatchlistService interface {
	// Add upserts the movie by title and inserts the (user, movie) pair.
	// Adding the same pair twice leaves exactly one row.
	Add(ctx context.Context, userID uuid.UUID, req *request.AddMovieRequest) error
}

type watchlistService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWatchlistService(repo *repository.Repository, log *zap.Logger) WatchlistService {
	return &watchlistService{
		repo: repo,
		log:  log,
	}
}

func (s *watchlistService) Add(ctx context.Context, userID uuid.UUID, req *request.AddMovieRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Watchlist add validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find or create the movie
	movie, err := s.repo.Movie.Upsert(ctx, req.Title, req.Year)
	if err != nil {
		s.log.Error("Failed to upsert movie", zap.Error(err), zap.String("title", req.Title))
		return fmt.Errorf("failed to save movie")
	}

	// 3. Idempotent watchlist insert
	if err := s.repo.Watchlist.Add(ctx, userID, movie.ID); err != nil {
		s.log.Error("Failed to add watchlist entry",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("failed to add to watchlist")
	}

	s.log.Info("Movie added to watchlist",
		zap.String("user_id", userID.String()),
		zap.String("title", movie.Title),
	)

	return nil
}
