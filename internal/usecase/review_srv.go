package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"
	"moviehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// Create inserts a review tied to (user, movie), creating the movie row
	// when the title is new. Multiple reviews per pair are allowed.
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) error
	// ForMovie returns reviews with author usernames for a title. An unknown
	// title yields an empty list, not an error.
	ForMovie(ctx context.Context, title string) (*response.ReviewListResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log,
	}
}

func (s *reviewService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) error {
	// 1. Validate input (presence and length; the rating range belongs to
	// the store's check constraint)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Review validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find or create the movie
	movie, err := s.repo.Movie.Upsert(ctx, req.Title, nil)
	if err != nil {
		s.log.Error("Failed to upsert movie", zap.Error(err), zap.String("title", req.Title))
		return fmt.Errorf("failed to save movie")
	}

	// 3. Insert review
	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		MovieID: movie.ID,
		Rating:  req.Rating,
		Body:    req.Body,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrCheckViolation) {
			s.log.Warn("Review rejected by store constraint",
				zap.Int("rating", req.Rating),
				zap.String("user_id", userID.String()),
			)
			return ErrRatingOutOfRange
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("failed to save review")
	}

	s.log.Info("Review created",
		zap.String("user_id", userID.String()),
		zap.String("title", movie.Title),
		zap.Int("rating", req.Rating),
	)

	return nil
}

func (s *reviewService) ForMovie(ctx context.Context, title string) (*response.ReviewListResponse, error) {
	if title == "" {
		return response.ReviewsToResponse("", nil), nil
	}

	movie, err := s.repo.Movie.FindByTitle(ctx, title)
	if err != nil {
		s.log.Error("Failed to find movie", zap.Error(err), zap.String("title", title))
		return nil, fmt.Errorf("failed to load reviews")
	}
	if movie == nil {
		return response.ReviewsToResponse(title, nil), nil
	}

	reviews, err := s.repo.Review.ListByMovie(ctx, movie.ID)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err), zap.String("movie_id", movie.ID.String()))
		return nil, fmt.Errorf("failed to load reviews")
	}

	return response.ReviewsToResponse(movie.Title, reviews), nil
}
