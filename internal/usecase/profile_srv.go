package usecase

import (
	"context"
	"fmt"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// topMoviesLimit caps the profile's best-movies aggregation.
const topMoviesLimit = 10

type ProfileService interface {
	// Overview runs the three profile reads concurrently and waits for all
	// of them. order is "asc" or "desc" (default) for the review list.
	Overview(ctx context.Context, userID uuid.UUID, username, order string) (*response.ProfileResponse, error)
}

type profileService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfileService(repo *repository.Repository, log *zap.Logger) ProfileService {
	return &profileService{
		repo: repo,
		log:  log,
	}
}

func (s *profileService) Overview(ctx context.Context, userID uuid.UUID, username, order string) (*response.ProfileResponse, error) {
	if order != "asc" {
		order = "desc"
	}

	var (
		watchlist []*entity.WatchlistMovie
		reviews   []*entity.AuthoredReview
		top       []*entity.RatedMovie
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		watchlist, err = s.repo.Watchlist.ListByUser(groupCtx, userID)
		return err
	})

	group.Go(func() error {
		var err error
		reviews, err = s.repo.Review.ListByUser(groupCtx, userID, order == "asc")
		return err
	})

	group.Go(func() error {
		var err error
		top, err = s.repo.Review.TopRatedByUser(groupCtx, userID, topMoviesLimit)
		return err
	})

	if err := group.Wait(); err != nil {
		s.log.Error("Failed to load profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("failed to load profile")
	}

	return response.ProfileToResponse(username, order, watchlist, reviews, top), nil
}
