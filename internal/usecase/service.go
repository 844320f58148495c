package usecase

import (
	"moviehub/internal/data/repository"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Discover  DiscoverService
	Watchlist WatchlistService
	Review    ReviewService
	Profile   ProfileService
}

func NewService(repo *repository.Repository, cat CatalogClient, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Discover:  NewDiscoverService(cat, log),
		Watchlist: NewWatchlistService(repo, log),
		Review:    NewReviewService(repo, log),
		Profile:   NewProfileService(repo, log),
	}
}
