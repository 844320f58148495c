package wire

import (
	"moviehub/internal/adaptor"
	"moviehub/internal/data/repository"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWatchlist(
	r chi.Router,
	watchlistHandler *adaptor.WatchlistHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, config.Session.Secret, log))

		r.Post("/movies/add", watchlistHandler.Add)
	})
}
