package wire

import (
	"moviehub/internal/adaptor"
	"moviehub/internal/data/repository"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, config.Session.Secret, log))

		r.Get("/reviews", reviewHandler.List)
		r.Get("/reviews/new", reviewHandler.New)
		r.Post("/reviews/add", reviewHandler.Create)
	})
}
