package wire

import (
	"moviehub/internal/adaptor"
	"moviehub/internal/data/repository"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, config.Session.Secret, log))

		r.Get("/profile", profileHandler.Overview)
	})
}
