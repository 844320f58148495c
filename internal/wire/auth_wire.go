package wire

import (
	"moviehub/internal/adaptor"
	"moviehub/internal/data/repository"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/register", authHandler.ShowRegister)
	r.Post("/register", authHandler.Register)
	r.Get("/login", authHandler.ShowLogin)
	r.Post("/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	// Logout requires a session to revoke
	r.With(middleware.AuthSession(repo.Session, repo.User, config.Session.Secret, log)).
		Get("/logout", authHandler.Logout)
}
