package wire

import (
	"net/http"

	"moviehub/internal/adaptor"
	"moviehub/internal/data/repository"
	"moviehub/internal/usecase"
	"moviehub/pkg/middleware"
	"moviehub/pkg/render"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, cat usecase.CatalogClient, engine *render.Engine, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, cat, config, logger)
	handler := adaptor.NewHandler(service, engine, config, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Apply routes
	wireHome(r, handler.Home)
	wireAuth(r, handler.Auth, repo, config, logger)
	wireDiscover(r, handler.Discover, repo, config, logger)
	wireWatchlist(r, handler.Watchlist, repo, config, logger)
	wireReview(r, handler.Review, repo, config, logger)
	wireProfile(r, handler.Profile, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
