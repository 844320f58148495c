package adaptor

import (
	"encoding/json"
	"net/http"

	"moviehub/internal/usecase"
	"moviehub/pkg/render"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Home      *HomeHandler
	Auth      *AuthHandler
	Discover  *DiscoverHandler
	Watchlist *WatchlistHandler
	Review    *ReviewHandler
	Profile   *ProfileHandler
}

func NewHandler(service *usecase.Service, engine *render.Engine, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Home:      NewHomeHandler(config, log),
		Auth:      NewAuthHandler(service.Auth, engine, config, log),
		Discover:  NewDiscoverHandler(service.Discover, engine, log),
		Watchlist: NewWatchlistHandler(service.Watchlist, engine, log),
		Review:    NewReviewHandler(service.Review, engine, log),
		Profile:   NewProfileHandler(service.Profile, engine, log),
	}
}

// decodeJSON reads a JSON request body. Form bodies are parsed per-handler,
// browser forms and API clients share the same routes.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
