package adaptor

import (
	"net/http"

	"moviehub/internal/dto/request"
	"moviehub/internal/usecase"
	"moviehub/pkg/render"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type WatchlistHandler struct {
	service usecase.WatchlistService
	engine  *render.Engine
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, engine *render.Engine, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		engine:  engine,
		log:     log,
	}
}

// Add handles POST /movies/add. The add is not a critical path: failures are
// logged and swallowed, and the client lands back on discovery either way.
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	rd := h.engine.For(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		rd.Error(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	req, err := h.decodeAdd(r)
	if err != nil {
		h.log.Warn("Watchlist add: bad request body", zap.Error(err))
		rd.Redirect(w, r, "/discover", http.StatusOK, "Watchlist unchanged")
		return
	}

	if err := h.service.Add(r.Context(), userID, req); err != nil {
		h.log.Warn("Watchlist add failed",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("title", req.Title),
		)
		rd.Redirect(w, r, "/discover", http.StatusOK, "Watchlist unchanged")
		return
	}

	rd.Redirect(w, r, "/discover", http.StatusOK, "Added to watchlist")
}

func (h *WatchlistHandler) decodeAdd(r *http.Request) (*request.AddMovieRequest, error) {
	var req request.AddMovieRequest

	if render.WantsJSON(r) {
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	req.Title = r.PostFormValue("title")
	req.Year = utils.ParseYear(r.PostFormValue("year"))
	return &req, nil
}
