package adaptor

import (
	"net/http"

	"moviehub/internal/usecase"
	"moviehub/pkg/render"

	"go.uber.org/zap"
)

type DiscoverHandler struct {
	service usecase.DiscoverService
	engine  *render.Engine
	log     *zap.Logger
}

func NewDiscoverHandler(service usecase.DiscoverService, engine *render.Engine, log *zap.Logger) *DiscoverHandler {
	return &DiscoverHandler{
		service: service,
		engine:  engine,
		log:     log,
	}
}

// Discover handles GET /discover. With a ?title= query it searches the
// catalog, without one it shows the curated lists. Catalog problems are
// already degraded to a notice by the service, this handler never fails.
func (h *DiscoverHandler) Discover(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("title")

	resp := h.service.Discover(r.Context(), query)

	h.engine.For(r).Page(w, http.StatusOK, "discover.html", resp.Notice, resp)
}
