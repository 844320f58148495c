package adaptor

import (
	"net/http"

	"moviehub/internal/usecase"
	"moviehub/pkg/render"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	engine  *render.Engine
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, engine *render.Engine, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		engine:  engine,
		log:     log,
	}
}

// Overview handles GET /profile. A failure in any of the three reads
// degrades to a redirect back to discovery rather than a partial render.
func (h *ProfileHandler) Overview(w http.ResponseWriter, r *http.Request) {
	rd := h.engine.For(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		rd.Error(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}
	username, _ := utils.GetUsernameFromContext(r.Context())

	order := r.URL.Query().Get("order")

	resp, err := h.service.Overview(r.Context(), userID, username, order)
	if err != nil {
		rd.Redirect(w, r, "/discover", http.StatusInternalServerError, genericErrorMessage)
		return
	}

	rd.Page(w, http.StatusOK, "profile.html", "", resp)
}
