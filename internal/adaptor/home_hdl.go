package adaptor

import (
	"net/http"

	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type HomeHandler struct {
	config *utils.Config
	log    *zap.Logger
}

func NewHomeHandler(config *utils.Config, log *zap.Logger) *HomeHandler {
	return &HomeHandler{
		config: config,
		log:    log,
	}
}

// Root handles GET / and sends everyone to the login entry point.
func (h *HomeHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Welcome handles GET /welcome with a JSON status payload.
func (h *HomeHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Welcome to "+h.config.App.Name, nil)
}
