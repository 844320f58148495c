package wire

import (
	"moviehub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHome(r chi.Router, homeHandler *adaptor.HomeHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/", homeHandler.Root)
	r.Get("/welcome", homeHandler.Welcome)
}
