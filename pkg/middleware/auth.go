package middleware

import (
	"net/http"

	"moviehub/internal/data/repository"
	"moviehub/pkg/render"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession gates every route registered behind it. It verifies the signed
// session cookie, loads the session and its user, and puts the identity into
// the request context. Anything short of a valid session means the handler
// body never runs: browser clients are redirected to /login, JSON clients
// get a 401.
func AuthSession(sessions repository.SessionRepository, users repository.UserRepository, secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(utils.SessionCookieName)
			if err != nil {
				deny(w, r)
				return
			}

			token, ok := utils.VerifySignedToken(cookie.Value, secret)
			if !ok {
				logger.Warn("Session cookie with bad signature", zap.String("path", r.URL.Path))
				deny(w, r)
				return
			}

			session, err := sessions.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				deny(w, r)
				return
			}
			if session == nil {
				deny(w, r)
				return
			}

			user, err := users.FindByID(r.Context(), session.UserID)
			if err != nil || user == nil {
				if err != nil {
					logger.Error("Failed to load session user", zap.Error(err))
				}
				deny(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request) {
	if render.WantsJSON(r) {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
