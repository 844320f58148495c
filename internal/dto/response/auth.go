package response

import (
	"time"

	"moviehub/internal/data/entity"
)

type AuthResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

func AuthToResponse(user *entity.User, session *entity.Session) *AuthResponse {
	resp := &AuthResponse{
		UserID:   user.ID.String(),
		Username: user.Username,
	}

	if session != nil {
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
