package adaptor

import (
	"errors"
	"net/http"

	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"
	"moviehub/internal/usecase"
	"moviehub/pkg/render"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

const genericErrorMessage = "Something went wrong. Please try again later."

type AuthHandler struct {
	service usecase.AuthService
	engine  *render.Engine
	config  *utils.Config
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, engine *render.Engine, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		engine:  engine,
		config:  config,
		log:     log,
	}
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	h.engine.For(r).Page(w, http.StatusOK, "register.html", "", nil)
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	rd := h.engine.For(r)

	req, err := h.decodeCredentials(r)
	if err != nil {
		rd.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	registerReq := request.RegisterRequest(*req)
	resp, err := h.service.Register(r.Context(), &registerReq)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken):
			rd.Page(w, http.StatusBadRequest, "register.html", "That username is already taken. Please pick another.", nil)
		case errors.Is(err, usecase.ErrValidation):
			rd.Page(w, http.StatusBadRequest, "register.html", "Username and password are required.", nil)
		default:
			rd.Page(w, http.StatusInternalServerError, "register.html", genericErrorMessage, nil)
		}
		return
	}

	if rd.JSON() {
		utils.ResponseCreated(w, "Registration successful. Please login.", resp)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.engine.For(r).Page(w, http.StatusOK, "login.html", "", nil)
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	rd := h.engine.For(r)

	req, err := h.decodeCredentials(r)
	if err != nil {
		rd.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	loginReq := request.LoginRequest(*req)
	user, session, err := h.service.Login(r.Context(), &loginReq)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			rd.Page(w, http.StatusBadRequest, "login.html", "Username and password are required.", nil)
		case errors.Is(err, usecase.ErrInvalidCredentials):
			rd.Page(w, http.StatusUnauthorized, "login.html", "Incorrect username or password.", nil)
		default:
			rd.Page(w, http.StatusInternalServerError, "login.html", genericErrorMessage, nil)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    utils.SignToken(session.Token.String(), h.config.Session.Secret),
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if rd.JSON() {
		utils.ResponseSuccess(w, "Login successful", response.AuthToResponse(user, session))
		return
	}

	http.Redirect(w, r, "/discover", http.StatusSeeOther)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	rd := h.engine.For(r)

	if cookie, err := r.Cookie(utils.SessionCookieName); err == nil {
		if token, ok := utils.VerifySignedToken(cookie.Value, h.config.Session.Secret); ok {
			if err := h.service.Logout(r.Context(), token); err != nil {
				h.log.Warn("Logout failed", zap.Error(err))
			}
		}
	}

	// Clear the cookie either way
	http.SetCookie(w, &http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	rd.Redirect(w, r, "/login", http.StatusOK, "Logout successful")
}

// credentials is the shared shape of register and login input.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) decodeCredentials(r *http.Request) (*credentials, error) {
	var req credentials

	if render.WantsJSON(r) {
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	req.Username = r.PostFormValue("username")
	req.Password = r.PostFormValue("password")
	return &req, nil
}
