package adaptor

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"moviehub/internal/dto/request"
	"moviehub/internal/usecase"
	"moviehub/pkg/render"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	engine  *render.Engine
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, engine *render.Engine, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		engine:  engine,
		log:     log,
	}
}

// List handles GET /reviews?title=. An unknown title shows an empty list.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	rd := h.engine.For(r)

	title := r.URL.Query().Get("title")

	resp, err := h.service.ForMovie(r.Context(), title)
	if err != nil {
		rd.Error(w, http.StatusInternalServerError, genericErrorMessage, nil)
		return
	}

	rd.Page(w, http.StatusOK, "reviews.html", "", resp)
}

// New handles GET /reviews/new
func (h *ReviewHandler) New(w http.ResponseWriter, r *http.Request) {
	h.engine.For(r).Page(w, http.StatusOK, "review_new.html", "", nil)
}

// Create handles POST /reviews/add
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	rd := h.engine.For(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		rd.Error(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	req, err := h.decodeCreate(r)
	if err != nil {
		rd.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.service.Create(r.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			rd.Page(w, http.StatusBadRequest, "review_new.html", "Title, rating and review text are required.", nil)
		case errors.Is(err, usecase.ErrRatingOutOfRange):
			rd.Page(w, http.StatusBadRequest, "review_new.html", "Rating must be between 1 and 10.", nil)
		default:
			// Non-critical path: log and send the client back
			h.log.Warn("Review create failed",
				zap.Error(err),
				zap.String("user_id", userID.String()),
			)
			rd.Redirect(w, r, "/discover", http.StatusOK, "Review not saved")
		}
		return
	}

	if rd.JSON() {
		utils.ResponseCreated(w, "Review submitted", nil)
		return
	}

	http.Redirect(w, r, "/reviews?title="+url.QueryEscape(req.Title), http.StatusSeeOther)
}

func (h *ReviewHandler) decodeCreate(r *http.Request) (*request.CreateReviewRequest, error) {
	var req request.CreateReviewRequest

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
	req.Body = r.PostFormValue("body")
	// A non-numeric rating becomes 0 and fails required validation
	req.Rating, _ = strconv.Atoi(r.PostFormValue("rating"))
	return &req, nil
}
