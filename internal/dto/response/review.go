package response

import (
	"moviehub/internal/data/entity"
)

type ReviewItem struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Body     string `json:"body"`
}

type ReviewListResponse struct {
	Title   string       `json:"title,omitempty"`
	Reviews []ReviewItem `json:"reviews"`
}

func ReviewsToResponse(title string, reviews []*entity.MovieReview) *ReviewListResponse {
	resp := &ReviewListResponse{
		Title:   title,
		Reviews: make([]ReviewItem, 0, len(reviews)),
	}

	for _, review := range reviews {
		resp.Reviews = append(resp.Reviews, ReviewItem{
			Username: review.Username,
			Rating:   review.Rating,
			Body:     review.Body,
		})
	}

	return resp
}
