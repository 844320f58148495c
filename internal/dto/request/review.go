package request

// CreateReviewRequest carries a review submission. The rating range is not
// validated here, the reviews table's check constraint is the authority.
type CreateReviewRequest struct {
	Title  string `json:"title" validate:"required,max=255"`
	Rating int    `json:"rating" validate:"required"`
	Body   string `json:"body" validate:"required,max=2000"`
}
