package request

type AddMovieRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Year  *int   `json:"year,omitempty"`
}
