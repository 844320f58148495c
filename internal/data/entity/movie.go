package entity

type Movie struct {
	Base
	Title string `db:"title"`
	Year  *int   `db:"year"`
}
