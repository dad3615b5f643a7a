package book

import "errors"

// ErrNotFound is returned when no book matches the requested ISBN.
var ErrNotFound = errors.New("book not found")

// Book is a catalog entry. The catalog is immutable at runtime; the
// only writer is the seed data.
type Book struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
}
