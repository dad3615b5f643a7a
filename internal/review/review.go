package review

import (
	"errors"
	"time"
)

var (
	// ErrNotFound: the requesting user has no review for that ISBN.
	ErrNotFound = errors.New("review not found")
	// ErrBookNotFound: the ISBN is not in the catalog.
	ErrBookNotFound = errors.New("book not found")
	// ErrRatingRange: rating outside 1..5.
	ErrRatingRange = errors.New("rating must be between 1 and 5")
)

// Review is one user's review of one book. At most one review exists
// per (isbn, userId) pair; Upsert enforces that by replacing in place.
// Username is denormalized from the authenticated identity at write
// time.
type Review struct {
	ID        string    `json:"id"`
	ISBN      string    `json:"isbn"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Identity is the authenticated user a privileged call acts as.
type Identity struct {
	ID       string
	Username string
}
