package auth

import (
	"errors"
	"time"
)

var (
	// ErrConflict is returned when the username or email is taken.
	ErrConflict = errors.New("user already exists")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is the stored account record. The JSON tags are the persisted
// document schema; API responses use PublicUser so the bcrypt hash
// never leaves the store.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the outward view of an account.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}
