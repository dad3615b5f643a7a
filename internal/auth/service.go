package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booklist/internal/storage"
)

// Service handles registration and login over the users collection.
type Service struct {
	secret string
	store  storage.Store
}

func NewService(secret string, store storage.Store) *Service {
	return &Service{secret: secret, store: store}
}

func (s *Service) loadUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	if err := s.store.Load(ctx, storage.CollectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Register creates an account. ErrConflict when the username or email
// is already taken.
func (s *Service) Register(ctx context.Context, username, email, password string) (PublicUser, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return PublicUser{}, err
	}

	for _, u := range users {
		if u.Username == username || u.Email == email {
			return PublicUser{}, ErrConflict
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return PublicUser{}, err
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	users = append(users, user)
	if err := s.store.Save(ctx, storage.CollectionUsers, users); err != nil {
		return PublicUser{}, err
	}
	return user.Public(), nil
}

// Login verifies the credentials and issues a session token. Unknown
// username and wrong password both come back as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, PublicUser, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return "", PublicUser{}, err
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		if !VerifyPassword(u.PasswordHash, password) {
			return "", PublicUser{}, ErrInvalidCredentials
		}
		token, err := GenerateToken(s.secret, u.ID, u.Username, TokenTTL)
		if err != nil {
			return "", PublicUser{}, err
		}
		return token, u.Public(), nil
	}
	return "", PublicUser{}, ErrInvalidCredentials
}
