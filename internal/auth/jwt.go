package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"booklist/internal/httpx"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

type Claims struct {
	Sub      string `json:"sub"` // user id
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func GenerateToken(secret, userID, username string, ttl time.Duration) (string, error) {
	c := Claims{
		Sub:      userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

func ParseToken(secret, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}

// Verifier adapts ParseToken for the httpx auth guard.
func Verifier(secret string) httpx.TokenVerifier {
	return func(token string) (string, string, error) {
		claims, err := ParseToken(secret, token)
		if err != nil {
			return "", "", err
		}
		return claims.Sub, claims.Username, nil
	}
}
