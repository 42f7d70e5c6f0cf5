package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sportbuddy_server/models"
)

// SessionService signs and verifies session tokens. Token issuance and
// verification is the whole of its job; who gets a token is decided by
// the UserService.
type SessionService struct {
	Secret []byte
	MaxAge time.Duration
}

// SessionClaims are the claims carried by a session token. Subject holds
// the user id.
type SessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewSessionService creates a session service with a 7-day token lifetime.
func NewSessionService(secret string) *SessionService {
	return &SessionService{Secret: []byte(secret), MaxAge: 7 * 24 * time.Hour}
}

// Issue creates a signed session token for the user.
func (s *SessionService) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.MaxAge)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token. Any failure, including an
// empty token, yields ErrUnauthenticated.
func (s *SessionService) Verify(token string) (*SessionClaims, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
