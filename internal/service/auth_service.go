//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	msgAuthRequired     = "Authentication required"
	msgAuthInvalid      = "Invalid or expired token"
	msgAuthUnconfigured = "Authentication is not configured"
)

// AuthService validates the HS256 access tokens issued by the identity
// provider. The token subject is the user ID.
type AuthService interface {
	ValidateToken(token string) (string, error)
	IssueToken(userID string, ttl time.Duration) (string, error)
}

type authService struct {
	secret []byte
	now    func() time.Time
}

func NewAuthService(secret string) AuthService {
	return &authService{secret: []byte(secret), now: time.Now}
}

func (s *authService) ValidateToken(token string) (string, error) {
	if len(s.secret) == 0 {
		return "", newError(ErrUnauthorized, msgAuthUnconfigured)
	}
	if token == "" {
		return "", newError(ErrUnauthorized, msgAuthRequired)
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", &MessageError{Kind: ErrUnauthorized, Message: msgAuthInvalid, Err: err}
	}
	if claims.Subject == "" {
		return "", &MessageError{Kind: ErrUnauthorized, Message: msgAuthInvalid, Err: errors.New("missing subject")}
	}
	return claims.Subject, nil
}

// IssueToken signs a token for userID. Used by tests and local tooling.
func (s *authService) IssueToken(userID string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", newError(ErrUnauthorized, msgAuthUnconfigured)
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
