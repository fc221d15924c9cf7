package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	internal_errors "github.com/lacentralbaja/archivo/internal/errors"
	"github.com/lacentralbaja/archivo/internal/logger"
)

// SessionService mints and checks admin session tokens. There are no user
// accounts; the only claim a token carries is that the bearer presented the
// admin key at login.
type SessionService interface {
	NewToken() (string, error)
	Validate(tokenStr string) error
}

type Sessions struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) SessionService {
	return &Sessions{secretKey, ttl}
}

func (s *Sessions) NewToken() (string, error) {
	if s.secretKey == "" {
		return "", errors.New("session key is not configured")
	}

	claims := jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign session token", "err", err)
		return "", errors.New("can't create token")
	}

	return tokenString, nil
}

func (s *Sessions) Validate(tokenStr string) error {
	// With no configured key, HMAC would verify against the empty string and
	// any forged token would pass. Fail closed instead.
	if s.secretKey == "" {
		return &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}

	if !token.Valid {
		return &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}
	if admin, ok := claims["admin"].(bool); !ok || !admin {
		return &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	return nil
}
