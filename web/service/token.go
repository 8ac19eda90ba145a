package service

import (
	"errors"
	"strings"
	"time"

	"devfolio/config"
	"devfolio/database"
	"devfolio/database/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken   = errors.New("missing token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("expired token")
	ErrUnknownSubject = errors.New("unknown subject")
)

// TokenService issues and validates HS256 bearer tokens carrying the
// username as subject and an absolute expiry.
type TokenService struct {
	settingService SettingService
	userService    UserService
}

// Issue signs a token for the given username, valid for the configured
// TTL.
func (s *TokenService) Issue(username string) (string, error) {
	if username == "" {
		return "", ErrInvalidToken
	}
	secret, err := s.settingService.GetSecret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	ttl := time.Duration(config.GetTokenMinutes()) * time.Minute
	claims := &jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    config.GetName(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Validate checks signature and expiry, then re-resolves the subject to a
// live user record. A token for a deleted user is rejected.
func (s *TokenService) Validate(tokenString string) (*model.User, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrMissingToken
	}
	secret, err := s.settingService.GetSecret()
	if err != nil {
		return nil, err
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userService.GetUser(claims.Subject)
	if database.IsNotFound(err) {
		return nil, ErrUnknownSubject
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// TokenFromHeader extracts the bearer token from an Authorization header.
func TokenFromHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(parts[1]), nil
}
