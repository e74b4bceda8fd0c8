// Package session holds the logged-in user for one dashboard process.
// The session is constructed by an explicit Login and passed down to the
// components that need it; there is no ambient storage.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resto-pos/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnknownRole = errors.New("session: user has no dashboard role")

// AuthAPI is the slice of the backend the session needs.
type AuthAPI interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
}

type Session struct {
	User      domain.User
	Token     string
	ExpiresAt time.Time // zero when the token carries no expiry
}

// Login authenticates and builds the session. The role must be one of
// the three dashboard roles or the login is rejected here, before any
// dashboard starts.
func Login(ctx context.Context, api AuthAPI, email, password string) (*Session, error) {
	resp, err := api.Login(ctx, domain.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if _, ok := domain.ParseRole(string(resp.User.Role)); !ok {
		return nil, ErrUnknownRole
	}
	s := &Session{User: resp.User, Token: resp.Token}

	// The dashboard cannot verify the signature (the secret is the
	// server's); it only reads the expiry for a local logout cue.
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(resp.Token, &claims); err == nil && claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

func (s *Session) Role() domain.Role { return s.User.Role }

// Expired reports whether the token's expiry has passed. Sessions
// without an expiry never expire locally.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
