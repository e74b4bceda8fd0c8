package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"resto-pos/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type fakeAuth struct {
	resp domain.LoginResponse
	err  error
}

func (f fakeAuth) Login(context.Context, domain.LoginRequest) (domain.LoginResponse, error) {
	return f.resp, f.err
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestLoginBuildsSession(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	api := fakeAuth{resp: domain.LoginResponse{
		Token: signedToken(t, exp),
		User:  domain.User{ID: "u1", Name: "Asha", Role: domain.RoleWaiter},
	}}

	s, err := Login(context.Background(), api, "asha@resto", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.Role() != domain.RoleWaiter {
		t.Errorf("Role() = %q", s.Role())
	}
	if !s.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want %v", s.ExpiresAt, exp)
	}
	if s.Expired(time.Now()) {
		t.Error("fresh session reported expired")
	}
	if !s.Expired(exp.Add(time.Minute)) {
		t.Error("session not expired after its expiry")
	}
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	api := fakeAuth{resp: domain.LoginResponse{
		Token: "t",
		User:  domain.User{ID: "u2", Role: "manager"},
	}}
	if _, err := Login(context.Background(), api, "x", "y"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("err = %v, want ErrUnknownRole", err)
	}
}

func TestLoginPropagatesAuthFailure(t *testing.T) {
	api := fakeAuth{err: errors.New("bad credentials")}
	if _, err := Login(context.Background(), api, "x", "y"); err == nil {
		t.Fatal("expected error")
	}
}

func TestSessionWithoutExpiryNeverExpires(t *testing.T) {
	s := &Session{User: domain.User{Role: domain.RoleAdmin}}
	if s.Expired(time.Now().Add(1000 * time.Hour)) {
		t.Fatal("zero expiry must mean no local expiry")
	}
}
