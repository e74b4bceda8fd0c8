package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resto-pos/internal/domain"
	"resto-pos/internal/server/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCredentials = errors.New("invalid email or password")

type AuthService struct {
	users  repository.Users
	secret []byte
}

func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return domain.User{}, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	u := domain.User{
		ID:    fmt.Sprintf("USR_%d", time.Now().UnixNano()),
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}
	if err := s.users.Create(ctx, u, string(hash)); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	u, hash, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.LoginResponse{}, ErrBadCredentials
	}
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return domain.LoginResponse{}, ErrBadCredentials
	}

	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": string(u.Role),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return domain.LoginResponse{}, fmt.Errorf("sign token: %w", err)
	}
	return domain.LoginResponse{Token: token, User: u}, nil
}
