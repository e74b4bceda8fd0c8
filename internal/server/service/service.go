package service

import (
	"context"
	"errors"

	"resto-pos/internal/domain"
	"resto-pos/internal/logger"
	"resto-pos/internal/server/repository"
)

// ErrInvalidInput marks validation failures. Handlers map it to 400.
var ErrInvalidInput = errors.New("invalid input")

// EventPublisher pushes order events to every connected dashboard.
// Delivery is best-effort: a missed event is repaired by the next full
// reload, so publish failures never fail the request that caused them.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event string, order domain.Order) error
}

type Service struct {
	Orders   *OrderService
	Tables   *TableService
	Products *ProductService
	Auth     *AuthService
}

func New(repo *repository.Repository, pub EventPublisher, jwtSecret string, lg *logger.Logger) *Service {
	return &Service{
		Orders:   &OrderService{orders: repo.Orders, tables: repo.Tables, pub: pub, lg: lg},
		Tables:   &TableService{tables: repo.Tables},
		Products: &ProductService{products: repo.Products},
		Auth:     &AuthService{users: repo.Users, secret: []byte(jwtSecret)},
	}
}
