package repository

import (
	"context"
	"database/sql"
	"errors"

	"resto-pos/internal/domain"
)

// ErrNotFound is returned by lookups that miss. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

type Orders interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	ActiveByTable(ctx context.Context, tableNumber int) (domain.Order, error)
	Create(ctx context.Context, order domain.Order) error
	AppendItems(ctx context.Context, orderID string, items []domain.LineItem) error
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	CountToday(ctx context.Context) (int, error)
}

type Tables interface {
	List(ctx context.Context) ([]domain.Table, error)
	UpdateStatus(ctx context.Context, tableNumber int, status domain.TableStatus) (domain.Table, error)
}

type Products interface {
	List(ctx context.Context) ([]domain.Product, error)
}

type Users interface {
	Create(ctx context.Context, u domain.User, passwordHash string) error
	GetByEmail(ctx context.Context, email string) (domain.User, string, error)
}

type Repository struct {
	Orders   Orders
	Tables   Tables
	Products Products
	Users    Users
}

func New(db *sql.DB) *Repository {
	return &Repository{
		Orders:   &ordersRepo{db: db},
		Tables:   &tablesRepo{db: db},
		Products: &productsRepo{db: db},
		Users:    &usersRepo{db: db},
	}
}
