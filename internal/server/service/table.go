package service

import (
	"context"
	"fmt"

	"resto-pos/internal/domain"
	"resto-pos/internal/server/repository"
)

type TableService struct {
	tables repository.Tables
}

func (s *TableService) List(ctx context.Context) ([]domain.Table, error) {
	return s.tables.List(ctx)
}

func (s *TableService) UpdateStatus(ctx context.Context, tableNumber int, status domain.TableStatus) (domain.Table, error) {
	if status != domain.TableAvailable && status != domain.TableOccupied {
		return domain.Table{}, fmt.Errorf("%w: unknown table status %q", ErrInvalidInput, status)
	}
	return s.tables.UpdateStatus(ctx, tableNumber, status)
}

type ProductService struct {
	products repository.Products
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}
