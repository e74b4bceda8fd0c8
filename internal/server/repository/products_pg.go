package repository

import (
	"context"
	"database/sql"
	"fmt"

	"resto-pos/internal/domain"
)

type productsRepo struct {
	db *sql.DB
}

func (r *productsRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price, category, is_available FROM products ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.IsAvailable); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
