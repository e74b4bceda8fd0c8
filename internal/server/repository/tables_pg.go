package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"resto-pos/internal/domain"
)

type tablesRepo struct {
	db *sql.DB
}

func (r *tablesRepo) List(ctx context.Context) ([]domain.Table, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, table_number, status FROM tables ORDER BY table_number`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []domain.Table
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.TableNumber, &t.Status); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *tablesRepo) UpdateStatus(ctx context.Context, tableNumber int, status domain.TableStatus) (domain.Table, error) {
	var t domain.Table
	err := r.db.QueryRowContext(ctx, `
UPDATE tables SET status = $1 WHERE table_number = $2
RETURNING id, table_number, status`, status, tableNumber).
		Scan(&t.ID, &t.TableNumber, &t.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Table{}, ErrNotFound
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("update table %d: %w", tableNumber, err)
	}
	return t, nil
}
