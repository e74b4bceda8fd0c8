package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"resto-pos/internal/domain"
)

type ordersRepo struct {
	db *sql.DB
}

const orderColumns = `id, table_number, waiter, subtotal, gst, grand_total, status`

func scanOrder(row interface{ Scan(...any) error }) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.TableNumber, &o.Waiter, &o.Subtotal, &o.GST, &o.GrandTotal, &o.Status)
	return o, err
}

func (r *ordersRepo) loadItems(ctx context.Context, orders []domain.Order) error {
	for i := range orders {
		rows, err := r.db.QueryContext(ctx, `
SELECT product_id, name, price, qty, total
FROM order_items WHERE order_id = $1 ORDER BY id`, orders[i].ID)
		if err != nil {
			return fmt.Errorf("load items for %s: %w", orders[i].ID, err)
		}
		for rows.Next() {
			var it domain.LineItem
			if err := rows.Scan(&it.ProductID, &it.Name, &it.Price, &it.Qty, &it.Total); err != nil {
				rows.Close()
				return err
			}
			orders[i].Items = append(orders[i].Items, it)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()
	}
	return nil
}

func (r *ordersRepo) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *ordersRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}
	orders := []domain.Order{o}
	if err := r.loadItems(ctx, orders); err != nil {
		return domain.Order{}, err
	}
	return orders[0], nil
}

// ActiveByTable returns the newest non-completed order for the table.
// Correlation is by table number, so a reused table resolves to the
// latest lifecycle.
func (r *ordersRepo) ActiveByTable(ctx context.Context, tableNumber int) (domain.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, `
SELECT `+orderColumns+` FROM orders
WHERE table_number = $1 AND status <> $2
ORDER BY created_at DESC LIMIT 1`, tableNumber, domain.StatusCompleted))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("active order for table %d: %w", tableNumber, err)
	}
	orders := []domain.Order{o}
	if err := r.loadItems(ctx, orders); err != nil {
		return domain.Order{}, err
	}
	return orders[0], nil
}

func (r *ordersRepo) Create(ctx context.Context, order domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
INSERT INTO orders (id, table_number, waiter, subtotal, gst, grand_total, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`,
		order.ID, order.TableNumber, order.Waiter, order.Subtotal, order.GST, order.GrandTotal, order.Status)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, it := range order.Items {
		_, err = tx.ExecContext(ctx, `
INSERT INTO order_items (order_id, product_id, name, price, qty, total, created_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
			order.ID, it.ProductID, it.Name, it.Price, it.Qty, it.Total)
		if err != nil {
			return fmt.Errorf("insert order item %s: %w", it.Name, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// AppendItems adds a KOT batch to an existing order. Earlier batches are
// never rewritten.
func (r *ordersRepo) AppendItems(ctx context.Context, orderID string, items []domain.LineItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, it := range items {
		_, err = tx.ExecContext(ctx, `
INSERT INTO order_items (order_id, product_id, name, price, qty, total, created_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
			orderID, it.ProductID, it.Name, it.Price, it.Qty, it.Total)
		if err != nil {
			return fmt.Errorf("append order item %s: %w", it.Name, err)
		}
	}
	_, err = tx.ExecContext(ctx, `UPDATE orders SET updated_at = NOW() WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("touch order %s: %w", orderID, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *ordersRepo) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, orderID)
	if err != nil {
		return fmt.Errorf("update status of %s: %w", orderID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ordersRepo) CountToday(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE created_at::date = NOW()::date`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count today's orders: %w", err)
	}
	return count, nil
}
