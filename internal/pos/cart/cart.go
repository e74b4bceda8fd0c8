// Package cart is the waiter's staging area for new line items before
// they are sent to the kitchen as a KOT.
package cart

import (
	"context"
	"errors"
	"fmt"

	"resto-pos/internal/domain"
)

// GSTRate is the tax applied on the subtotal.
const GSTRate = 0.05

var ErrEmptyCart = errors.New("cart: no items to submit")

// OrderAPI is the slice of the order store the cart needs to commit.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	AddItems(ctx context.Context, orderID string, req domain.AddItemsRequest) (domain.Order, error)
}

type Totals struct {
	Subtotal   float64
	GST        float64
	GrandTotal float64
}

// Cart holds the items for one table visit. It is scoped to a single
// waiter session and is not safe for concurrent use.
type Cart struct {
	items []domain.LineItem
}

func New() *Cart { return &Cart{} }

// AddItem appends a row for the product. Quantities below 1 are treated
// as 1. Adding the same product twice keeps two rows (separate KOT
// lines).
func (c *Cart) AddItem(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	c.items = append(c.items, domain.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Qty:       qty,
		Total:     p.Price * float64(qty),
	})
}

// SetQty changes a row's quantity, clamping at 1, and recomputes the row
// total. Out-of-range indexes are ignored.
func (c *Cart) SetQty(index, qty int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	if qty < 1 {
		qty = 1
	}
	c.items[index].Qty = qty
	c.items[index].Total = c.items[index].Price * float64(qty)
}

// RemoveItem drops a row. Out-of-range indexes are ignored.
func (c *Cart) RemoveItem(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

func (c *Cart) Len() int { return len(c.items) }

// Items returns a copy of the current rows.
func (c *Cart) Items() []domain.LineItem {
	return append([]domain.LineItem(nil), c.items...)
}

// Totals recomputes from the live rows; nothing is cached.
func (c *Cart) Totals() Totals {
	var subtotal float64
	for _, it := range c.items {
		subtotal += it.Total
	}
	gst := subtotal * GSTRate
	return Totals{Subtotal: subtotal, GST: gst, GrandTotal: subtotal + gst}
}

// Commit sends the cart to the kitchen. With an existing active order it
// submits only the staged items as an additive delta and returns the
// server's merged order; otherwise it creates a new order carrying the
// waiter identity and the computed totals. The cart is cleared only on
// success, so a failed submission can be retried as-is.
func (c *Cart) Commit(ctx context.Context, api OrderAPI, tableNumber int, waiter string, existing *domain.Order) (domain.Order, error) {
	if len(c.items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	items := c.Items()

	if existing != nil {
		merged, err := api.AddItems(ctx, existing.ID, domain.AddItemsRequest{Items: items, Waiter: waiter})
		if err != nil {
			return domain.Order{}, fmt.Errorf("add items to order %s: %w", existing.ID, err)
		}
		c.items = nil
		return merged, nil
	}

	totals := c.Totals()
	created, err := api.CreateOrder(ctx, domain.CreateOrderRequest{
		TableNumber: tableNumber,
		Items:       items,
		Waiter:      waiter,
		Subtotal:    totals.Subtotal,
		GST:         totals.GST,
		GrandTotal:  totals.GrandTotal,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order for table %d: %w", tableNumber, err)
	}
	c.items = nil
	return created, nil
}
