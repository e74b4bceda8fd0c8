package service

import (
	"context"
	"fmt"
	"time"

	"resto-pos/internal/domain"
	"resto-pos/internal/logger"
	"resto-pos/internal/server/repository"
)

type OrderService struct {
	orders repository.Orders
	tables repository.Tables
	pub    EventPublisher
	lg     *logger.Logger
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) ActiveByTable(ctx context.Context, tableNumber int) (domain.Order, error) {
	return s.orders.ActiveByTable(ctx, tableNumber)
}

// Create stores a new order and announces it. The totals are stored as
// the client computed them; the cart owns that arithmetic.
func (s *OrderService) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if req.TableNumber <= 0 {
		return domain.Order{}, fmt.Errorf("%w: table number is required", ErrInvalidInput)
	}
	if req.Waiter == "" {
		return domain.Order{}, fmt.Errorf("%w: waiter is required", ErrInvalidInput)
	}
	if err := validateItems(req.Items); err != nil {
		return domain.Order{}, err
	}

	id, err := s.nextOrderID(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	order := domain.Order{
		ID:          id,
		TableNumber: req.TableNumber,
		Items:       req.Items,
		Waiter:      req.Waiter,
		Subtotal:    req.Subtotal,
		GST:         req.GST,
		GrandTotal:  req.GrandTotal,
		Status:      domain.StatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("save order: %w", err)
	}

	if _, err := s.tables.UpdateStatus(ctx, order.TableNumber, domain.TableOccupied); err != nil {
		s.lg.Error("table_occupy_failed", err, map[string]any{"table": order.TableNumber})
	}
	s.publish(ctx, domain.EventNewOrder, order)
	return order, nil
}

// AddItems appends a KOT batch to an active order and returns the
// server's merged view. Earlier batches are untouched.
func (s *OrderService) AddItems(ctx context.Context, orderID string, req domain.AddItemsRequest) (domain.Order, error) {
	if err := validateItems(req.Items); err != nil {
		return domain.Order{}, err
	}
	existing, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if !existing.Active() {
		return domain.Order{}, fmt.Errorf("%w: order %s is completed", ErrInvalidInput, orderID)
	}
	if err := s.orders.AppendItems(ctx, orderID, req.Items); err != nil {
		return domain.Order{}, fmt.Errorf("append items: %w", err)
	}
	merged, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	s.publish(ctx, domain.EventUpdateOrder, merged)
	return merged, nil
}

// UpdateStatus sets any of the five statuses. Transitions are free-form;
// the kitchen and admin controls offer the full list.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (domain.Order, error) {
	if !domain.KnownStatus(status) {
		return domain.Order{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return domain.Order{}, err
	}
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	s.publish(ctx, domain.EventUpdateOrder, order)
	return order, nil
}

// Finalize completes the order and releases its table.
func (s *OrderService) Finalize(ctx context.Context, orderID string) (domain.Order, error) {
	if err := s.orders.UpdateStatus(ctx, orderID, domain.StatusCompleted); err != nil {
		return domain.Order{}, err
	}
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if _, err := s.tables.UpdateStatus(ctx, order.TableNumber, domain.TableAvailable); err != nil {
		s.lg.Error("table_release_failed", err, map[string]any{"table": order.TableNumber})
	}
	s.publish(ctx, domain.EventUpdateOrder, order)
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, event string, order domain.Order) {
	if err := s.pub.PublishOrderEvent(ctx, event, order); err != nil {
		s.lg.Error("event_publish_failed", err, map[string]any{"event": event, "order": order.ID})
	}
}

// nextOrderID builds ORD_YYYYMMDD_NNN from today's order count.
func (s *OrderService) nextOrderID(ctx context.Context) (string, error) {
	count, err := s.orders.CountToday(ctx)
	if err != nil {
		return "", fmt.Errorf("order sequence: %w", err)
	}
	return fmt.Sprintf("ORD_%s_%03d", time.Now().UTC().Format("20060102"), count+1), nil
}

func validateItems(items []domain.LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}
	for _, it := range items {
		if it.Qty <= 0 {
			return fmt.Errorf("%w: invalid quantity for item %s", ErrInvalidInput, it.Name)
		}
		if it.Price < 0 {
			return fmt.Errorf("%w: invalid price for item %s", ErrInvalidInput, it.Name)
		}
	}
	return nil
}
