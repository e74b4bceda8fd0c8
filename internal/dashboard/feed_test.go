package dashboard

import (
	"context"
	"errors"
	"testing"

	"resto-pos/internal/domain"
	"resto-pos/internal/pos/push"
)

type fakeOrdersAPI struct {
	orders []domain.Order
	err    error
}

func (f fakeOrdersAPI) Orders(context.Context) ([]domain.Order, error) {
	return f.orders, f.err
}

type fakeChannel struct {
	next int
	subs map[string]map[int]push.Handler
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{subs: make(map[string]map[int]push.Handler)}
}

func (f *fakeChannel) Subscribe(event string, h push.Handler) func() {
	if f.subs[event] == nil {
		f.subs[event] = make(map[int]push.Handler)
	}
	id := f.next
	f.next++
	f.subs[event][id] = h
	return func() { delete(f.subs[event], id) }
}

func (f *fakeChannel) emit(event string, order domain.Order) {
	for _, h := range f.subs[event] {
		h(order)
	}
}

func TestLoadAggregatesFragments(t *testing.T) {
	api := fakeOrdersAPI{orders: []domain.Order{
		{ID: "a", Items: []domain.LineItem{{Name: "dal"}}},
		{ID: "a", Items: []domain.LineItem{{Name: "naan"}}},
	}}
	f := NewFeed()
	if err := f.Load(context.Background(), api); err != nil {
		t.Fatalf("Load: %v", err)
	}
	orders := f.Orders()
	if len(orders) != 1 || len(orders[0].Items) != 2 {
		t.Fatalf("orders = %+v, want one order with two items", orders)
	}
}

func TestLoadFailureKeepsRecords(t *testing.T) {
	f := NewFeed()
	_ = f.Load(context.Background(), fakeOrdersAPI{orders: []domain.Order{{ID: "a"}}})
	if err := f.Load(context.Background(), fakeOrdersAPI{err: errors.New("down")}); err == nil {
		t.Fatal("expected error")
	}
	if len(f.Orders()) != 1 {
		t.Fatal("failed reload wiped local state")
	}
}

func TestPushEventsFoldIntoFeed(t *testing.T) {
	ch := newFakeChannel()
	f := NewFeed()
	var changes int
	f.Attach(ch, func() { changes++ })

	ch.emit(domain.EventNewOrder, domain.Order{ID: "x", Status: domain.StatusPending})
	ch.emit(domain.EventUpdateOrder, domain.Order{ID: "x", Status: domain.StatusReady})
	ch.emit(domain.EventUpdateOrder, domain.Order{ID: "ghost"}) // unknown ID: no-op

	orders := f.Orders()
	if len(orders) != 1 {
		t.Fatalf("orders = %+v", orders)
	}
	if orders[0].Status != domain.StatusReady {
		t.Errorf("status = %q, want Ready", orders[0].Status)
	}
	if changes != 3 {
		t.Errorf("onChange fired %d times, want 3", changes)
	}
}

func TestDetachStopsUpdates(t *testing.T) {
	ch := newFakeChannel()
	f := NewFeed()
	f.Attach(ch, nil)
	f.Detach()

	ch.emit(domain.EventNewOrder, domain.Order{ID: "after"})
	if len(f.Orders()) != 0 {
		t.Fatal("event applied after Detach")
	}
}

func TestOrdersWithStatus(t *testing.T) {
	f := NewFeed()
	_ = f.Load(context.Background(), fakeOrdersAPI{orders: []domain.Order{
		{ID: "a", Status: domain.StatusPending},
		{ID: "b", Status: domain.StatusCompleted},
	}})
	live := f.OrdersWithStatus(func(s domain.OrderStatus) bool { return s != domain.StatusCompleted })
	if len(live) != 1 || live[0].ID != "a" {
		t.Fatalf("live = %+v", live)
	}
}
