package push

import (
	"testing"

	"resto-pos/internal/domain"
)

// fakeChannel implements the Subscribe contract with events fired by
// hand.
type fakeChannel struct {
	next int
	subs map[string]map[int]Handler
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{subs: make(map[string]map[int]Handler)}
}

func (f *fakeChannel) Subscribe(event string, h Handler) func() {
	if f.subs[event] == nil {
		f.subs[event] = make(map[int]Handler)
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

func TestApplyNewOrderAppends(t *testing.T) {
	orders := []domain.Order{{ID: "a"}}
	orders = ApplyEvent(orders, domain.EventNewOrder, domain.Order{ID: "b"})
	if len(orders) != 2 || orders[1].ID != "b" {
		t.Fatalf("orders = %+v", orders)
	}
}

func TestApplyUpdateReplacesMatch(t *testing.T) {
	orders := []domain.Order{
		{ID: "a", Status: domain.StatusPending},
		{ID: "b", Status: domain.StatusPending},
	}
	orders = ApplyEvent(orders, domain.EventUpdateOrder, domain.Order{ID: "b", Status: domain.StatusReady})
	if orders[1].Status != domain.StatusReady {
		t.Fatalf("order b not replaced: %+v", orders[1])
	}
	if orders[0].Status != domain.StatusPending {
		t.Fatalf("order a touched: %+v", orders[0])
	}
}

// A fragmented listing holds several records for one ID; an update
// collapses them into the pushed order, or a stale fragment would
// re-contribute its items on the next merge.
func TestApplyUpdateCollapsesFragments(t *testing.T) {
	orders := []domain.Order{
		{ID: "a", Items: []domain.LineItem{{Name: "Dosa", Qty: 1}}},
		{ID: "b", Items: []domain.LineItem{{Name: "Idli", Qty: 2}}},
		{ID: "a", Items: []domain.LineItem{{Name: "Vada", Qty: 1}}},
	}
	merged := domain.Order{ID: "a", Status: domain.StatusReady, Items: []domain.LineItem{
		{Name: "Dosa", Qty: 1}, {Name: "Vada", Qty: 1},
	}}
	orders = ApplyEvent(orders, domain.EventUpdateOrder, merged)

	var got []domain.Order
	for _, o := range orders {
		if o.ID == "a" {
			got = append(got, o)
		}
	}
	if len(got) != 1 {
		t.Fatalf("want one record for a, got %d (%+v)", len(got), orders)
	}
	if got[0].Status != domain.StatusReady || len(got[0].Items) != 2 {
		t.Fatalf("record not replaced: %+v", got[0])
	}
	if len(orders) != 2 || orders[1].ID != "b" {
		t.Fatalf("unrelated record disturbed: %+v", orders)
	}
}

func TestApplyUpdateForUnknownIDIsNoop(t *testing.T) {
	orders := []domain.Order{{ID: "a"}}
	out := ApplyEvent(orders, domain.EventUpdateOrder, domain.Order{ID: "ghost"})
	if len(out) != 1 {
		t.Fatalf("collection length changed: %d", len(out))
	}
}

// Out-of-order newOrder/updateOrder for the same ID: last applied wins.
func TestApplyOutOfOrderPairLastWins(t *testing.T) {
	var orders []domain.Order
	// updateOrder arrives first: no-op because the ID is unknown.
	orders = ApplyEvent(orders, domain.EventUpdateOrder, domain.Order{ID: "x", Status: domain.StatusReady})
	orders = ApplyEvent(orders, domain.EventNewOrder, domain.Order{ID: "x", Status: domain.StatusPending})
	if len(orders) != 1 || orders[0].Status != domain.StatusPending {
		t.Fatalf("orders = %+v, want single Pending entry", orders)
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	ch := newFakeChannel()

	var got []domain.Order
	off := ch.Subscribe(domain.EventNewOrder, func(o domain.Order) { got = append(got, o) })

	ch.emit(domain.EventNewOrder, domain.Order{ID: "a"})
	if len(got) != 1 {
		t.Fatalf("handler fired %d times, want 1", len(got))
	}

	off()
	ch.emit(domain.EventNewOrder, domain.Order{ID: "b"})
	if len(got) != 1 {
		t.Fatal("handler fired after unsubscribe")
	}
}

func TestUnsubscribeDetachesOnlyOwnHandler(t *testing.T) {
	ch := newFakeChannel()
	var a, b int
	offA := ch.Subscribe(domain.EventUpdateOrder, func(domain.Order) { a++ })
	ch.Subscribe(domain.EventUpdateOrder, func(domain.Order) { b++ })

	offA()
	ch.emit(domain.EventUpdateOrder, domain.Order{ID: "x"})
	if a != 0 || b != 1 {
		t.Fatalf("a=%d b=%d, want 0 and 1", a, b)
	}
}
