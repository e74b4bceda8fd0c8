package dashboard

import (
	"context"
	"sync"

	"resto-pos/internal/domain"
	"resto-pos/internal/pos/aggregate"
	"resto-pos/internal/pos/push"
)

// OrdersAPI is the listing slice of the order store the feed needs.
type OrdersAPI interface {
	Orders(ctx context.Context) ([]domain.Order, error)
}

// Feed is one dashboard's live view of the order collection: a full
// reload replaces it wholesale, push events are folded in as they
// arrive. Raw records are kept as received; the fragment merge happens
// on read, so a reload is always the repair path for a missed event.
type Feed struct {
	mu      sync.Mutex
	records []domain.Order
	offNew  func()
	offUpd  func()
}

func NewFeed() *Feed { return &Feed{} }

// Load replaces the feed with a fresh fetch. On failure the previous
// records are kept and the error is returned for a non-blocking notice.
func (f *Feed) Load(ctx context.Context, api OrdersAPI) error {
	records, err := api.Orders(ctx)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.records = records
	f.mu.Unlock()
	return nil
}

// Attach subscribes to both push events. onChange fires after each
// applied event. Call Detach before tearing the view down.
func (f *Feed) Attach(ch push.Channel, onChange func()) {
	apply := func(event string) push.Handler {
		return func(order domain.Order) {
			f.mu.Lock()
			f.records = push.ApplyEvent(f.records, event, order)
			f.mu.Unlock()
			if onChange != nil {
				onChange()
			}
		}
	}
	f.offNew = ch.Subscribe(domain.EventNewOrder, apply(domain.EventNewOrder))
	f.offUpd = ch.Subscribe(domain.EventUpdateOrder, apply(domain.EventUpdateOrder))
}

// Detach removes this feed's handlers. The shared channel stays open.
func (f *Feed) Detach() {
	if f.offNew != nil {
		f.offNew()
		f.offNew = nil
	}
	if f.offUpd != nil {
		f.offUpd()
		f.offUpd = nil
	}
}

// Orders returns the aggregated view: one logical order per ID.
func (f *Feed) Orders() []domain.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return aggregate.Merge(f.records)
}

// OrdersWithStatus filters the aggregated view.
func (f *Feed) OrdersWithStatus(keep func(domain.OrderStatus) bool) []domain.Order {
	var out []domain.Order
	for _, o := range f.Orders() {
		if keep(o.Status) {
			out = append(out, o)
		}
	}
	return out
}
