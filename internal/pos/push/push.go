// Package push bridges server-pushed order events into dashboard state.
//
// The channel is an injectable dependency so binder and dashboard code
// can be tested against a fake. The real implementation rides the shared
// process-wide RabbitMQ connection.
package push

import "resto-pos/internal/domain"

type Handler func(domain.Order)

// Channel delivers named order events. Subscribe returns the function
// that detaches this handler; a dashboard must call it on teardown so no
// handler fires against a torn-down view. Detaching never closes the
// underlying connection.
type Channel interface {
	Subscribe(event string, h Handler) (unsubscribe func())
}

// ApplyEvent folds one push event into a local order collection.
// newOrder appends; updateOrder makes the pushed order the ID's only
// record, collapsing any fragments a listing held for it (a stale
// fragment left behind would re-contribute its items on the next
// merge). Updates for an absent ID are a no-op. Events are applied in
// arrival order with no cross-event reordering, so the last applied
// event wins.
func ApplyEvent(orders []domain.Order, event string, order domain.Order) []domain.Order {
	switch event {
	case domain.EventNewOrder:
		return append(orders, order)
	case domain.EventUpdateOrder:
		replaced := false
		out := orders[:0]
		for _, rec := range orders {
			if rec.ID == order.ID {
				if replaced {
					continue
				}
				rec = order
				replaced = true
			}
			out = append(out, rec)
		}
		return out
	}
	return orders
}
