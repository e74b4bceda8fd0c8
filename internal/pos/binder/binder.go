// Package binder answers "what is the active order for this table right
// now". The take-order flow and the view-order modal each own one Binder
// with its own fetch lifecycle.
package binder

import (
	"context"
	"sync"

	"resto-pos/internal/domain"
)

// OrderLookup resolves a table number to its active order. ok is false
// when the table has no active order.
type OrderLookup interface {
	OrderByTable(ctx context.Context, tableNumber int) (domain.Order, bool, error)
}

// Binder tracks the currently selected table and its bound active order.
// Every Select bumps a generation counter; a lookup result is applied
// only if its generation is still current when it lands, so a slow fetch
// for an earlier selection can never overwrite a later one.
type Binder struct {
	lookup OrderLookup

	mu    sync.Mutex
	gen   uint64
	table int
	order *domain.Order
}

func New(lookup OrderLookup) *Binder { return &Binder{lookup: lookup} }

// Select binds tableNumber and fetches its active order. A lookup
// failure binds "no active order" rather than surfacing the error: an
// unreachable store and an empty table look the same to the caller.
func (b *Binder) Select(ctx context.Context, tableNumber int) {
	b.mu.Lock()
	b.gen++
	gen := b.gen
	b.table = tableNumber
	b.mu.Unlock()

	order, ok, err := b.lookup.OrderByTable(ctx, tableNumber)
	if err != nil {
		ok = false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.gen {
		return // a later selection already owns the state
	}
	if ok {
		b.order = &order
	} else {
		b.order = nil
	}
}

// Clear drops the selection and the bound order. In-flight lookups from
// earlier selections are discarded when they land.
func (b *Binder) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen++
	b.table = 0
	b.order = nil
}

// Selected returns the bound table number, 0 if none.
func (b *Binder) Selected() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.table
}

// Active returns the bound active order, if any.
func (b *Binder) Active() (domain.Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.order == nil {
		return domain.Order{}, false
	}
	return *b.order, true
}

// Replace swaps the bound order wholesale, keeping the current
// selection. Used after a commit returns the server's merged order.
func (b *Binder) Replace(order domain.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order = &order
}
