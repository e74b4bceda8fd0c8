package binder

import (
	"context"
	"errors"
	"sync"
	"testing"

	"resto-pos/internal/domain"
)

// gatedLookup lets the test observe when a lookup is in flight and
// decide when it completes.
type gatedLookup struct {
	mu      sync.Mutex
	gates   map[int]chan struct{}
	entered map[int]chan struct{}
	byTbl   map[int]domain.Order
	err     error
}

func newGatedLookup() *gatedLookup {
	return &gatedLookup{
		gates:   map[int]chan struct{}{},
		entered: map[int]chan struct{}{},
		byTbl:   map[int]domain.Order{},
	}
}

// gate makes lookups for table block until the returned release channel
// is closed; entered is closed once the lookup is in flight.
func (g *gatedLookup) gate(table int) (release, entered chan struct{}) {
	g.mu.Lock()
	defer g.mu.Unlock()
	release = make(chan struct{})
	entered = make(chan struct{})
	g.gates[table] = release
	g.entered[table] = entered
	return release, entered
}

func (g *gatedLookup) OrderByTable(_ context.Context, table int) (domain.Order, bool, error) {
	g.mu.Lock()
	gate := g.gates[table]
	entered := g.entered[table]
	delete(g.entered, table)
	order, ok := g.byTbl[table]
	err := g.err
	g.mu.Unlock()
	if entered != nil {
		close(entered)
	}
	if gate != nil {
		<-gate
	}
	if err != nil {
		return domain.Order{}, false, err
	}
	return order, ok, nil
}

func TestSelectBindsActiveOrder(t *testing.T) {
	lookup := newGatedLookup()
	lookup.byTbl[3] = domain.Order{ID: "ord3", TableNumber: 3, Status: domain.StatusPending}

	b := New(lookup)
	b.Select(context.Background(), 3)

	got, ok := b.Active()
	if !ok || got.ID != "ord3" {
		t.Fatalf("Active() = %+v, %v; want ord3", got, ok)
	}
	if b.Selected() != 3 {
		t.Errorf("Selected() = %d, want 3", b.Selected())
	}
}

func TestSelectNoOrder(t *testing.T) {
	b := New(newGatedLookup())
	b.Select(context.Background(), 7)
	if _, ok := b.Active(); ok {
		t.Fatal("Active() reported an order for an empty table")
	}
}

func TestLookupFailureMeansNoOrder(t *testing.T) {
	lookup := newGatedLookup()
	lookup.byTbl[2] = domain.Order{ID: "ord2", TableNumber: 2}
	b := New(lookup)
	b.Select(context.Background(), 2)
	if _, ok := b.Active(); !ok {
		t.Fatal("setup: expected an order bound")
	}

	lookup.mu.Lock()
	lookup.err = errors.New("connection refused")
	lookup.mu.Unlock()
	b.Select(context.Background(), 2)
	if _, ok := b.Active(); ok {
		t.Fatal("lookup failure must bind no active order, not keep stale state")
	}
}

// Selection A then B in quick succession, with A's lookup resolving after
// B's: the bound state must reflect B.
func TestStaleResultDiscarded(t *testing.T) {
	lookup := newGatedLookup()
	lookup.byTbl[1] = domain.Order{ID: "ordA", TableNumber: 1}
	lookup.byTbl[2] = domain.Order{ID: "ordB", TableNumber: 2}
	gateA, enteredA := lookup.gate(1)

	b := New(lookup)
	doneA := make(chan struct{})
	go func() {
		b.Select(context.Background(), 1)
		close(doneA)
	}()
	<-enteredA

	// B selected while A is still in flight; B resolves immediately.
	b.Select(context.Background(), 2)

	close(gateA)
	<-doneA

	got, ok := b.Active()
	if !ok || got.ID != "ordB" {
		t.Fatalf("Active() = %+v, %v; want ordB (stale ordA must be discarded)", got, ok)
	}
}

func TestClearDiscardsInFlightLookup(t *testing.T) {
	lookup := newGatedLookup()
	lookup.byTbl[4] = domain.Order{ID: "ord4", TableNumber: 4}
	gate, entered := lookup.gate(4)

	b := New(lookup)
	done := make(chan struct{})
	go func() {
		b.Select(context.Background(), 4)
		close(done)
	}()
	<-entered

	b.Clear()
	close(gate)
	<-done

	if _, ok := b.Active(); ok {
		t.Fatal("lookup landing after Clear must not rebind state")
	}
	if b.Selected() != 0 {
		t.Errorf("Selected() = %d after Clear, want 0", b.Selected())
	}
}

func TestReplaceSwapsBoundOrder(t *testing.T) {
	lookup := newGatedLookup()
	lookup.byTbl[5] = domain.Order{ID: "ord5", TableNumber: 5, Subtotal: 100}
	b := New(lookup)
	b.Select(context.Background(), 5)

	b.Replace(domain.Order{ID: "ord5", TableNumber: 5, Subtotal: 250})
	got, _ := b.Active()
	if got.Subtotal != 250 {
		t.Fatalf("Replace did not take: subtotal = %v", got.Subtotal)
	}
}
