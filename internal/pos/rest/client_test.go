package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resto-pos/internal/domain"
)

func TestOrderByTableFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders/table/4" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(domain.Order{ID: "ord4", TableNumber: 4, Status: domain.StatusPending})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	order, ok, err := c.OrderByTable(context.Background(), 4)
	if err != nil || !ok {
		t.Fatalf("OrderByTable: %v, ok=%v", err, ok)
	}
	if order.ID != "ord4" {
		t.Errorf("order = %+v", order)
	}
}

func TestOrderByTableNotFoundIsNoOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, ok, err := NewClient(srv.URL).OrderByTable(context.Background(), 9)
	if err != nil {
		t.Fatalf("404 must not be an error, got %v", err)
	}
	if ok {
		t.Fatal("ok = true for a table without an order")
	}
}

func TestOrderByTableServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL).OrderByTable(context.Background(), 9)
	if err == nil {
		t.Fatal("expected error for 500")
	}
}

func TestCreateOrderSendsPayloadAndToken(t *testing.T) {
	var got domain.CreateOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(domain.Order{ID: "new", TableNumber: got.TableNumber})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok")
	order, err := c.CreateOrder(context.Background(), domain.CreateOrderRequest{
		TableNumber: 3, Waiter: "w1", Subtotal: 100, GST: 5, GrandTotal: 105,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if got.GrandTotal != 105 || order.TableNumber != 3 {
		t.Errorf("request %+v, response %+v", got, order)
	}
}

func TestFinalizeOrderPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/orders/finalize/ord1" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(domain.Order{ID: "ord1", Status: domain.StatusCompleted})
	}))
	defer srv.Close()

	order, err := NewClient(srv.URL).FinalizeOrder(context.Background(), "ord1")
	if err != nil {
		t.Fatalf("FinalizeOrder: %v", err)
	}
	if order.Status != domain.StatusCompleted {
		t.Errorf("status = %q", order.Status)
	}
}
