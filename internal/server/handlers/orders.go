package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"resto-pos/internal/domain"
	"resto-pos/internal/httpx"
	"resto-pos/internal/server/service"
)

type OrderHandler struct {
	orders *service.OrderService
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) ByTable(w http.ResponseWriter, r *http.Request) {
	tableNumber, err := strconv.Atoi(r.PathValue("tableNumber"))
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "validation_error", "invalid table number")
		return
	}
	order, err := h.orders.ActiveByTable(r.Context(), tableNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	order, err := h.orders.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) AddItems(w http.ResponseWriter, r *http.Request) {
	var req domain.AddItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	merged, err := h.orders.AddItems(r.Context(), r.PathValue("orderId"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, merged)
}

// UpdateStatus serves PUT /api/orders/{orderId}/status. It is mounted on
// a catch-all pattern, so the id and the trailing "status" segment are
// split off here; anything else under the prefix is a 404.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, tail, ok := strings.Cut(r.PathValue("path"), "/")
	if !ok || orderID == "" || tail != "status" {
		http.NotFound(w, r)
		return
	}
	var req domain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	order, err := h.orders.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Finalize(r.Context(), r.PathValue("orderId"))
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, order)
}
