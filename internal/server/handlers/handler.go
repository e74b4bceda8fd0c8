package handlers

import (
	"errors"
	"net/http"

	"resto-pos/internal/httpx"
	"resto-pos/internal/server/repository"
	"resto-pos/internal/server/service"
)

type Handler struct {
	Orders *OrderHandler
	Tables *TableHandler
	Auth   *AuthHandler
}

func New(svc *service.Service) *Handler {
	return &Handler{
		Orders: &OrderHandler{orders: svc.Orders},
		Tables: &TableHandler{tables: svc.Tables, products: svc.Products},
		Auth:   &AuthHandler{auth: svc.Auth},
	}
}

// Routes registers the full REST surface.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	mux.HandleFunc("GET /api/products", h.Tables.ListProducts)
	mux.HandleFunc("GET /api/tables", h.Tables.List)
	mux.HandleFunc("PUT /api/tables/{tableNumber}/status", h.Tables.UpdateStatus)

	mux.HandleFunc("GET /api/orders", h.Orders.List)
	mux.HandleFunc("GET /api/orders/table/{tableNumber}", h.Orders.ByTable)
	mux.HandleFunc("POST /api/orders", h.Orders.Create)
	mux.HandleFunc("PUT /api/orders/add-items/{orderId}", h.Orders.AddItems)
	mux.HandleFunc("PUT /api/orders/finalize/{orderId}", h.Orders.Finalize)
	// {orderId}/status cannot be registered directly: it neither contains
	// nor is contained by the add-items and finalize patterns, so ServeMux
	// rejects the set. The catch-all IS less specific than both, and the
	// handler parses the id/status segments itself.
	mux.HandleFunc("PUT /api/orders/{path...}", h.Orders.UpdateStatus)
}

// writeError maps service and repository errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteProblem(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, repository.ErrNotFound):
		httpx.WriteProblem(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, service.ErrBadCredentials):
		httpx.WriteProblem(w, http.StatusUnauthorized, "bad_credentials", err.Error())
	default:
		httpx.WriteProblem(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
