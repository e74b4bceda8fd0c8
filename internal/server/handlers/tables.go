package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"resto-pos/internal/domain"
	"resto-pos/internal/httpx"
	"resto-pos/internal/server/service"
)

type TableHandler struct {
	tables   *service.TableService
	products *service.ProductService
}

func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	tables, err := h.tables.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if tables == nil {
		tables = []domain.Table{}
	}
	httpx.WriteJSON(w, http.StatusOK, tables)
}

func (h *TableHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	tableNumber, err := strconv.Atoi(r.PathValue("tableNumber"))
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "validation_error", "invalid table number")
		return
	}
	var req domain.UpdateTableStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	table, err := h.tables.UpdateStatus(r.Context(), tableNumber, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, table)
}

func (h *TableHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	httpx.WriteJSON(w, http.StatusOK, products)
}
