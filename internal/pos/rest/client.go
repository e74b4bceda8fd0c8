// Package rest is the typed client for the order and table stores.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"resto-pos/internal/domain"
)

type Client struct {
	base  string
	http  *http.Client
	token string
}

// NewClient targets baseURL, e.g. "http://localhost:5000". No request
// timeout is set: a hung request never resolves and callers must stay
// responsive around it rather than block on it.
func NewClient(baseURL string) *Client {
	return &Client{base: baseURL, http: &http.Client{}}
}

// SetToken attaches a bearer token to subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &StatusError{Code: resp.StatusCode, Method: method, Path: path}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

type StatusError struct {
	Code   int
	Method string
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Code)
}

func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	var resp domain.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp)
	return resp, err
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := c.do(ctx, http.MethodGet, "/api/products", nil, &out)
	return out, err
}

// Orders returns the raw listing. Records may arrive fragmented; callers
// fold them with aggregate.Merge.
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := c.do(ctx, http.MethodGet, "/api/orders", nil, &out)
	return out, err
}

// OrderByTable looks up the active order for a table. Correlation is by
// the tableNumber value, so a reused table resolves to its newest active
// order. A 404 means no active order.
func (c *Client) OrderByTable(ctx context.Context, tableNumber int) (domain.Order, bool, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodGet, "/api/orders/table/"+strconv.Itoa(tableNumber), nil, &out)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return domain.Order{}, false, nil
		}
		return domain.Order{}, false, err
	}
	return out, true, nil
}

func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", req, &out)
	return out, err
}

func (c *Client) AddItems(ctx context.Context, orderID string, req domain.AddItemsRequest) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodPut, "/api/orders/add-items/"+orderID, req, &out)
	return out, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodPut, "/api/orders/"+orderID+"/status", domain.UpdateStatusRequest{Status: status}, &out)
	return out, err
}

// FinalizeOrder marks the order Completed; the server releases its table.
func (c *Client) FinalizeOrder(ctx context.Context, orderID string) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodPut, "/api/orders/finalize/"+orderID, nil, &out)
	return out, err
}

func (c *Client) Tables(ctx context.Context) ([]domain.Table, error) {
	var out []domain.Table
	err := c.do(ctx, http.MethodGet, "/api/tables", nil, &out)
	return out, err
}

func (c *Client) UpdateTableStatus(ctx context.Context, tableNumber int, status domain.TableStatus) (domain.Table, error) {
	var out domain.Table
	err := c.do(ctx, http.MethodPut, "/api/tables/"+strconv.Itoa(tableNumber)+"/status",
		domain.UpdateTableStatusRequest{Status: status}, &out)
	return out, err
}
