package domain

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusServed    OrderStatus = "Served"
	StatusCompleted OrderStatus = "Completed"
)

// KnownStatus reports whether s is one of the five order statuses.
func KnownStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusServed, StatusCompleted:
		return true
	}
	return false
}

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
)

// LineItem is one row of an order. Total is always Price*Qty; the cart
// recomputes it on every quantity change.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Total     float64 `json:"total"`
}

// Order as served by the order store. The listing endpoint may return
// several records sharing one ID with disjoint item lists (fragments);
// the aggregate package folds those back into one record.
type Order struct {
	ID          string      `json:"id"`
	TableNumber int         `json:"tableNumber"`
	Items       []LineItem  `json:"items"`
	Waiter      string      `json:"waiter"`
	Subtotal    float64     `json:"subtotal"`
	GST         float64     `json:"gst"`
	GrandTotal  float64     `json:"grandTotal"`
	Status      OrderStatus `json:"status"`
}

// Active reports whether the order still holds its table.
func (o Order) Active() bool { return o.Status != StatusCompleted }

type Table struct {
	ID          string      `json:"id"`
	TableNumber int         `json:"tableNumber"`
	Status      TableStatus `json:"status"`
}

// Product is a menu entry. Only available products are offered to waiters.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	IsAvailable bool    `json:"isAvailable"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
