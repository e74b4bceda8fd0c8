package domain

type CreateOrderRequest struct {
	TableNumber int        `json:"tableNumber"`
	Items       []LineItem `json:"items"`
	Waiter      string     `json:"waiter"`
	Subtotal    float64    `json:"subtotal"`
	GST         float64    `json:"gst"`
	GrandTotal  float64    `json:"grandTotal"`
}

type AddItemsRequest struct {
	Items  []LineItem `json:"items"`
	Waiter string     `json:"waiter"`
}

type UpdateStatusRequest struct {
	Status OrderStatus `json:"status"`
}

type UpdateTableStatusRequest struct {
	Status TableStatus `json:"status"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
