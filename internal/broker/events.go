package broker

import "time"

// Event types published on the order events topic.
const (
	EventTypeOrderCreated       = "order.created"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// BaseEvent carries the fields common to all published events.
type BaseEvent struct {
	EventID   string    `json:"eventId"`
	EventType string    `json:"eventType"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderItemData describes one order line inside an event payload.
type OrderItemData struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// OrderCreatedEvent is published after an order is placed.
type OrderCreatedEvent struct {
	BaseEvent
	OrderID     string          `json:"orderId"`
	UserID      string          `json:"userId"`
	TotalAmount float64         `json:"totalAmount"`
	Items       []OrderItemData `json:"items"`
}

// OrderStatusChangedEvent is published after an order's status changes.
type OrderStatusChangedEvent struct {
	BaseEvent
	OrderID   string `json:"orderId"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
}
