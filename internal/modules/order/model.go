package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusConfirmed  Status = "Confirmed"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// ParseStatus maps a submitted status name onto a recognized status,
// case-insensitively.
func ParseStatus(s string) (Status, bool) {
	for _, st := range []Status{
		StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled,
	} {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}

// forwardTransitions is the canonical order of states. Any recognized
// status may currently be set from any other; transitions outside this
// table are accepted but logged as suspect.
var forwardTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// IsForwardTransition reports whether from→to follows the canonical chain.
func IsForwardTransition(from, to Status) bool {
	for _, next := range forwardTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is a placed customer order.
type Order struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"userId"`
	UserName        string    `db:"user_name" json:"userName"`
	OrderDate       time.Time `db:"order_date" json:"orderDate"`
	Status          Status    `db:"status" json:"status"`
	ShippingAddress *string   `db:"shipping_address" json:"shippingAddress,omitempty"`
	TotalAmount     float64   `db:"total_amount" json:"totalAmount"`
	Items           []*Item   `json:"items"`
}

// Item is a single line item within an order. Price is the unit price
// captured at placement time and never rewritten.
type Item struct {
	ID          uuid.UUID `db:"id" json:"id"`
	OrderID     uuid.UUID `db:"order_id" json:"orderId"`
	ProductID   uuid.UUID `db:"product_id" json:"productId"`
	ProductName string    `db:"product_name" json:"productName"`
	Quantity    int       `db:"quantity" json:"quantity"`
	Price       float64   `db:"price" json:"price"`
}

// Line is a requested (product, quantity) pair during placement.
type Line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	Items           []Line  `json:"items"`
	ShippingAddress *string `json:"shippingAddress,omitempty"`
}

// UpdateStatusRequest sets a new order status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

var (
	ErrNotFound = errors.New("order not found")

	// ErrInvalidInput wraps request validation failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUserNotFound means the acting user id does not exist; the
	// session is no longer valid.
	ErrUserNotFound = errors.New("user session is invalid")

	// ErrProductNotFound is returned when a requested line references a
	// product that does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when a requested quantity exceeds
	// the product's current stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrUnknownStatus is returned for unrecognized status names.
	ErrUnknownStatus = errors.New("unrecognized order status")
)
