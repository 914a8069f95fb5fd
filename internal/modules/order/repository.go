package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for orders.
type Repository interface {
	// PlaceOrder atomically creates the order with its items and
	// decrements the stock of every referenced product. The affected
	// product rows are locked for the duration of the transaction, so
	// the stock check and the decrement cannot be interleaved with a
	// concurrent placement. Any failure leaves the store untouched.
	PlaceOrder(ctx context.Context, userID uuid.UUID, lines []PlacedLine, shippingAddress *string) (*Order, error)

	// GetByID retrieves an order with its items.
	GetByID(ctx context.Context, id string) (*Order, error)

	// List returns orders newest first, optionally filtered to one user
	// and/or one status.
	List(ctx context.Context, userID *uuid.UUID, status Status) ([]*Order, error)

	// UpdateStatus sets a new status and returns the updated order.
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
}
