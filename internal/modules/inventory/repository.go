package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for stock adjustments.
type Repository interface {
	// ApplyAdjustment updates the product's stock and appends the audit
	// row in one transaction; both happen or neither does. The product
	// row is locked while the new stock level is checked.
	ApplyAdjustment(ctx context.Context, productID uuid.UUID, change int, reason string, adjustedBy *uuid.UUID) (*Adjustment, error)

	// History returns a product's adjustments, newest first.
	History(ctx context.Context, productID string) ([]*Adjustment, error)
}
