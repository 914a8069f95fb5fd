package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Adjustment is one entry in the append-only stock audit log. Entries are
// never edited or deleted.
type Adjustment struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	ProductID      uuid.UUID  `db:"product_id" json:"productId"`
	QuantityChange int        `db:"quantity_change" json:"quantityChange"`
	Reason         string     `db:"reason" json:"reason"`
	AdjustedBy     *uuid.UUID `db:"adjusted_by" json:"adjustedBy,omitempty"`
	AdjustedAt     time.Time  `db:"adjusted_at" json:"adjustedAt"`
}

// AdjustRequest applies a signed delta to a product's stock.
type AdjustRequest struct {
	ProductID      string `json:"productId"`
	QuantityChange int    `json:"quantityChange"`
	Reason         string `json:"reason"`
}

var (
	// ErrProductNotFound is returned for an unknown product id.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidInput wraps request validation failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNegativeStock is returned when the delta would drive the
	// product's stock below zero.
	ErrNegativeStock = errors.New("adjustment would make stock negative")
)
