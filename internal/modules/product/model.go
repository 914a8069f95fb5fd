package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item in the catalog.
type Product struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	Name            string     `db:"name" json:"name"`
	Description     string     `db:"description" json:"description"`
	CategoryID      uuid.UUID  `db:"category_id" json:"categoryId"`
	CategoryName    string     `db:"category_name" json:"categoryName"`
	SubCategoryID   *uuid.UUID `db:"subcategory_id" json:"subCategoryId,omitempty"`
	SubCategoryName *string    `db:"subcategory_name" json:"subCategoryName,omitempty"`
	Price           float64    `db:"price" json:"price"`
	Stock           int        `db:"stock" json:"stock"`
	ImageURL        *string    `db:"image_url" json:"imageUrl,omitempty"`
	VendorID        uuid.UUID  `db:"vendor_id" json:"vendorId"`
	VendorName      string     `db:"vendor_name" json:"vendorName"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
}

// Filter narrows product listings.
type Filter struct {
	CategoryID    string
	SubCategoryID string
	Search        string
}

var (
	ErrNotFound = errors.New("product not found")

	// ErrInvalidInput wraps request validation failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSubCategoryMismatch is returned when the subcategory does not
	// belong to the product's category.
	ErrSubCategoryMismatch = errors.New("subcategory does not belong to the selected category")

	// ErrReferenceMissing is returned when the category or vendor a
	// product points at does not exist.
	ErrReferenceMissing = errors.New("referenced category or vendor does not exist")

	// ErrInUse is returned when deleting a product that order items or
	// adjustments still reference.
	ErrInUse = errors.New("product still referenced by orders")
)
