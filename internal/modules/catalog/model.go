package catalog

import (
	"errors"

	"github.com/google/uuid"
)

// Category is a top-level grouping of products.
type Category struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
}

// SubCategory is a finer grouping belonging to exactly one category.
type SubCategory struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	CategoryID   uuid.UUID `db:"category_id" json:"categoryId"`
	CategoryName string    `db:"category_name" json:"categoryName"`
}

var (
	ErrNotFound = errors.New("catalog entry not found")

	// ErrInvalidInput wraps request validation failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCategoryInUse is returned when deleting a category that still
	// has products attached.
	ErrCategoryInUse = errors.New("category still referenced by products")

	// ErrSubCategoryInUse is the same restriction for subcategories.
	ErrSubCategoryInUse = errors.New("subcategory still referenced by products")

	// ErrCategoryMissing is returned when a subcategory references a
	// category that does not exist.
	ErrCategoryMissing = errors.New("referenced category does not exist")
)
