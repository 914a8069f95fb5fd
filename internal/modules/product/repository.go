package product

import "context"

// Repository defines data access for products.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, f Filter) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error

	// SubCategoryBelongsTo reports whether the subcategory exists and is
	// attached to the given category.
	SubCategoryBelongsTo(ctx context.Context, subCategoryID, categoryID string) (bool, error)
}
