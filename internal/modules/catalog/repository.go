package catalog

import "context"

// Repository defines data access for categories and subcategories.
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	UpdateCategory(ctx context.Context, c *Category) error

	// DeleteCategory removes a category and, by schema policy, its
	// subcategories. It fails with ErrCategoryInUse while products still
	// reference the category.
	DeleteCategory(ctx context.Context, id string) error

	CreateSubCategory(ctx context.Context, sc *SubCategory) error
	GetSubCategoryByID(ctx context.Context, id string) (*SubCategory, error)
	ListSubCategories(ctx context.Context, categoryID string) ([]*SubCategory, error)
	UpdateSubCategory(ctx context.Context, sc *SubCategory) error
	DeleteSubCategory(ctx context.Context, id string) error
}
