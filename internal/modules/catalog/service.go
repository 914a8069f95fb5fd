package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines catalog business logic for categories and subcategories.
type Service interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategory(ctx context.Context, id string) (*Category, error)
	CreateCategory(ctx context.Context, req CategoryRequest) (*Category, error)
	UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListSubCategories(ctx context.Context, categoryID string) ([]*SubCategory, error)
	GetSubCategory(ctx context.Context, id string) (*SubCategory, error)
	CreateSubCategory(ctx context.Context, req SubCategoryRequest) (*SubCategory, error)
	UpdateSubCategory(ctx context.Context, id string, req SubCategoryRequest) (*SubCategory, error)
	DeleteSubCategory(ctx context.Context, id string) error
}

// CategoryRequest holds the data for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SubCategoryRequest holds the data for creating or updating a subcategory.
type SubCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  string `json:"categoryId"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) GetCategory(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetCategoryByID(ctx, id)
}

func (s *service) CreateCategory(ctx context.Context, req CategoryRequest) (*Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	c := &Category{ID: uuid.New(), Name: req.Name, Description: req.Description}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*Category, error) {
	c, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = req.Name
	c.Description = req.Description
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *service) ListSubCategories(ctx context.Context, categoryID string) ([]*SubCategory, error) {
	return s.repo.ListSubCategories(ctx, categoryID)
}

func (s *service) GetSubCategory(ctx context.Context, id string) (*SubCategory, error) {
	return s.repo.GetSubCategoryByID(ctx, id)
}

func (s *service) CreateSubCategory(ctx context.Context, req SubCategoryRequest) (*SubCategory, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid categoryId", ErrInvalidInput)
	}
	sc := &SubCategory{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  categoryID,
	}
	if err := s.repo.CreateSubCategory(ctx, sc); err != nil {
		return nil, err
	}
	return s.repo.GetSubCategoryByID(ctx, sc.ID.String())
}

func (s *service) UpdateSubCategory(ctx context.Context, id string, req SubCategoryRequest) (*SubCategory, error) {
	sc, err := s.repo.GetSubCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid categoryId", ErrInvalidInput)
	}
	sc.Name = req.Name
	sc.Description = req.Description
	sc.CategoryID = categoryID
	if err := s.repo.UpdateSubCategory(ctx, sc); err != nil {
		return nil, err
	}
	return s.repo.GetSubCategoryByID(ctx, id)
}

func (s *service) DeleteSubCategory(ctx context.Context, id string) error {
	return s.repo.DeleteSubCategory(ctx, id)
}
