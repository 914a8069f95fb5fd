package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines product business logic.
type Service interface {
	List(ctx context.Context, f Filter) ([]*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, req CreateRequest) (*Product, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Product, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest holds the data for creating a product.
type CreateRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	CategoryID    string  `json:"categoryId"`
	SubCategoryID *string `json:"subCategoryId,omitempty"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	VendorID      string  `json:"vendorId"`
}

// UpdateRequest holds a partial product update; nil fields are left
// untouched.
type UpdateRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	CategoryID    *string  `json:"categoryId,omitempty"`
	SubCategoryID *string  `json:"subCategoryId,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Stock         *int     `json:"stock,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	VendorID      *string  `json:"vendorId,omitempty"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) List(ctx context.Context, f Filter) ([]*Product, error) {
	return s.repo.List(ctx, f)
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid categoryId", ErrInvalidInput)
	}
	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vendorId", ErrInvalidInput)
	}

	p := &Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  categoryID,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		VendorID:    vendorID,
	}

	if req.SubCategoryID != nil && *req.SubCategoryID != "" {
		scID, err := uuid.Parse(*req.SubCategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid subCategoryId", ErrInvalidInput)
		}
		if err := s.checkSubCategory(ctx, scID, categoryID); err != nil {
			return nil, err
		}
		p.SubCategoryID = &scID
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, p.ID.String())
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid categoryId", ErrInvalidInput)
		}
		p.CategoryID = categoryID
	}
	if req.SubCategoryID != nil {
		if *req.SubCategoryID == "" {
			p.SubCategoryID = nil
		} else {
			scID, err := uuid.Parse(*req.SubCategoryID)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid subCategoryId", ErrInvalidInput)
			}
			p.SubCategoryID = &scID
		}
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		p.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
		}
		p.Stock = *req.Stock
	}
	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}
	if req.VendorID != nil {
		vendorID, err := uuid.Parse(*req.VendorID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid vendorId", ErrInvalidInput)
		}
		p.VendorID = vendorID
	}

	if p.SubCategoryID != nil {
		if err := s.checkSubCategory(ctx, *p.SubCategoryID, p.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) checkSubCategory(ctx context.Context, subCategoryID, categoryID uuid.UUID) error {
	ok, err := s.repo.SubCategoryBelongsTo(ctx, subCategoryID.String(), categoryID.String())
	if err != nil {
		return err
	}
	if !ok {
		return ErrSubCategoryMismatch
	}
	return nil
}
