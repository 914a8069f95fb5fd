package product

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	products map[uuid.UUID]*Product

	// subCategoryOf maps subcategory id to its parent category id.
	subCategoryOf map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		products:      map[uuid.UUID]*Product{},
		subCategoryOf: map[string]string{},
	}
}

func (f *fakeRepo) Create(ctx context.Context, p *Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	p, ok := f.products[uid]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Product, error) {
	out := []*Product{}
	for _, p := range f.products {
		if filter.CategoryID != "" && p.CategoryID.String() != filter.CategoryID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, p *Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return ErrNotFound
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	if _, ok := f.products[uid]; !ok {
		return ErrNotFound
	}
	delete(f.products, uid)
	return nil
}

func (f *fakeRepo) SubCategoryBelongsTo(ctx context.Context, subCategoryID, categoryID string) (bool, error) {
	return f.subCategoryOf[subCategoryID] == categoryID, nil
}

func strPtr(s string) *string { return &s }

func floatPtr(v float64) *float64 { return &v }

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()
	categoryID := uuid.New().String()
	vendorID := uuid.New().String()

	cases := []struct {
		name string
		req  CreateRequest
	}{
		{"missing name", CreateRequest{CategoryID: categoryID, VendorID: vendorID, Price: 1}},
		{"negative price", CreateRequest{Name: "x", CategoryID: categoryID, VendorID: vendorID, Price: -1}},
		{"negative stock", CreateRequest{Name: "x", CategoryID: categoryID, VendorID: vendorID, Stock: -1}},
		{"bad category id", CreateRequest{Name: "x", CategoryID: "nope", VendorID: vendorID}},
		{"bad vendor id", CreateRequest{Name: "x", CategoryID: categoryID, VendorID: "nope"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateRejectsSubCategoryFromOtherCategory(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	electronics := uuid.New().String()
	clothing := uuid.New().String()
	mensWear := uuid.New().String()
	repo.subCategoryOf[mensWear] = clothing

	_, err := svc.Create(context.Background(), CreateRequest{
		Name:          "Classic T-Shirt",
		CategoryID:    electronics,
		SubCategoryID: &mensWear,
		Price:         24.99,
		VendorID:      uuid.New().String(),
	})
	assert.ErrorIs(t, err, ErrSubCategoryMismatch)
}

func TestCreateAcceptsMatchingSubCategory(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	clothing := uuid.New().String()
	mensWear := uuid.New().String()
	repo.subCategoryOf[mensWear] = clothing

	p, err := svc.Create(context.Background(), CreateRequest{
		Name:          "Denim Jeans",
		CategoryID:    clothing,
		SubCategoryID: &mensWear,
		Price:         59.99,
		Stock:         75,
		VendorID:      uuid.New().String(),
	})
	require.NoError(t, err)
	require.NotNil(t, p.SubCategoryID)
	assert.Equal(t, mensWear, p.SubCategoryID.String())
}

func TestUpdateIsPartial(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateRequest{
		Name:       "Desk Lamp",
		CategoryID: uuid.New().String(),
		Price:      34.99,
		Stock:      60,
		VendorID:   uuid.New().String(),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID.String(), UpdateRequest{Price: floatPtr(29.99)})
	require.NoError(t, err)
	assert.Equal(t, 29.99, updated.Price)
	assert.Equal(t, "Desk Lamp", updated.Name)
	assert.Equal(t, 60, updated.Stock)
}

func TestUpdateRecheckesSubCategoryAgainstNewCategory(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	clothing := uuid.New().String()
	mensWear := uuid.New().String()
	repo.subCategoryOf[mensWear] = clothing

	p, err := svc.Create(ctx, CreateRequest{
		Name:          "Winter Jacket",
		CategoryID:    clothing,
		SubCategoryID: &mensWear,
		Price:         129.99,
		VendorID:      uuid.New().String(),
	})
	require.NoError(t, err)

	// Moving the product to a new category must invalidate the old
	// subcategory.
	_, err = svc.Update(ctx, p.ID.String(), UpdateRequest{CategoryID: strPtr(uuid.New().String())})
	assert.ErrorIs(t, err, ErrSubCategoryMismatch)
}

func TestUpdateCanClearSubCategory(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	clothing := uuid.New().String()
	mensWear := uuid.New().String()
	repo.subCategoryOf[mensWear] = clothing

	p, err := svc.Create(ctx, CreateRequest{
		Name:          "Classic T-Shirt",
		CategoryID:    clothing,
		SubCategoryID: &mensWear,
		Price:         24.99,
		VendorID:      uuid.New().String(),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID.String(), UpdateRequest{SubCategoryID: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.SubCategoryID)
}

func TestDeleteMissingProduct(t *testing.T) {
	svc := NewService(newFakeRepo())

	err := svc.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}
