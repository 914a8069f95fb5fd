package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	categories       map[uuid.UUID]*Category
	subCategories    map[uuid.UUID]*SubCategory
	categoriesInUse  map[uuid.UUID]bool
	subCategoryInUse map[uuid.UUID]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		categories:       map[uuid.UUID]*Category{},
		subCategories:    map[uuid.UUID]*SubCategory{},
		categoriesInUse:  map[uuid.UUID]bool{},
		subCategoryInUse: map[uuid.UUID]bool{},
	}
}

func (f *fakeRepo) CreateCategory(ctx context.Context, c *Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeRepo) GetCategoryByID(ctx context.Context, id string) (*Category, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	c, ok := f.categories[uid]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) ListCategories(ctx context.Context) ([]*Category, error) {
	out := make([]*Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) UpdateCategory(ctx context.Context, c *Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return ErrNotFound
	}
	f.categories[c.ID] = c
	return nil
}

func (f *fakeRepo) DeleteCategory(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	if _, ok := f.categories[uid]; !ok {
		return ErrNotFound
	}
	if f.categoriesInUse[uid] {
		return ErrCategoryInUse
	}
	delete(f.categories, uid)
	for scID, sc := range f.subCategories {
		if sc.CategoryID == uid {
			delete(f.subCategories, scID)
		}
	}
	return nil
}

func (f *fakeRepo) CreateSubCategory(ctx context.Context, sc *SubCategory) error {
	parent, ok := f.categories[sc.CategoryID]
	if !ok {
		return ErrCategoryMissing
	}
	sc.CategoryName = parent.Name
	f.subCategories[sc.ID] = sc
	return nil
}

func (f *fakeRepo) GetSubCategoryByID(ctx context.Context, id string) (*SubCategory, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	sc, ok := f.subCategories[uid]
	if !ok {
		return nil, ErrNotFound
	}
	return sc, nil
}

func (f *fakeRepo) ListSubCategories(ctx context.Context, categoryID string) ([]*SubCategory, error) {
	out := []*SubCategory{}
	for _, sc := range f.subCategories {
		if categoryID == "" || sc.CategoryID.String() == categoryID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateSubCategory(ctx context.Context, sc *SubCategory) error {
	if _, ok := f.subCategories[sc.ID]; !ok {
		return ErrNotFound
	}
	f.subCategories[sc.ID] = sc
	return nil
}

func (f *fakeRepo) DeleteSubCategory(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	if _, ok := f.subCategories[uid]; !ok {
		return ErrNotFound
	}
	if f.subCategoryInUse[uid] {
		return ErrSubCategoryInUse
	}
	delete(f.subCategories, uid)
	return nil
}

func TestCreateCategoryRequiresName(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.CreateCategory(context.Background(), CategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAndUpdateCategory(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, CategoryRequest{Name: "Electronics", Description: "Gadgets"})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(ctx, c.ID.String(), CategoryRequest{Name: "Electronics & Gadgets"})
	require.NoError(t, err)
	assert.Equal(t, "Electronics & Gadgets", updated.Name)
}

func TestDeleteCategoryInUse(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, CategoryRequest{Name: "Clothing"})
	require.NoError(t, err)
	repo.categoriesInUse[c.ID] = true

	err = svc.DeleteCategory(ctx, c.ID.String())
	assert.ErrorIs(t, err, ErrCategoryInUse)
}

func TestCreateSubCategoryValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.CreateSubCategory(ctx, SubCategoryRequest{Name: "", CategoryID: uuid.New().String()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateSubCategory(ctx, SubCategoryRequest{Name: "Laptops", CategoryID: "garbage"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateSubCategory(ctx, SubCategoryRequest{Name: "Laptops", CategoryID: uuid.New().String()})
	assert.ErrorIs(t, err, ErrCategoryMissing)
}

func TestSubCategoryCarriesParentName(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, CategoryRequest{Name: "Home"})
	require.NoError(t, err)

	sc, err := svc.CreateSubCategory(ctx, SubCategoryRequest{Name: "Kitchen", CategoryID: c.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, "Home", sc.CategoryName)
}

func TestDeleteCategoryCascadesSubCategories(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, CategoryRequest{Name: "Sports"})
	require.NoError(t, err)
	_, err = svc.CreateSubCategory(ctx, SubCategoryRequest{Name: "Running", CategoryID: c.ID.String()})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, c.ID.String()))

	subs, err := svc.ListSubCategories(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, subs)
}
