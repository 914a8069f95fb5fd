package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateCategory(ctx context.Context, c *Category) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, description) VALUES ($1,$2,$3)`,
		c.ID, c.Name, c.Description)
	return err
}

func (r *postgresRepo) GetCategoryByID(ctx context.Context, id string) (*Category, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var c Category
	err = r.db.GetContext(ctx, &c, `
		SELECT id, name, description FROM categories WHERE id=$1`, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) ListCategories(ctx context.Context) ([]*Category, error) {
	categories := []*Category{}
	err := r.db.SelectContext(ctx, &categories, `
		SELECT id, name, description FROM categories ORDER BY name`)
	return categories, err
}

func (r *postgresRepo) UpdateCategory(ctx context.Context, c *Category) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories SET name=$1, description=$2 WHERE id=$3`,
		c.Name, c.Description, c.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *postgresRepo) DeleteCategory(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id=$1`, uid)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return ErrCategoryInUse
	}
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *postgresRepo) CreateSubCategory(ctx context.Context, sc *SubCategory) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subcategories (id, name, description, category_id)
		VALUES ($1,$2,$3,$4)`,
		sc.ID, sc.Name, sc.Description, sc.CategoryID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return ErrCategoryMissing
	}
	return err
}

func (r *postgresRepo) GetSubCategoryByID(ctx context.Context, id string) (*SubCategory, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var sc SubCategory
	err = r.db.GetContext(ctx, &sc, `
		SELECT sc.id, sc.name, sc.description, sc.category_id, c.name AS category_name
		FROM subcategories sc
		JOIN categories c ON c.id = sc.category_id
		WHERE sc.id=$1`, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (r *postgresRepo) ListSubCategories(ctx context.Context, categoryID string) ([]*SubCategory, error) {
	query := `
		SELECT sc.id, sc.name, sc.description, sc.category_id, c.name AS category_name
		FROM subcategories sc
		JOIN categories c ON c.id = sc.category_id`
	args := []interface{}{}
	if categoryID != "" {
		uid, err := uuid.Parse(categoryID)
		if err != nil {
			return []*SubCategory{}, nil
		}
		query += ` WHERE sc.category_id=$1`
		args = append(args, uid)
	}
	query += ` ORDER BY sc.name`

	subcategories := []*SubCategory{}
	err := r.db.SelectContext(ctx, &subcategories, query, args...)
	return subcategories, err
}

func (r *postgresRepo) UpdateSubCategory(ctx context.Context, sc *SubCategory) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE subcategories SET name=$1, description=$2, category_id=$3 WHERE id=$4`,
		sc.Name, sc.Description, sc.CategoryID, sc.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return ErrCategoryMissing
	}
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *postgresRepo) DeleteSubCategory(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM subcategories WHERE id=$1`, uid)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return ErrSubCategoryInUse
	}
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
