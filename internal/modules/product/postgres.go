package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `
	p.id, p.name, p.description, p.category_id, c.name AS category_name,
	p.subcategory_id, sc.name AS subcategory_name,
	p.price, p.stock, p.image_url, p.vendor_id, v.name AS vendor_name,
	p.created_at, p.updated_at`

const productJoins = `
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN vendors v ON v.id = p.vendor_id
	LEFT JOIN subcategories sc ON sc.id = p.subcategory_id`

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, name, description, category_id, subcategory_id, price, stock, image_url, vendor_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.Name, p.Description, p.CategoryID, p.SubCategoryID,
		p.Price, p.Stock, p.ImageURL, p.VendorID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return ErrReferenceMissing
	}
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var p Product
	err = r.db.GetContext(ctx, &p,
		`SELECT `+productColumns+productJoins+` WHERE p.id=$1`, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]*Product, error) {
	query := `SELECT ` + productColumns + productJoins + ` WHERE 1=1`
	args := []interface{}{}
	n := 1

	if f.CategoryID != "" {
		uid, err := uuid.Parse(f.CategoryID)
		if err != nil {
			return []*Product{}, nil
		}
		query += fmt.Sprintf(` AND p.category_id=$%d`, n)
		args = append(args, uid)
		n++
	}
	if f.SubCategoryID != "" {
		uid, err := uuid.Parse(f.SubCategoryID)
		if err != nil {
			return []*Product{}, nil
		}
		query += fmt.Sprintf(` AND p.subcategory_id=$%d`, n)
		args = append(args, uid)
		n++
	}
	if f.Search != "" {
		query += fmt.Sprintf(` AND (p.name ILIKE $%d OR p.description ILIKE $%d)`, n, n)
		args = append(args, "%"+f.Search+"%")
		n++
	}
	query += ` ORDER BY p.created_at DESC`

	products := []*Product{}
	err := r.db.SelectContext(ctx, &products, query, args...)
	return products, err
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, description=$2, category_id=$3, subcategory_id=$4,
		    price=$5, stock=$6, image_url=$7, vendor_id=$8, updated_at=NOW()
		WHERE id=$9`,
		p.Name, p.Description, p.CategoryID, p.SubCategoryID,
		p.Price, p.Stock, p.ImageURL, p.VendorID, p.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return ErrReferenceMissing
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, uid)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return ErrInUse
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SubCategoryBelongsTo(ctx context.Context, subCategoryID, categoryID string) (bool, error) {
	scID, err := uuid.Parse(subCategoryID)
	if err != nil {
		return false, nil
	}
	cID, err := uuid.Parse(categoryID)
	if err != nil {
		return false, nil
	}
	var ok bool
	err = r.db.GetContext(ctx, &ok, `
		SELECT EXISTS (SELECT 1 FROM subcategories WHERE id=$1 AND category_id=$2)`,
		scID, cID)
	return ok, err
}
