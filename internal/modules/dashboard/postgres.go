package dashboard

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) TotalSales(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(price * quantity), 0) FROM order_items`)
	return total, err
}

func (r *postgresRepo) TotalOrders(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM orders`)
	return count, err
}

func (r *postgresRepo) TotalProducts(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`)
	return count, err
}

func (r *postgresRepo) LowStockCount(ctx context.Context, threshold int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM products WHERE stock < $1`, threshold)
	return count, err
}

func (r *postgresRepo) TopVendors(ctx context.Context, limit int) ([]VendorPerformance, error) {
	vendors := []VendorPerformance{}
	err := r.db.SelectContext(ctx, &vendors, `
		SELECT v.id AS vendor_id,
		       v.name AS vendor_name,
		       (SELECT COUNT(*) FROM products p2 WHERE p2.vendor_id = v.id) AS product_count,
		       SUM(oi.price * oi.quantity) AS revenue
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		JOIN vendors v ON v.id = p.vendor_id
		GROUP BY v.id, v.name
		ORDER BY revenue DESC
		LIMIT $1`, limit)
	return vendors, err
}
