package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

// PlaceOrder runs the whole placement inside one transaction: lock the
// requested product rows, validate stock, insert the order and its
// items, decrement stock. Rollback on any failure leaves no partial
// state behind.
func (r *postgresRepo) PlaceOrder(ctx context.Context, userID uuid.UUID, lines []PlacedLine, shippingAddress *string) (*Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var userName string
	err = tx.GetContext(ctx, &userName, `SELECT name FROM users WHERE id=$1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(lines))
	for i, line := range lines {
		ids[i] = line.ProductID
	}
	query, args, err := sqlx.In(`
		SELECT id, name, price, stock FROM products WHERE id IN (?) FOR UPDATE`, ids)
	if err != nil {
		return nil, err
	}
	query = tx.Rebind(query)

	var locked []lockedProduct
	if err := tx.SelectContext(ctx, &locked, query, args...); err != nil {
		return nil, fmt.Errorf("lock products: %w", err)
	}
	products := make(map[uuid.UUID]*lockedProduct, len(locked))
	for i := range locked {
		products[locked[i].ID] = &locked[i]
	}

	o := &Order{
		ID:              uuid.New(),
		UserID:          userID,
		UserName:        userName,
		OrderDate:       time.Now().UTC(),
		Status:          StatusPending,
		ShippingAddress: shippingAddress,
	}

	items, total, err := buildItems(o.ID, lines, products)
	if err != nil {
		return nil, err
	}
	o.Items = items
	o.TotalAmount = total

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, order_date, status, shipping_address, total_amount)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		o.ID, o.UserID, o.OrderDate, o.Status, o.ShippingAddress, o.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, price)
			VALUES ($1,$2,$3,$4,$5)`,
			item.ID, o.ID, item.ProductID, item.Quantity, item.Price)
		if err != nil {
			return nil, fmt.Errorf("insert order item: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2`,
			item.Quantity, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("decrement stock: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return o, nil
}

const orderSelect = `
	SELECT o.id, o.user_id, u.name AS user_name, o.order_date, o.status,
	       o.shipping_address, o.total_amount
	FROM orders o
	JOIN users u ON u.id = o.user_id`

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var o Order
	err = r.db.GetContext(ctx, &o, orderSelect+` WHERE o.id=$1`, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) List(ctx context.Context, userID *uuid.UUID, status Status) ([]*Order, error) {
	query := orderSelect + ` WHERE 1=1`
	args := []interface{}{}
	n := 1
	if userID != nil {
		query += fmt.Sprintf(` AND o.user_id=$%d`, n)
		args = append(args, *userID)
		n++
	}
	if status != "" {
		query += fmt.Sprintf(` AND o.status=$%d`, n)
		args = append(args, status)
		n++
	}
	query += ` ORDER BY o.order_date DESC`

	orders := []*Order{}
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, err
	}
	for _, o := range orders {
		items, err := r.listItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return orders, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, status, uid)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) listItems(ctx context.Context, orderID uuid.UUID) ([]*Item, error) {
	items := []*Item{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT oi.id, oi.order_id, oi.product_id, p.name AS product_name, oi.quantity, oi.price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id=$1
		ORDER BY p.name`, orderID)
	return items, err
}
