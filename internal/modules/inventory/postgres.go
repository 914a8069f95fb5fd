package inventory

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

func (r *postgresRepo) ApplyAdjustment(ctx context.Context, productID uuid.UUID, change int, reason string, adjustedBy *uuid.UUID) (*Adjustment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var stock int
	err = tx.GetContext(ctx, &stock,
		`SELECT stock FROM products WHERE id=$1 FOR UPDATE`, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock product: %w", err)
	}

	newStock := stock + change
	if newStock < 0 {
		return nil, fmt.Errorf("%w: stock %d, change %d", ErrNegativeStock, stock, change)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE products SET stock=$1, updated_at=NOW() WHERE id=$2`, newStock, productID)
	if err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}

	adj := &Adjustment{
		ID:             uuid.New(),
		ProductID:      productID,
		QuantityChange: change,
		Reason:         reason,
		AdjustedBy:     adjustedBy,
		AdjustedAt:     time.Now().UTC(),
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO inventory_adjustments (id, product_id, quantity_change, reason, adjusted_by, adjusted_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		adj.ID, adj.ProductID, adj.QuantityChange, adj.Reason, adj.AdjustedBy, adj.AdjustedAt)
	if err != nil {
		return nil, fmt.Errorf("insert adjustment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return adj, nil
}

func (r *postgresRepo) History(ctx context.Context, productID string) ([]*Adjustment, error) {
	uid, err := uuid.Parse(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	history := []*Adjustment{}
	err = r.db.SelectContext(ctx, &history, `
		SELECT id, product_id, quantity_change, reason, adjusted_by, adjusted_at
		FROM inventory_adjustments
		WHERE product_id=$1
		ORDER BY adjusted_at DESC`, uid)
	return history, err
}
