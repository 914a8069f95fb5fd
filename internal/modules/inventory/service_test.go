package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	stock   int
	history []*Adjustment
}

func (f *fakeRepo) ApplyAdjustment(ctx context.Context, productID uuid.UUID, change int, reason string, adjustedBy *uuid.UUID) (*Adjustment, error) {
	if f.stock+change < 0 {
		return nil, ErrNegativeStock
	}
	f.stock += change
	adj := &Adjustment{
		ID:             uuid.New(),
		ProductID:      productID,
		QuantityChange: change,
		Reason:         reason,
		AdjustedBy:     adjustedBy,
		AdjustedAt:     time.Now(),
	}
	f.history = append([]*Adjustment{adj}, f.history...)
	return adj, nil
}

func (f *fakeRepo) History(ctx context.Context, productID string) ([]*Adjustment, error) {
	return f.history, nil
}

func TestAdjustRejectsMalformedProductID(t *testing.T) {
	svc := NewService(&fakeRepo{stock: 10})

	_, err := svc.Adjust(context.Background(), AdjustRequest{ProductID: "nope", QuantityChange: 5}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdjustAppliesSignedDelta(t *testing.T) {
	repo := &fakeRepo{stock: 10}
	svc := NewService(repo)

	actor := uuid.New()
	adj, err := svc.Adjust(context.Background(),
		AdjustRequest{ProductID: uuid.New().String(), QuantityChange: -4, Reason: "damaged in transit"},
		&actor)
	require.NoError(t, err)

	assert.Equal(t, 6, repo.stock)
	assert.Equal(t, -4, adj.QuantityChange)
	assert.Equal(t, "damaged in transit", adj.Reason)
	require.NotNil(t, adj.AdjustedBy)
	assert.Equal(t, actor, *adj.AdjustedBy)
}

func TestAdjustRefusesToDriveStockNegative(t *testing.T) {
	repo := &fakeRepo{stock: 3}
	svc := NewService(repo)

	_, err := svc.Adjust(context.Background(),
		AdjustRequest{ProductID: uuid.New().String(), QuantityChange: -5, Reason: "shrinkage"}, nil)
	assert.ErrorIs(t, err, ErrNegativeStock)
	assert.Equal(t, 3, repo.stock)
}

func TestHistoryReturnsNewestFirst(t *testing.T) {
	repo := &fakeRepo{stock: 100}
	svc := NewService(repo)

	pid := uuid.New()
	_, err := svc.Adjust(context.Background(), AdjustRequest{ProductID: pid.String(), QuantityChange: 10, Reason: "restock"}, nil)
	require.NoError(t, err)
	_, err = svc.Adjust(context.Background(), AdjustRequest{ProductID: pid.String(), QuantityChange: -2, Reason: "breakage"}, nil)
	require.NoError(t, err)

	history, err := svc.History(context.Background(), pid.String())
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, -2, history[0].QuantityChange)
	assert.Equal(t, 10, history[1].QuantityChange)
}
