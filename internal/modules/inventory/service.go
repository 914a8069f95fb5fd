package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecommerce-backend/internal/util"
)

// Service defines inventory adjustment business logic.
type Service interface {
	// Adjust applies a signed stock delta with an audit entry, acting on
	// behalf of adjustedBy when known.
	Adjust(ctx context.Context, req AdjustRequest, adjustedBy *uuid.UUID) (*Adjustment, error)

	// History returns a product's adjustment log, newest first.
	History(ctx context.Context, productID string) ([]*Adjustment, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{repo: repo, logger: util.GetLogger()}
}

func (s *service) Adjust(ctx context.Context, req AdjustRequest, adjustedBy *uuid.UUID) (*Adjustment, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		util.StockAdjustmentsRejected.WithLabelValues("invalid_product_id").Inc()
		return nil, fmt.Errorf("%w: invalid productId", ErrInvalidInput)
	}

	adj, err := s.repo.ApplyAdjustment(ctx, productID, req.QuantityChange, req.Reason, adjustedBy)
	if err != nil {
		util.StockAdjustmentsRejected.WithLabelValues("store").Inc()
		return nil, err
	}

	util.StockAdjustmentsTotal.Inc()
	s.logger.Info("stock adjusted",
		zap.String("product_id", productID.String()),
		zap.Int("change", req.QuantityChange),
		zap.String("reason", req.Reason))
	return adj, nil
}

func (s *service) History(ctx context.Context, productID string) ([]*Adjustment, error) {
	return s.repo.History(ctx, productID)
}
