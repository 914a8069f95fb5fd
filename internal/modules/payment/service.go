package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecommerce-backend/internal/util"
)

// Service defines payment business logic.
type Service interface {
	Process(ctx context.Context, req Request) (*Response, error)
}

type service struct {
	gateway Gateway
}

func NewService(gateway Gateway) Service {
	return &service{gateway: gateway}
}

func (s *service) Process(ctx context.Context, req Request) (*Response, error) {
	if _, err := uuid.Parse(req.OrderID); err != nil {
		return nil, fmt.Errorf("%w: orderId must be a valid uuid", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", ErrInvalidInput)
	}

	util.PaymentAttemptsTotal.Inc()
	resp, err := s.gateway.Charge(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Success {
		util.PaymentSuccessTotal.Inc()
	}

	util.GetLogger().Info("payment processed",
		zap.String("order_id", req.OrderID),
		zap.Float64("amount", req.Amount),
		zap.String("method", req.PaymentMethod),
		zap.String("transaction_id", resp.TransactionID))
	return resp, nil
}
