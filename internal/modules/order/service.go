package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecommerce-backend/internal/broker"
	"ecommerce-backend/internal/util"
)

// Service defines order business logic.
type Service interface {
	// PlaceOrder validates the request and persists the order, its
	// items and the stock decrements as one atomic unit.
	PlaceOrder(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (*Order, error)

	// Get retrieves a full order with its items.
	Get(ctx context.Context, id string) (*Order, error)

	// List returns orders, optionally scoped to one user and filtered
	// by status name.
	List(ctx context.Context, userID *uuid.UUID, status string) ([]*Order, error)

	// UpdateStatus sets a recognized status on an order.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)
}

type service struct {
	repo   Repository
	events *broker.Publisher
	logger *zap.Logger
}

// NewService creates a new order service. events may be nil when event
// publishing is disabled.
func NewService(repo Repository, events *broker.Publisher) Service {
	return &service{repo: repo, events: events, logger: util.GetLogger()}
}

func (s *service) PlaceOrder(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (*Order, error) {
	start := time.Now()
	defer func() {
		util.OrderPlacementLatency.Observe(time.Since(start).Seconds())
	}()

	if len(req.Items) == 0 {
		util.OrdersRejectedTotal.WithLabelValues("empty").Inc()
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrInvalidInput)
	}

	lines := make([]PlacedLine, 0, len(req.Items))
	seen := make(map[uuid.UUID]int)
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			util.OrdersRejectedTotal.WithLabelValues("invalid_quantity").Inc()
			return nil, fmt.Errorf("%w: quantity must be positive for product %s", ErrInvalidInput, item.ProductID)
		}
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			util.OrdersRejectedTotal.WithLabelValues("invalid_product_id").Inc()
			return nil, fmt.Errorf("%w: invalid productId %q", ErrInvalidInput, item.ProductID)
		}
		// Repeated lines for one product collapse into a single line so
		// the row lock and decrement happen once.
		if i, ok := seen[pid]; ok {
			lines[i].Quantity += item.Quantity
			continue
		}
		seen[pid] = len(lines)
		lines = append(lines, PlacedLine{ProductID: pid, Quantity: item.Quantity})
	}

	o, err := s.repo.PlaceOrder(ctx, userID, lines, req.ShippingAddress)
	if err != nil {
		util.OrdersRejectedTotal.WithLabelValues("store").Inc()
		return nil, err
	}

	util.OrdersPlacedTotal.Inc()
	s.logger.Info("order placed",
		zap.String("order_id", o.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Float64("total", o.TotalAmount),
		zap.Int("items", len(o.Items)))

	s.publishCreated(ctx, o)
	return o, nil
}

func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, userID *uuid.UUID, status string) ([]*Order, error) {
	var st Status
	if status != "" {
		parsed, ok := ParseStatus(status)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
		}
		st = parsed
	}
	return s.repo.List(ctx, userID, st)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	newStatus, ok := ParseStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, req.Status)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Any recognized status is currently accepted from any other. The
	// canonical chain is Pending→Confirmed→Processing→Shipped→Delivered
	// with Cancelled from any non-terminal state; everything else is
	// flagged here for the operator rather than rejected.
	if current.Status != newStatus && !IsForwardTransition(current.Status, newStatus) {
		s.logger.Warn("non-forward order status transition",
			zap.String("order_id", id),
			zap.String("from", string(current.Status)),
			zap.String("to", string(newStatus)))
	}

	o, err := s.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}

	s.publishStatusChanged(ctx, o, current.Status, newStatus)
	return o, nil
}

func (s *service) publishCreated(ctx context.Context, o *Order) {
	items := make([]broker.OrderItemData, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, broker.OrderItemData{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}
	event := &broker.OrderCreatedEvent{
		BaseEvent: broker.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: broker.EventTypeOrderCreated,
			Timestamp: time.Now(),
		},
		OrderID:     o.ID.String(),
		UserID:      o.UserID.String(),
		TotalAmount: o.TotalAmount,
		Items:       items,
	}
	if err := s.events.Publish(ctx, event.OrderID, event); err != nil {
		s.logger.Error("failed to publish order created event", zap.Error(err))
	}
}

func (s *service) publishStatusChanged(ctx context.Context, o *Order, from, to Status) {
	event := &broker.OrderStatusChangedEvent{
		BaseEvent: broker.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: broker.EventTypeOrderStatusChanged,
			Timestamp: time.Now(),
		},
		OrderID:   o.ID.String(),
		OldStatus: string(from),
		NewStatus: string(to),
	}
	if err := s.events.Publish(ctx, event.OrderID, event); err != nil {
		s.logger.Error("failed to publish order status event", zap.Error(err))
	}
}
