package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecommerce-backend/internal/modules/product"
	"ecommerce-backend/internal/util"
)

// AddItemRequest is the payload for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// SetQuantityRequest is the payload for overwriting a line quantity.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// View is the cart response shape, with the total computed server-side.
type View struct {
	UserID uuid.UUID `json:"userId"`
	Items  []Item    `json:"items"`
	Total  float64   `json:"total"`
}

// Service manages per-user carts on top of a Store.
type Service struct {
	store    Store
	products product.Repository
}

func NewService(store Store, products product.Repository) *Service {
	return &Service{store: store, products: products}
}

func (s *Service) view(c *Cart) *View {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return &View{UserID: c.UserID, Items: items, Total: c.Total()}
}

// Get returns the user's cart, empty when nothing is saved.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*View, error) {
	c, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(c), nil
}

// AddItem validates the product against the catalog, captures its name,
// price and image, and merges it into the cart.
func (s *Service) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*View, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: productId must be a valid uuid", ErrInvalidInput)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	p, err := s.products.GetByID(ctx, productID.String())
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	c, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.add(Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  req.Quantity,
		ImageURL:  p.ImageURL,
	})
	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}

	util.GetLogger().Info("cart item added",
		zap.String("user_id", userID.String()),
		zap.String("product_id", p.ID.String()),
		zap.Int("quantity", req.Quantity))
	return s.view(c), nil
}

// SetQuantity overwrites a line's quantity; zero removes the line.
func (s *Service) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*View, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	c, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !c.setQuantity(productID, quantity) {
		return nil, ErrItemNotFound
	}
	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.view(c), nil
}

// RemoveItem drops a line from the cart.
func (s *Service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*View, error) {
	c, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !c.remove(productID) {
		return nil, ErrItemNotFound
	}
	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return s.view(c), nil
}

// Clear discards the user's cart entirely.
func (s *Service) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.store.Delete(ctx, userID)
}
