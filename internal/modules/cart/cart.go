package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Item is one product in a cart, with name, unit price and image copied
// from the catalog at the time it was added.
type Item struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
}

// Cart is a user's shopping cart. All mutation goes through the methods
// below; the service persists the cart after every mutation.
type Cart struct {
	UserID    uuid.UUID `json:"userId"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Total returns the cart total across all items.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// add merges quantity into an existing line or appends a new one.
func (c *Cart) add(item Item) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// setQuantity overwrites a line's quantity, reporting whether the line
// exists. A quantity of zero removes the line.
func (c *Cart) setQuantity(productID uuid.UUID, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if quantity == 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

// remove drops a line, reporting whether it existed.
func (c *Cart) remove(productID uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// clear empties the cart.
func (c *Cart) clear() {
	c.Items = nil
}

// Store is the cart persistence boundary: carts are loaded on read and
// saved after each mutation.
type Store interface {
	// Load returns the user's cart, or an empty cart when none is saved.
	Load(ctx context.Context, userID uuid.UUID) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

var (
	// ErrItemNotFound is returned when mutating a product that is not in
	// the cart.
	ErrItemNotFound = errors.New("item not in cart")

	// ErrInvalidInput wraps request validation failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProductNotFound is returned when adding a product that does not
	// exist in the catalog.
	ErrProductNotFound = errors.New("product not found")
)
