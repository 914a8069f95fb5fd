package order

import (
	"fmt"

	"github.com/google/uuid"
)

// PlacedLine is a validated (product, quantity) pair handed to the
// repository for atomic placement.
type PlacedLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// lockedProduct is a product row read under a row lock during placement.
type lockedProduct struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`
	Price float64   `db:"price"`
	Stock int       `db:"stock"`
}

// buildItems resolves the requested lines against the locked product
// rows, capturing each product's current unit price, and computes the
// order total. If any line references a missing product or a quantity
// above its stock, the whole placement fails.
func buildItems(orderID uuid.UUID, lines []PlacedLine, products map[uuid.UUID]*lockedProduct) ([]*Item, float64, error) {
	items := make([]*Item, 0, len(lines))
	var total float64

	for _, line := range lines {
		p, ok := products[line.ProductID]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
		}
		if p.Stock < line.Quantity {
			return nil, 0, fmt.Errorf("%w: product %s has %d in stock, requested %d",
				ErrInsufficientStock, p.ID, p.Stock, line.Quantity)
		}

		total += p.Price * float64(line.Quantity)
		items = append(items, &Item{
			ID:          uuid.New(),
			OrderID:     orderID,
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			Price:       p.Price,
		})
	}

	return items, round2(total), nil
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
