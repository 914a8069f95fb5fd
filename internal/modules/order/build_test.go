package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildItemsComputesTotalAndCapturesPrices(t *testing.T) {
	orderID := uuid.New()
	p1 := &lockedProduct{ID: uuid.New(), Name: "Wireless Headphones", Price: 89.99, Stock: 50}
	p2 := &lockedProduct{ID: uuid.New(), Name: "Classic T-Shirt", Price: 24.99, Stock: 200}
	products := map[uuid.UUID]*lockedProduct{p1.ID: p1, p2.ID: p2}

	lines := []PlacedLine{
		{ProductID: p1.ID, Quantity: 1},
		{ProductID: p2.ID, Quantity: 2},
	}

	items, total, err := buildItems(orderID, lines, products)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 139.97, total)
	assert.Equal(t, orderID, items[0].OrderID)
	assert.Equal(t, "Wireless Headphones", items[0].ProductName)
	assert.Equal(t, 89.99, items[0].Price)
	assert.Equal(t, 24.99, items[1].Price)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestBuildItemsRejectsMissingProduct(t *testing.T) {
	known := &lockedProduct{ID: uuid.New(), Name: "Desk Lamp", Price: 34.99, Stock: 60}
	products := map[uuid.UUID]*lockedProduct{known.ID: known}

	lines := []PlacedLine{
		{ProductID: known.ID, Quantity: 1},
		{ProductID: uuid.New(), Quantity: 1},
	}

	items, total, err := buildItems(uuid.New(), lines, products)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, items)
	assert.Zero(t, total)
}

func TestBuildItemsRejectsInsufficientStock(t *testing.T) {
	p := &lockedProduct{ID: uuid.New(), Name: "Winter Jacket", Price: 129.99, Stock: 3}
	products := map[uuid.UUID]*lockedProduct{p.ID: p}

	items, total, err := buildItems(uuid.New(), []PlacedLine{{ProductID: p.ID, Quantity: 4}}, products)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Nil(t, items)
	assert.Zero(t, total)
}

func TestBuildItemsAllowsExactStock(t *testing.T) {
	p := &lockedProduct{ID: uuid.New(), Name: "Smart Watch", Price: 199.99, Stock: 4}
	products := map[uuid.UUID]*lockedProduct{p.ID: p}

	items, total, err := buildItems(uuid.New(), []PlacedLine{{ProductID: p.ID, Quantity: 4}}, products)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 799.96, total)
}
