package dashboard

import "context"

// Repository defines the read-only aggregation queries.
type Repository interface {
	TotalSales(ctx context.Context) (float64, error)
	TotalOrders(ctx context.Context) (int, error)
	TotalProducts(ctx context.Context) (int, error)
	LowStockCount(ctx context.Context, threshold int) (int, error)
	TopVendors(ctx context.Context, limit int) ([]VendorPerformance, error)
}
