package dashboard

import "context"

// Service computes the dashboard rollup.
type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	totalSales, err := s.repo.TotalSales(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.repo.TotalOrders(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.repo.TotalProducts(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.repo.LowStockCount(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}
	topVendors, err := s.repo.TopVendors(ctx, topVendorLimit)
	if err != nil {
		return nil, err
	}
	if topVendors == nil {
		topVendors = []VendorPerformance{}
	}

	return &Stats{
		TotalSales:    totalSales,
		TotalOrders:   totalOrders,
		TotalProducts: totalProducts,
		LowStockCount: lowStock,
		TopVendors:    topVendors,
	}, nil
}
