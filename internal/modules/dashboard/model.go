package dashboard

import "github.com/google/uuid"

// Stats is the back-office rollup, recomputed on every request.
type Stats struct {
	TotalSales    float64             `json:"totalSales"`
	TotalOrders   int                 `json:"totalOrders"`
	TotalProducts int                 `json:"totalProducts"`
	LowStockCount int                 `json:"lowStockCount"`
	TopVendors    []VendorPerformance `json:"topVendors"`
}

// VendorPerformance ranks a vendor by revenue across its products'
// order line items.
type VendorPerformance struct {
	VendorID     uuid.UUID `db:"vendor_id" json:"vendorId"`
	VendorName   string    `db:"vendor_name" json:"vendorName"`
	ProductCount int       `db:"product_count" json:"productCount"`
	Revenue      float64   `db:"revenue" json:"revenue"`
}

// lowStockThreshold is the fixed stock level below which a product
// counts as low stock.
const lowStockThreshold = 10

// topVendorLimit caps the vendor ranking.
const topVendorLimit = 10
