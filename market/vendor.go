package market

// Vendor is a single stall: a price plus sales and revenue counters.
type Vendor struct {
	ID           int
	Price        float64
	TotalSales   int
	RecentSales  int
	TotalRevenue float64
}

// Sell records qty units sold at the vendor's current price.
func (v *Vendor) Sell(qty int) {
	v.TotalSales += qty
	v.RecentSales += qty
	v.TotalRevenue += float64(qty) * v.Price
}

// Reprice sets a new price within b and starts a new recent-sales window.
func (v *Vendor) Reprice(p float64, b Bounds) {
	v.Price = b.Clamp(p)
	v.RecentSales = 0
}
