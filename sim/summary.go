package sim

import "github.com/rustyeddy/puestos/market"

// Summary holds the end-of-run aggregates over the whole pool.
type Summary struct {
	Vendors         int
	TotalRevenue    float64
	TotalUnits      int
	BestVendorID    int
	BestVendorSales int
	AveragePrice    float64
	RevenuePerUnit  float64
}

// Summarize aggregates the pool in a single pass. The best seller is the
// first vendor reaching the maximum TotalSales, so ties go to the lowest
// index. RevenuePerUnit is zero when nothing sold.
func Summarize(p *market.Pool) Summary {
	s := Summary{Vendors: p.Len()}
	if s.Vendors == 0 {
		return s
	}

	best := 0
	var priceSum float64
	for i := range p.Vendors {
		v := &p.Vendors[i]
		s.TotalRevenue += v.TotalRevenue
		s.TotalUnits += v.TotalSales
		priceSum += v.Price
		if v.TotalSales > p.Vendors[best].TotalSales {
			best = i
		}
	}

	s.BestVendorID = p.Vendors[best].ID
	s.BestVendorSales = p.Vendors[best].TotalSales
	s.AveragePrice = priceSum / float64(s.Vendors)
	s.RevenuePerUnit = RevenuePerUnit(s.TotalRevenue, s.TotalUnits)
	return s
}

// RevenuePerUnit divides revenue by units, returning 0 when units is 0.
func RevenuePerUnit(revenue float64, units int) float64 {
	if units == 0 {
		return 0
	}
	return revenue / float64(units)
}

// Totals sums revenue and units sold so far across vendors. It is the
// per-step display aggregate and does not modify state.
func Totals(vendors []market.Vendor) (revenue float64, units int) {
	for i := range vendors {
		revenue += vendors[i].TotalRevenue
		units += vendors[i].TotalSales
	}
	return revenue, units
}
