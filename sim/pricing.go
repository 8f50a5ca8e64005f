package sim

import "github.com/rustyeddy/puestos/market"

// Recent-sales thresholds for the price adjustment tiers.
const (
	HighDemand = 8
	MidDemand  = 4
)

// DefaultAdjustEvery is the step interval between price adjustments.
const DefaultAdjustEvery = 2

// ShouldAdjust reports whether prices are recomputed after the sales of
// the given step. Step 0 never adjusts; every <= 0 disables adjustment.
func ShouldAdjust(step, every int) bool {
	if every <= 0 {
		return false
	}
	return step > 0 && step%every == 0
}

// AdjustmentFactor maps a recent-sales tally and a uniform draw u in
// [0,1) to a price multiplier.
//
//	recent >= 8: 1.05 + u*0.10
//	recent >= 4: 0.95 + u*0.10
//	otherwise:   0.90 + u*0.05
func AdjustmentFactor(recent int, u float64) float64 {
	switch {
	case recent >= HighDemand:
		return 1.05 + u*0.10
	case recent >= MidDemand:
		return 0.95 + u*0.10
	default:
		return 0.90 + u*0.05
	}
}

// AdjustPrices reprices every vendor from its recent sales and resets
// the recent-sales window.
func AdjustPrices(p *market.Pool, rng Rand) {
	adjustPrices(p.Vendors, p.Bounds(), rng)
}

func adjustPrices(vendors []market.Vendor, b market.Bounds, rng Rand) {
	for i := range vendors {
		v := &vendors[i]
		f := AdjustmentFactor(v.RecentSales, rng.Float64())
		v.Reprice(v.Price*f, b)
	}
}
