package sim

import "github.com/rustyeddy/puestos/market"

const (
	// BaseProbability is the purchase probability at the midpoint price factor.
	BaseProbability = 0.7

	// MaxCustomers is the upper bound of prospective customers per vendor per step.
	MaxCustomers = 5

	// MaxQuantity is the upper bound of units bought in one sale.
	MaxQuantity = 3
)

// PurchaseProbability is the chance a single prospective customer buys
// at the given price. It is deliberately not clamped to [0,1]: a value
// above 1 sells on every draw, a negative value never sells.
func PurchaseProbability(price, priceMax float64) float64 {
	factor := (priceMax - price) / priceMax
	return BaseProbability * (0.5 + factor)
}

// ProcessSales simulates one step of demand for every vendor in the pool.
func ProcessSales(p *market.Pool, rng Rand) {
	processSales(p.Vendors, p.PriceMax, rng)
}

// processSales draws vendor by vendor, customer by customer: customer
// count, then per customer the threshold and (on a sale) the quantity.
func processSales(vendors []market.Vendor, priceMax float64, rng Rand) {
	for i := range vendors {
		v := &vendors[i]
		prob := PurchaseProbability(v.Price, priceMax)

		customers := 1 + rng.IntN(MaxCustomers)
		for c := 0; c < customers; c++ {
			if rng.Float64() < prob {
				v.Sell(1 + rng.IntN(MaxQuantity))
			}
		}
	}
}
