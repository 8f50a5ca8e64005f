package market

// CapMultiplier sets the upper price bound relative to the reference
// maximum: prices may climb to PriceMax*CapMultiplier.
const CapMultiplier = 1.5

// Bounds is the closed interval a vendor price is kept within.
type Bounds struct {
	Min float64
	Max float64
}

// Clamp returns p limited to [b.Min, b.Max].
func (b Bounds) Clamp(p float64) float64 {
	if p < b.Min {
		return b.Min
	}
	if p > b.Max {
		return b.Max
	}
	return p
}

// Contains reports whether p lies within the bounds.
func (b Bounds) Contains(p float64) bool {
	return p >= b.Min && p <= b.Max
}
