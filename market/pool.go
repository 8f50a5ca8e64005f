package market

import (
	"errors"
	"fmt"
)

// Rand is the random source used to seed starting prices.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Pool is the fixed-size, ordered vendor population. Vendors are
// mutated in place and never added or removed after NewPool.
type Pool struct {
	Vendors  []Vendor
	PriceMin float64
	PriceMax float64
}

// NewPool creates count vendors with IDs 1..count and starting prices
// drawn uniformly from [priceMin, priceMax).
func NewPool(count int, priceMin, priceMax float64, rng Rand) (*Pool, error) {
	if count <= 0 {
		return nil, fmt.Errorf("vendor count must be positive, got %d", count)
	}
	if priceMin <= 0 {
		return nil, fmt.Errorf("price_min must be positive, got %.2f", priceMin)
	}
	if priceMax <= priceMin {
		return nil, fmt.Errorf("price_max (%.2f) must be greater than price_min (%.2f)", priceMax, priceMin)
	}
	if rng == nil {
		return nil, errors.New("nil random source")
	}

	p := &Pool{
		Vendors:  make([]Vendor, count),
		PriceMin: priceMin,
		PriceMax: priceMax,
	}
	spread := priceMax - priceMin
	for i := range p.Vendors {
		p.Vendors[i] = Vendor{
			ID:    i + 1,
			Price: priceMin + rng.Float64()*spread,
		}
	}
	return p, nil
}

// Len returns the number of vendors.
func (p *Pool) Len() int { return len(p.Vendors) }

// Bounds returns the interval prices are clamped to after an adjustment.
func (p *Pool) Bounds() Bounds {
	return Bounds{Min: p.PriceMin, Max: p.PriceMax * CapMultiplier}
}

// Clamp limits a candidate price to the pool's bounds.
func (p *Pool) Clamp(price float64) float64 {
	return p.Bounds().Clamp(price)
}

// Partition splits the vendors into n contiguous, non-overlapping
// slices that share the pool's backing array. n is capped to Len().
func (p *Pool) Partition(n int) [][]Vendor {
	total := len(p.Vendors)
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	if n == 0 {
		return nil
	}

	size := total / n
	rem := total % n
	parts := make([][]Vendor, 0, n)
	lo := 0
	for i := 0; i < n; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		parts = append(parts, p.Vendors[lo:hi:hi])
		lo = hi
	}
	return parts
}
