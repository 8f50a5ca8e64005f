package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldAdjust(t *testing.T) {
	t.Parallel()

	tests := []struct {
		step, every int
		want        bool
	}{
		{0, 2, false},
		{1, 2, false},
		{2, 2, true},
		{3, 2, false},
		{998, 2, true},
		{999, 2, false},
		{3, 3, true},
		{4, 0, false},
		{4, -1, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShouldAdjust(tt.step, tt.every), "step=%d every=%d", tt.step, tt.every)
	}
}

func TestAdjustmentFactor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		recent int
		u      float64
		want   float64
	}{
		{"high floor", 10, 0, 1.05},
		{"high ceiling", 8, 1, 1.15},
		{"mid floor", 4, 0, 0.95},
		{"mid ceiling", 7, 1, 1.05},
		{"low floor", 0, 0, 0.90},
		{"low ceiling", 3, 1, 0.95},
		{"low mid", 3, 0.5, 0.925},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AdjustmentFactor(tt.recent, tt.u), 1e-12)
		})
	}
}

func TestAdjustPricesHighDemand(t *testing.T) {
	t.Parallel()

	pool := newPool(t, 15)
	pool.Vendors[0].RecentSales = 10
	pool.Vendors[0].TotalSales = 10

	AdjustPrices(pool, &scriptRand{floats: []float64{0}})

	v := pool.Vendors[0]
	assert.InDelta(t, 15*1.05, v.Price, 1e-12)
	assert.Zero(t, v.RecentSales)
	assert.Equal(t, 10, v.TotalSales)
}

func TestAdjustPricesClamps(t *testing.T) {
	t.Parallel()

	pool := newPool(t, 26, 12.5, 20)
	pool.Vendors[0].RecentSales = 10 // 26*1.05 = 27.3 -> 27
	pool.Vendors[1].RecentSales = 0  // 12.5*0.90 = 11.25 -> 12
	pool.Vendors[2].RecentSales = 5  // 20*0.95 = 19

	AdjustPrices(pool, &scriptRand{floats: []float64{0}})

	assert.Equal(t, 27.0, pool.Vendors[0].Price)
	assert.Equal(t, 12.0, pool.Vendors[1].Price)
	assert.InDelta(t, 19.0, pool.Vendors[2].Price, 1e-12)
	for _, v := range pool.Vendors {
		assert.Zero(t, v.RecentSales)
	}
}

func TestAdjustPricesOneDrawPerVendor(t *testing.T) {
	t.Parallel()

	pool := newPool(t, 15, 15, 15)
	for i := range pool.Vendors {
		pool.Vendors[i].RecentSales = 9
	}

	AdjustPrices(pool, &scriptRand{floats: []float64{0, 0.5, 1}})

	assert.InDelta(t, 15*1.05, pool.Vendors[0].Price, 1e-12)
	assert.InDelta(t, 15*1.10, pool.Vendors[1].Price, 1e-12)
	assert.InDelta(t, 15*1.15, pool.Vendors[2].Price, 1e-12)
}
