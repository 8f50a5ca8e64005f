package sim

import (
	"testing"

	"github.com/rustyeddy/puestos/market"
	"github.com/stretchr/testify/require"
)

// scriptRand replays fixed draws. Once a script runs out its last value
// repeats; an empty Float64 script yields 0.
type scriptRand struct {
	floats []float64
	ints   []int
	fi, ii int
	intNs  []int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	i := r.fi
	if i >= len(r.floats) {
		i = len(r.floats) - 1
	}
	r.fi++
	return r.floats[i]
}

func (r *scriptRand) IntN(n int) int {
	r.intNs = append(r.intNs, n)
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ii
	if i >= len(r.ints) {
		i = len(r.ints) - 1
	}
	r.ii++
	v := r.ints[i]
	if v >= n {
		v = n - 1
	}
	return v
}

func newPool(t *testing.T, prices ...float64) *market.Pool {
	t.Helper()
	p := &market.Pool{PriceMin: 12, PriceMax: 18}
	for i, price := range prices {
		p.Vendors = append(p.Vendors, market.Vendor{ID: i + 1, Price: price})
	}
	require.NotEmpty(t, p.Vendors)
	return p
}
