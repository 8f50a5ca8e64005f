package sim

import "math/rand/v2"

// Rand is the random source threaded through sales and pricing.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewStreams returns n independent PCG streams derived from one seed.
// Stream i is rand.NewPCG(seed, i), so a (seed, n) pair always yields
// the same sequences.
func NewStreams(seed uint64, n int) []*rand.Rand {
	if n < 1 {
		n = 1
	}
	streams := make([]*rand.Rand, n)
	for i := range streams {
		streams[i] = rand.New(rand.NewPCG(seed, uint64(i)))
	}
	return streams
}
