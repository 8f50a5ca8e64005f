package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/puestos/market"
	"golang.org/x/sync/errgroup"
)

// Params describes a simulation run.
type Params struct {
	Vendors     int
	PriceMin    float64
	PriceMax    float64
	Seed        uint64
	Workers     int
	AdjustEvery int
	ReportEvery int
}

// DefaultParams mirrors the reference scenario: 610,000 vendors priced
// between 12 and 18, one worker, prices adjusted every second step.
func DefaultParams() Params {
	return Params{
		Vendors:     610_000,
		PriceMin:    12.0,
		PriceMax:    18.0,
		Seed:        42,
		Workers:     1,
		AdjustEvery: DefaultAdjustEvery,
		ReportEvery: 1,
	}
}

// Options tune the driver loop of an Engine.
type Options struct {
	AdjustEvery int
	ReportEvery int
}

// StepStats is handed to observers after every step. Revenue and Units
// are cumulative pool totals and are only filled in when Reported.
type StepStats struct {
	Step     int
	Adjusted bool
	Reported bool
	Revenue  float64
	Units    int
}

// Observer is notified after each simulated step.
type Observer interface {
	OnStep(StepStats) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(StepStats) error

func (f ObserverFunc) OnStep(s StepStats) error { return f(s) }

// Timings is the wall time spent per phase.
type Timings struct {
	Sales   time.Duration
	Pricing time.Duration
	Display time.Duration
	Total   time.Duration
}

// Result is what Run hands back once the last step completes.
type Result struct {
	Steps   int
	Summary Summary
	Timings Timings
}

type partition struct {
	vendors []market.Vendor
	rng     Rand
}

// Engine owns the vendor pool for the duration of a run and drives the
// sales / pricing / display phases step by step. Within a step each
// phase finishes for every partition before the next phase starts.
type Engine struct {
	pool        *market.Pool
	parts       []partition
	adjustEvery int
	reportEvery int
	observers   []Observer
	step        int
	timings     Timings
}

// New seeds a pool from p and returns an engine ready to run. The first
// stream seeds starting prices and then continues as partition 0's
// stream, so a single worker consumes one sequence end to end.
func New(p Params) (*Engine, error) {
	if p.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", p.Workers)
	}
	workers := p.Workers
	if p.Vendors > 0 && workers > p.Vendors {
		workers = p.Vendors
	}

	streams := NewStreams(p.Seed, workers)
	pool, err := market.NewPool(p.Vendors, p.PriceMin, p.PriceMax, streams[0])
	if err != nil {
		return nil, fmt.Errorf("init pool: %w", err)
	}

	rngs := make([]Rand, len(streams))
	for i, s := range streams {
		rngs[i] = s
	}
	return NewEngine(pool, rngs, Options{
		AdjustEvery: p.AdjustEvery,
		ReportEvery: p.ReportEvery,
	})
}

// NewEngine wraps an existing pool. The pool is split into one
// contiguous partition per stream (capped to the vendor count), and
// partition i draws only from streams[i].
func NewEngine(pool *market.Pool, streams []Rand, opts Options) (*Engine, error) {
	if pool == nil || pool.Len() == 0 {
		return nil, errors.New("engine requires a non-empty pool")
	}
	if len(streams) == 0 {
		return nil, errors.New("engine requires at least one random stream")
	}

	slices := pool.Partition(len(streams))
	parts := make([]partition, len(slices))
	for i, vs := range slices {
		if streams[i] == nil {
			return nil, fmt.Errorf("random stream %d is nil", i)
		}
		parts[i] = partition{vendors: vs, rng: streams[i]}
	}

	return &Engine{
		pool:        pool,
		parts:       parts,
		adjustEvery: opts.AdjustEvery,
		reportEvery: opts.ReportEvery,
	}, nil
}

// AddObserver registers o to be called after every step.
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

func (e *Engine) Pool() *market.Pool { return e.pool }

// Steps returns the number of steps completed so far.
func (e *Engine) Steps() int { return e.step }

func (e *Engine) Workers() int { return len(e.parts) }

func (e *Engine) Timings() Timings { return e.timings }

// Step advances the simulation by one step.
func (e *Engine) Step() error {
	step := e.step

	t0 := time.Now()
	priceMax := e.pool.PriceMax
	e.each(func(p partition) {
		processSales(p.vendors, priceMax, p.rng)
	})
	e.timings.Sales += time.Since(t0)

	stats := StepStats{Step: step}
	if ShouldAdjust(step, e.adjustEvery) {
		t1 := time.Now()
		bounds := e.pool.Bounds()
		e.each(func(p partition) {
			adjustPrices(p.vendors, bounds, p.rng)
		})
		e.timings.Pricing += time.Since(t1)
		stats.Adjusted = true
	}

	e.step++

	if len(e.observers) == 0 {
		return nil
	}
	if e.reportEvery > 0 && step%e.reportEvery == 0 {
		t2 := time.Now()
		stats.Revenue, stats.Units = e.totals()
		stats.Reported = true
		e.timings.Display += time.Since(t2)
	}
	for _, o := range e.observers {
		if err := o.OnStep(stats); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
	}
	return nil
}

// Run executes steps more steps and summarizes the pool.
func (e *Engine) Run(steps int) (Result, error) {
	start := time.Now()
	for i := 0; i < steps; i++ {
		if err := e.Step(); err != nil {
			e.timings.Total += time.Since(start)
			return Result{Steps: e.step, Timings: e.timings}, err
		}
	}
	e.timings.Total += time.Since(start)

	return Result{
		Steps:   e.step,
		Summary: Summarize(e.pool),
		Timings: e.timings,
	}, nil
}

// each runs fn over every partition and returns once all are done.
func (e *Engine) each(fn func(partition)) {
	if len(e.parts) == 1 {
		fn(e.parts[0])
		return
	}

	var g errgroup.Group
	for _, p := range e.parts {
		g.Go(func() error {
			fn(p)
			return nil
		})
	}
	_ = g.Wait()
}

// totals sums per partition, then folds the partial sums in partition
// order so the result does not depend on scheduling.
func (e *Engine) totals() (float64, int) {
	revs := make([]float64, len(e.parts))
	units := make([]int, len(e.parts))

	if len(e.parts) == 1 {
		revs[0], units[0] = Totals(e.parts[0].vendors)
	} else {
		var g errgroup.Group
		for i, p := range e.parts {
			g.Go(func() error {
				revs[i], units[i] = Totals(p.vendors)
				return nil
			})
		}
		_ = g.Wait()
	}

	var rev float64
	var n int
	for i := range revs {
		rev += revs[i]
		n += units[i]
	}
	return rev, n
}
