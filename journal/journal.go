// journal/journal.go
package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/puestos/sim"
)

// ErrRunNotFound is returned by lookups for an unknown run id.
var ErrRunNotFound = errors.New("run not found")

// RunRecord is one completed simulation: its parameters, final
// aggregates and phase timings.
type RunRecord struct {
	RunID   string
	Created time.Time

	Seed     uint64
	Vendors  int
	Steps    int
	Workers  int
	PriceMin float64
	PriceMax float64

	TotalRevenue    float64
	TotalUnits      int
	BestVendorID    int
	BestVendorSales int
	AveragePrice    float64
	RevenuePerUnit  float64

	SalesTime   time.Duration
	PricingTime time.Duration
	DisplayTime time.Duration
	TotalTime   time.Duration
}

// StepRecord is the cumulative pool total after a reported step.
type StepRecord struct {
	RunID    string
	Step     int
	Adjusted bool
	Revenue  float64
	Units    int
}

type Journal interface {
	RecordStep(StepRecord) error
	RecordRun(RunRecord) error
	Close() error
}

// NewRunRecord builds the journal row for a finished run.
func NewRunRecord(runID string, created time.Time, p sim.Params, workers int, res sim.Result) RunRecord {
	return RunRecord{
		RunID:           runID,
		Created:         created,
		Seed:            p.Seed,
		Vendors:         res.Summary.Vendors,
		Steps:           res.Steps,
		Workers:         workers,
		PriceMin:        p.PriceMin,
		PriceMax:        p.PriceMax,
		TotalRevenue:    res.Summary.TotalRevenue,
		TotalUnits:      res.Summary.TotalUnits,
		BestVendorID:    res.Summary.BestVendorID,
		BestVendorSales: res.Summary.BestVendorSales,
		AveragePrice:    res.Summary.AveragePrice,
		RevenuePerUnit:  res.Summary.RevenuePerUnit,
		SalesTime:       res.Timings.Sales,
		PricingTime:     res.Timings.Pricing,
		DisplayTime:     res.Timings.Display,
		TotalTime:       res.Timings.Total,
	}
}

// StepObserver records every reported step of a run into j.
func StepObserver(j Journal, runID string) sim.Observer {
	return sim.ObserverFunc(func(s sim.StepStats) error {
		if !s.Reported {
			return nil
		}
		return j.RecordStep(StepRecord{
			RunID:    runID,
			Step:     s.Step,
			Adjusted: s.Adjusted,
			Revenue:  s.Revenue,
			Units:    s.Units,
		})
	})
}

// Discard is a Journal that drops everything.
type Discard struct{}

func (Discard) RecordStep(StepRecord) error { return nil }
func (Discard) RecordRun(RunRecord) error   { return nil }
func (Discard) Close() error                { return nil }

// Open returns the journal named by kind: "none", "csv" or "sqlite".
func Open(kind, runsPath, stepsPath, dbPath string) (Journal, error) {
	switch kind {
	case "", "none":
		return Discard{}, nil
	case "csv":
		return NewCSV(runsPath, stepsPath)
	case "sqlite":
		return NewSQLite(dbPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", kind)
	}
}
