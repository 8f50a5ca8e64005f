package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	runs   *csv.Writer
	steps  *csv.Writer
	rf, sf *os.File
}

var (
	runsHeader = []string{
		"run_id", "created", "seed", "vendors", "steps", "workers", "price_min", "price_max",
		"total_revenue", "total_units", "best_vendor_id", "best_vendor_sales", "average_price", "revenue_per_unit",
		"sales_s", "pricing_s", "display_s", "total_s",
	}
	stepsHeader = []string{"run_id", "step", "adjusted", "revenue", "units"}
)

func NewCSV(runsPath, stepsPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(stepsPath)
	if err != nil {
		_ = rf.Close()
		return nil, err
	}

	rw := csv.NewWriter(rf)
	sw := csv.NewWriter(sf)

	if err := rw.Write(runsHeader); err != nil {
		return nil, err
	}
	if err := sw.Write(stepsHeader); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{rw, sw, rf, sf}, nil
}

func (j *CSVJournal) RecordStep(s StepRecord) error {
	err := j.steps.Write([]string{
		s.RunID,
		strconv.Itoa(s.Step),
		strconv.FormatBool(s.Adjusted),
		f(s.Revenue),
		strconv.Itoa(s.Units),
	})
	if err != nil {
		return err
	}

	j.steps.Flush()
	return j.steps.Error()
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Created.UTC().Format(time.RFC3339),
		strconv.FormatUint(r.Seed, 10),
		strconv.Itoa(r.Vendors),
		strconv.Itoa(r.Steps),
		strconv.Itoa(r.Workers),
		f(r.PriceMin),
		f(r.PriceMax),
		f(r.TotalRevenue),
		strconv.Itoa(r.TotalUnits),
		strconv.Itoa(r.BestVendorID),
		strconv.Itoa(r.BestVendorSales),
		f(r.AveragePrice),
		f(r.RevenuePerUnit),
		f(r.SalesTime.Seconds()),
		f(r.PricingTime.Seconds()),
		f(r.DisplayTime.Seconds()),
		f(r.TotalTime.Seconds()),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}
	j.steps.Flush()
	if err := j.steps.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	if err := j.sf.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
