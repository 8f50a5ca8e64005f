package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const runColumns = `run_id, created, seed, vendors, steps, workers, price_min, price_max,
	total_revenue, total_units, best_vendor_id, best_vendor_sales, average_price, revenue_per_unit,
	sales_ns, pricing_ns, display_ns, total_ns`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunRecord, error) {
	var (
		rec                         RunRecord
		seed                        int64
		sales, pricing, display, tt int64
	)
	err := row.Scan(
		&rec.RunID,
		&rec.Created,
		&seed,
		&rec.Vendors,
		&rec.Steps,
		&rec.Workers,
		&rec.PriceMin,
		&rec.PriceMax,
		&rec.TotalRevenue,
		&rec.TotalUnits,
		&rec.BestVendorID,
		&rec.BestVendorSales,
		&rec.AveragePrice,
		&rec.RevenuePerUnit,
		&sales,
		&pricing,
		&display,
		&tt,
	)
	if err != nil {
		return RunRecord{}, err
	}
	rec.Seed = uint64(seed)
	rec.SalesTime = time.Duration(sales)
	rec.PricingTime = time.Duration(pricing)
	rec.DisplayTime = time.Duration(display)
	rec.TotalTime = time.Duration(tt)
	return rec, nil
}

// GetRun returns a single run by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	row := j.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)

	rec, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunRecord{}, fmt.Errorf("run %q: %w", runID, ErrRunNotFound)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRuns returns every recorded run, oldest first.
func (j *SQLite) ListRuns() ([]RunRecord, error) {
	rows, err := j.db.Query(`SELECT ` + runColumns + ` FROM runs ORDER BY created ASC, run_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSteps returns the reported steps of a run in step order.
func (j *SQLite) ListSteps(runID string) ([]StepRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, step, adjusted, revenue, units
		FROM steps
		WHERE run_id = ?
		ORDER BY step ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StepRecord
	for rows.Next() {
		var rec StepRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Step,
			&rec.Adjusted,
			&rec.Revenue,
			&rec.Units,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
