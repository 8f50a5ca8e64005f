package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the journal database at path. WAL mode
// keeps per-step inserts cheap.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path))
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordStep(s StepRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO steps (run_id, step, adjusted, revenue, units)
		VALUES (?, ?, ?, ?, ?)`,
		s.RunID, s.Step, s.Adjusted, s.Revenue, s.Units,
	)
	return err
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, seed, vendors, steps, workers, price_min, price_max,
		 total_revenue, total_units, best_vendor_id, best_vendor_sales, average_price, revenue_per_unit,
		 sales_ns, pricing_ns, display_ns, total_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, int64(r.Seed), r.Vendors, r.Steps, r.Workers, r.PriceMin, r.PriceMax,
		r.TotalRevenue, r.TotalUnits, r.BestVendorID, r.BestVendorSales, r.AveragePrice, r.RevenuePerUnit,
		int64(r.SalesTime), int64(r.PricingTime), int64(r.DisplayTime), int64(r.TotalTime),
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
