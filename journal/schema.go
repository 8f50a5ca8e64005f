// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	seed INTEGER NOT NULL,
	vendors INTEGER NOT NULL,
	steps INTEGER NOT NULL,
	workers INTEGER NOT NULL,
	price_min REAL NOT NULL,
	price_max REAL NOT NULL,
	total_revenue REAL NOT NULL,
	total_units INTEGER NOT NULL,
	best_vendor_id INTEGER NOT NULL,
	best_vendor_sales INTEGER NOT NULL,
	average_price REAL NOT NULL,
	revenue_per_unit REAL NOT NULL,
	sales_ns INTEGER NOT NULL,
	pricing_ns INTEGER NOT NULL,
	display_ns INTEGER NOT NULL,
	total_ns INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS steps (
	run_id TEXT NOT NULL,
	step INTEGER NOT NULL,
	adjusted INTEGER NOT NULL,
	revenue REAL NOT NULL,
	units INTEGER NOT NULL,
	PRIMARY KEY (run_id, step)
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created);
`
