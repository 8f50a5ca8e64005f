package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "puestos",
	Short: "Simulate dynamic pricing and sales across a large vendor population",
	Long: `Puestos simulates hundreds of thousands of independent street vendors
over a fixed number of discrete steps.

Every step each vendor receives a random number of prospective customers
whose purchase probability depends on the vendor's price. Every second
step vendors reprice from their recent sales.

It provides tools for:
  - Running reproducible, seeded simulations (optionally in parallel)
  - Journaling runs and per-step totals to CSV or SQLite
  - Exporting the final vendor state to Parquet
  - Querying past runs from the journal`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
