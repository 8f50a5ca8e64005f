package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/puestos/config"
	"github.com/rustyeddy/puestos/export"
	"github.com/rustyeddy/puestos/internal/id"
	"github.com/rustyeddy/puestos/internal/obs"
	"github.com/rustyeddy/puestos/journal"
	"github.com/rustyeddy/puestos/report"
	"github.com/rustyeddy/puestos/sim"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation",
	Long: `Run a vendor pricing simulation.

Without a config file the reference scenario is used: 610,000 vendors
priced between Q12 and Q18, 1000 steps. Flags override the file.

Examples:
  puestos run
  puestos run --vendors 10000 --steps 200 --seed 7
  puestos run -f puestos.yaml --workers 8 --export vendors.parquet`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

var (
	runConfigPath string
	runVendors    int
	runSteps      int
	runSeed       uint64
	runWorkers    int
	runExport     string
	runJournal    string
	runDBPath     string
	runOrgPath    string
	runNoProgress bool
	runLogLevel   string
	runLogJSON    bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	f := runCmd.Flags()
	f.StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	f.IntVar(&runVendors, "vendors", 0, "number of vendors")
	f.IntVar(&runSteps, "steps", 0, "number of simulated steps")
	f.Uint64Var(&runSeed, "seed", 0, "random seed")
	f.IntVar(&runWorkers, "workers", 0, "parallel partitions per step")
	f.StringVar(&runExport, "export", "", "write final vendor state to this Parquet file")
	f.StringVar(&runJournal, "journal", "", "journal type: none, csv or sqlite")
	f.StringVar(&runDBPath, "db", "", "SQLite journal path")
	f.StringVar(&runOrgPath, "org", "", "write an Org-mode run report to this path")
	f.BoolVar(&runNoProgress, "no-progress", false, "disable the progress bar")
	f.StringVar(&runLogLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&runLogJSON, "log-json", false, "log as JSON")
}

// loadRunConfig merges the optional config file with explicitly set flags.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if runConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(runConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("vendors") {
		cfg.Simulation.Vendors = runVendors
	}
	if flags.Changed("steps") {
		cfg.Simulation.Steps = runSteps
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed = runSeed
	}
	if flags.Changed("workers") {
		cfg.Simulation.Workers = runWorkers
	}
	if flags.Changed("export") {
		cfg.Export.ParquetPath = runExport
	}
	if flags.Changed("journal") {
		cfg.Journal.Type = runJournal
	}
	if flags.Changed("db") {
		cfg.Journal.DBPath = runDBPath
	}
	if flags.Changed("no-progress") {
		cfg.Progress = !runNoProgress
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = runLogLevel
	}
	if flags.Changed("log-json") {
		cfg.Logging.JSON = runLogJSON
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	level, err := obs.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	obs.Init(cmd.ErrOrStderr(), level, cfg.Logging.JSON)
	log := obs.Logger

	out := cmd.OutOrStdout()
	s := cfg.Simulation
	params := s.Params()

	fmt.Fprintln(out, "Initializing vendor pool...")
	engine, err := sim.New(params)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	j, err := journal.Open(cfg.Journal.Type, cfg.Journal.RunsFile, cfg.Journal.StepsFile, cfg.Journal.DBPath)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	runID := id.New()
	created := time.Now()
	log.Info("run starting",
		"run_id", runID,
		"vendors", s.Vendors,
		"steps", s.Steps,
		"seed", s.Seed,
		"workers", engine.Workers(),
		"journal", cfg.Journal.Type,
	)

	if _, ok := j.(journal.Discard); !ok {
		engine.AddObserver(journal.StepObserver(j, runID))
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress && s.Steps > 0 {
		bar = progressbar.NewOptions(s.Steps,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("simulating"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		engine.AddObserver(sim.ObserverFunc(func(sim.StepStats) error {
			return bar.Add(1)
		}))
	}

	fmt.Fprintf(out, "Starting simulation for %d steps...\n", s.Steps)
	res, err := engine.Run(s.Steps)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("run simulation: %w", err)
	}

	rec := journal.NewRunRecord(runID, created, params, engine.Workers(), res)
	if err := j.RecordRun(rec); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	log.Debug("run recorded", "run_id", runID, "elapsed", res.Timings.Total)

	if cfg.Export.ParquetPath != "" {
		if err := export.WriteVendorsParquet(cfg.Export.ParquetPath, runID, engine.Pool()); err != nil {
			return fmt.Errorf("export vendors: %w", err)
		}
		log.Info("vendors exported", "path", cfg.Export.ParquetPath, "rows", engine.Pool().Len())
	}

	if runOrgPath != "" {
		if err := journal.WriteRunOrg(runOrgPath, rec); err != nil {
			return fmt.Errorf("write org report: %w", err)
		}
	}

	report.PrintSummary(out, rec)
	return nil
}
