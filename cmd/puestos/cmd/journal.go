package cmd

import (
	"fmt"

	"github.com/rustyeddy/puestos/journal"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the run journal",
	Long: `Query and display recorded runs from the SQLite journal.

Subcommands:
  runs   - List all recorded runs
  run    - Show a single run by ID
  steps  - Show the per-step totals of a run

Examples:
  puestos journal runs
  puestos journal run 01J0ABCDEF...
  puestos journal steps 01J0ABCDEF...`,
}

var journalRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	RunE:  runJournalRuns,
}

var journalRunCmd = &cobra.Command{
	Use:   "run <run-id>",
	Short: "Show a single run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalRun,
}

var journalStepsCmd = &cobra.Command{
	Use:   "steps <run-id>",
	Short: "Show per-step totals of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalSteps,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalRunsCmd)
	journalCmd.AddCommand(journalRunCmd)
	journalCmd.AddCommand(journalStepsCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./puestos.sqlite", "path to SQLite journal DB")
}

func openJournal() (*journal.SQLite, error) {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalRuns(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	runs, err := j.ListRuns()
	if err != nil {
		return fmt.Errorf("query runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatRunsOrg(runs))
	return nil
}

func runJournalRun(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetRun(args[0])
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatRunOrg(rec))
	return nil
}

func runJournalSteps(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	steps, err := j.ListSteps(args[0])
	if err != nil {
		return fmt.Errorf("query steps: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), journal.FormatStepsOrg(steps))
	return nil
}
