// Package cmd implements the ratecard CLI commands.
package cmd

import (
	"fmt"
	"os"

	"ratecard/internal/cli"
	"ratecard/internal/config"
	"ratecard/internal/ledger"
	"ratecard/internal/model"
	"ratecard/internal/rate"
	"ratecard/internal/store"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "ratecard",
	Short: "Freelance pricing calculator",
	Long:  "Derive your hourly billing rate from income targets, expenses, and tax buffer, and track per-project billing status.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override state directory")
}

// openState loads config and the persisted state. The returned store
// stays open; callers that mutate must call saveState and Close.
func openState() (config.Config, *store.Store, model.State, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, model.State{}, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	s, err := store.Open(config.StatePath(cfg))
	if err != nil {
		return cfg, nil, model.State{}, err
	}

	st, found, err := s.Load()
	if err != nil {
		_ = s.Close()
		return cfg, nil, model.State{}, err
	}
	if !found {
		st = model.DefaultState()
		st.Inputs.Currency = cfg.Defaults.Currency
		st.Inputs.HoursPerDay = cfg.Defaults.HoursPerDay
		st.Inputs.DaysPerWeek = cfg.Defaults.DaysPerWeek
		st.HourlyRate = rate.Compute(st.Inputs)
	}

	return cfg, s, st, nil
}

// saveState persists the state, keeping the cached rate and every
// project price consistent with the current inputs first.
func saveState(s *store.Store, st *model.State) error {
	st.HourlyRate = rate.Compute(st.Inputs)
	st.Ledger = ledger.Reprice(st.Ledger, st.HourlyRate)
	return s.Save(*st)
}

func runOverview(_ *cobra.Command, _ []string) error {
	_, s, st, err := openState()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	cur := st.Inputs.Currency
	pending, paid := ledger.Totals(st.Ledger)

	fmt.Println()
	fmt.Println(cli.RenderTitle("RATECARD"))
	fmt.Println()
	fmt.Println(cli.RenderKV("Hourly rate", cli.FormatRate(st.HourlyRate, cur), 14))
	fmt.Println(cli.RenderKV("Projects", cli.FormatNumber(int64(len(st.Ledger.Projects))), 14))
	fmt.Println(cli.RenderKV("Pending", cli.FormatMoney(pending, cur), 14))
	fmt.Println(cli.RenderKV("Paid", cli.FormatMoney(paid, cur), 14))
	if pending+paid > 0 {
		fmt.Printf("\n  %s\n", cli.RenderSplitBar(pending, paid, 40))
	}
	fmt.Println()
	fmt.Println("  ratecard rate      rate breakdown")
	fmt.Println("  ratecard projects  project ledger")
	fmt.Println("  ratecard tui       interactive dashboard")
	fmt.Println()

	return nil
}
