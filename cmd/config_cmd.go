package cmd

import (
	"fmt"

	"ratecard/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    State database: %s\n", config.StatePath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Defaults]")
	fmt.Printf("    Currency:       %s\n", cfg.Defaults.Currency)
	fmt.Printf("    Hours per day:  %g\n", cfg.Defaults.HoursPerDay)
	fmt.Printf("    Days per week:  %g\n", cfg.Defaults.DaysPerWeek)

	return nil
}
