package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"ratecard/internal/cli"
	"ratecard/internal/config"
	"ratecard/internal/rate"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()

	_, s, st, err := openState()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	fmt.Println()
	fmt.Println("  Welcome to ratecard!")
	fmt.Println()

	// 1. Currency
	fmt.Println("  1. Display currency")
	fmt.Printf("     Supported: %s\n", strings.Join(cli.SupportedCurrencies, ", "))
	fmt.Printf("     Current: %s\n", st.Inputs.Currency)
	fmt.Print("     > ")
	if v := readLine(reader); v != "" {
		st.Inputs.Currency = strings.ToUpper(v)
	}
	fmt.Println()

	// 2. Working schedule
	fmt.Println("  2. Working schedule")
	fmt.Printf("     Billable hours per day [%g]: ", st.Inputs.HoursPerDay)
	if v := readLine(reader); v != "" {
		st.Inputs.HoursPerDay = rate.ParseAmount(v)
	}
	fmt.Printf("     Working days per week [%g]: ", st.Inputs.DaysPerWeek)
	if v := readLine(reader); v != "" {
		st.Inputs.DaysPerWeek = rate.ParseAmount(v)
	}
	fmt.Println()

	// 3. Monthly finances
	fmt.Println("  3. Monthly finances")
	fmt.Printf("     Income target [%s]: ", cli.FormatMoney(st.Inputs.Income, st.Inputs.Currency))
	if v := readLine(reader); v != "" {
		st.Inputs.Income = rate.ParseAmount(v)
	}
	fmt.Printf("     Business expenses [%s]: ", cli.FormatMoney(st.Inputs.Expenses, st.Inputs.Currency))
	if v := readLine(reader); v != "" {
		st.Inputs.Expenses = rate.ParseAmount(v)
	}
	fmt.Printf("     Tax buffer %% [%s]: ", cli.FormatPercent(st.Inputs.TaxRatePercent))
	if v := readLine(reader); v != "" {
		st.Inputs.TaxRatePercent = rate.ParseAmount(v)
	}
	fmt.Println()

	if err := saveState(s, &st); err != nil {
		return err
	}

	// Remember the chosen currency and schedule as defaults for a
	// future fresh state.
	cfg.Defaults.Currency = st.Inputs.Currency
	cfg.Defaults.HoursPerDay = st.Inputs.HoursPerDay
	cfg.Defaults.DaysPerWeek = st.Inputs.DaysPerWeek
	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "  Could not save config: %v\n", err)
	}

	fmt.Printf("  All set! Your hourly rate is %s.\n",
		cli.FormatRate(st.HourlyRate, st.Inputs.Currency))
	fmt.Println("  Run `ratecard tui` for the interactive dashboard.")
	fmt.Println()

	return nil
}

func readLine(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
