package cmd

import (
	"fmt"
	"os"
	"strings"

	"ratecard/internal/cli"
	"ratecard/internal/rate"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Update a financial input",
	Long: `Update one financial input and reprice the ledger.

Fields: income, expenses, tax, hours-day, days-week, currency.
Numeric values that fail to parse are treated as 0.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	field := strings.ToLower(args[0])
	value := args[1]

	_, s, st, err := openState()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	switch field {
	case "income":
		st.Inputs.Income = rate.ParseAmount(value)
	case "expenses":
		st.Inputs.Expenses = rate.ParseAmount(value)
	case "tax", "tax-rate":
		st.Inputs.TaxRatePercent = rate.ParseAmount(value)
	case "hours-day", "hours":
		st.Inputs.HoursPerDay = rate.ParseAmount(value)
	case "days-week", "days":
		st.Inputs.DaysPerWeek = rate.ParseAmount(value)
	case "currency":
		code := strings.ToUpper(strings.TrimSpace(value))
		if code == "" {
			return fmt.Errorf("currency code must not be empty")
		}
		if !cli.KnownCurrency(code) {
			fmt.Fprintf(os.Stderr, "  Note: %s has no symbol mapping, amounts show as %q\n", code, code+" 1,000.00")
		}
		st.Inputs.Currency = code
	default:
		return fmt.Errorf("unknown field %q (income, expenses, tax, hours-day, days-week, currency)", field)
	}

	if err := saveState(s, &st); err != nil {
		return err
	}

	fmt.Printf("  Hourly rate: %s\n", cli.FormatRate(st.HourlyRate, st.Inputs.Currency))
	return nil
}
