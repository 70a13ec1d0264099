package cmd

import (
	"fmt"

	"ratecard/internal/cli"
	"ratecard/internal/rate"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Show the hourly rate breakdown",
	RunE:  runRate,
}

func init() {
	rootCmd.AddCommand(rateCmd)
}

func runRate(_ *cobra.Command, _ []string) error {
	_, s, st, err := openState()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	cur := st.Inputs.Currency
	b := rate.Explain(st.Inputs)

	fmt.Println()
	fmt.Println(cli.RenderTitle("HOURLY RATE"))
	fmt.Println()

	rows := [][]string{
		{"Income target", cli.FormatMoney(st.Inputs.Income, cur)},
		{"Expenses", cli.FormatMoney(st.Inputs.Expenses, cur)},
		{"Net monthly need", cli.FormatMoney(b.NetMonthlyNeed, cur)},
	}
	if b.TaxApplied {
		rows = append(rows,
			[]string{fmt.Sprintf("Tax buffer (%s)", cli.FormatPercent(st.Inputs.TaxRatePercent)), cli.FormatMoney(b.TaxBuffer, cur)},
			[]string{"Gross monthly need", cli.FormatMoney(b.GrossMonthlyNeed, cur)},
		)
	}
	rows = append(rows,
		[]string{"---"},
		[]string{fmt.Sprintf("Hours per month (%g/day, %g days/wk)", st.Inputs.HoursPerDay, st.Inputs.DaysPerWeek), cli.FormatHours(b.TotalHoursPerMonth)},
		[]string{"Hourly rate", cli.FormatRate(b.HourlyRate, cur)},
	)

	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))

	if b.TotalHoursPerMonth == 0 {
		fmt.Println("\n  No billable hours configured — set hours-day and days-week.")
	}
	fmt.Println()

	return nil
}
