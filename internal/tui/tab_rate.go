package tui

import (
	"fmt"
	"strings"

	"ratecard/internal/cli"
	"ratecard/internal/ledger"
	"ratecard/internal/model"
	"ratecard/internal/rate"
	"ratecard/internal/tui/components"
	"ratecard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderRateTab(cw int) string {
	t := theme.Active
	cur := a.state.Inputs.Currency
	b := rate.Explain(a.state.Inputs)
	pending, paid := ledger.Totals(a.state.Ledger)

	var out strings.Builder

	taxDetail := "no tax buffer"
	if b.TaxApplied {
		taxDetail = fmt.Sprintf("incl. %s tax buffer", cli.FormatPercent(a.state.Inputs.TaxRatePercent))
	}

	cards := []components.Metric{
		{Label: "Hourly rate", Value: cli.FormatRate(b.HourlyRate, cur), Detail: taxDetail, Color: t.Accent},
		{Label: "Pending", Value: cli.FormatMoney(pending, cur), Detail: projectCount(a.state.Ledger.Projects, false), Color: t.Orange},
		{Label: "Paid", Value: cli.FormatMoney(paid, cur), Detail: projectCount(a.state.Ledger.Projects, true), Color: t.Green},
	}
	out.WriteString(components.MetricCardRow(cards, cw))
	out.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	line := func(label, value string) {
		out.WriteString("  ")
		out.WriteString(labelStyle.Render(fmt.Sprintf("%-22s", label)))
		out.WriteString(valueStyle.Render(value))
		out.WriteString("\n")
	}

	line("Income target", cli.FormatMoney(a.state.Inputs.Income, cur))
	line("Expenses", cli.FormatMoney(a.state.Inputs.Expenses, cur))
	line("Net monthly need", cli.FormatMoney(b.NetMonthlyNeed, cur))
	if b.TaxApplied {
		line("Tax buffer", cli.FormatMoney(b.TaxBuffer, cur))
		line("Gross monthly need", cli.FormatMoney(b.GrossMonthlyNeed, cur))
	}
	line("Billable hours/month", cli.FormatHours(b.TotalHoursPerMonth))

	if b.TotalHoursPerMonth == 0 {
		out.WriteString("\n  ")
		out.WriteString(dimStyle.Render("No billable hours configured — set them in Settings."))
		out.WriteString("\n")
	}

	return out.String()
}

func projectCount(projects []model.Project, paid bool) string {
	n := 0
	for _, p := range projects {
		if (p.Status == model.StatusPaid) == paid {
			n++
		}
	}
	if n == 1 {
		return "1 project"
	}
	return fmt.Sprintf("%d projects", n)
}
