package tui

import (
	"fmt"
	"strings"

	"ratecard/internal/cli"
	"ratecard/internal/ledger"
	"ratecard/internal/model"
	"ratecard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProjectsTab(cw int) string {
	t := theme.Active
	cur := a.state.Inputs.Currency
	projects := a.state.Ledger.Projects

	var out strings.Builder

	// Add form replaces the list while open
	if a.addForm != nil {
		if a.addErr != nil {
			errStyle := lipgloss.NewStyle().Foreground(t.Red)
			out.WriteString("  ")
			out.WriteString(errStyle.Render(a.addErr.Error()))
			out.WriteString("\n\n")
		}
		out.WriteString(a.addForm.View())
		return out.String()
	}

	if len(projects) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		out.WriteString("\n  ")
		out.WriteString(dimStyle.Render("No projects yet. Press [a] to add one."))
		out.WriteString("\n")
		return out.String()
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	paidStyle := lipgloss.NewStyle().Foreground(t.Green)
	pendingStyle := lipgloss.NewStyle().Foreground(t.Orange)

	nameWidth := cw - 36
	if nameWidth < 12 {
		nameWidth = 12
	}

	for i, p := range projects {
		statusStyle := pendingStyle
		if p.Status == model.StatusPaid {
			statusStyle = paidStyle
		}

		row := fmt.Sprintf(" %-*s %8s %12s  %-7s",
			nameWidth, cli.Truncate(p.Name, nameWidth),
			cli.FormatHours(p.Hours),
			cli.FormatMoney(p.Price, cur),
			p.Status,
		)

		if i == a.proj.cursor {
			out.WriteString(selectedStyle.Render("▸" + row))
		} else {
			out.WriteString(rowStyle.Render(" "))
			out.WriteString(rowStyle.Render(fmt.Sprintf(" %-*s %8s %12s  ",
				nameWidth, cli.Truncate(p.Name, nameWidth),
				cli.FormatHours(p.Hours),
				cli.FormatMoney(p.Price, cur),
			)))
			out.WriteString(statusStyle.Render(fmt.Sprintf("%-7s", p.Status)))
		}
		out.WriteString("\n")
	}

	pending, paid := ledger.Totals(a.state.Ledger)
	out.WriteString("\n")
	out.WriteString(mutedStyle.Render("  Pending "))
	out.WriteString(pendingStyle.Render(cli.FormatMoney(pending, cur)))
	out.WriteString(mutedStyle.Render("   Paid "))
	out.WriteString(paidStyle.Render(cli.FormatMoney(paid, cur)))
	out.WriteString("\n")

	return out.String()
}
