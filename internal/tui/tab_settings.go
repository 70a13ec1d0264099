package tui

import (
	"fmt"
	"strings"

	"ratecard/internal/cli"
	"ratecard/internal/rate"
	"ratecard/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldIncome = iota
	settingsFieldExpenses
	settingsFieldTaxRate
	settingsFieldHoursPerDay
	settingsFieldDaysPerWeek
	settingsFieldCurrency
	settingsFieldCount // sentinel
)

var settingsLabels = [settingsFieldCount]string{
	"Monthly income target",
	"Monthly expenses",
	"Tax buffer %",
	"Billable hours per day",
	"Working days per week",
	"Currency",
}

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

func newSettingsState() settingsState {
	return settingsState{}
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 20
	return ti
}

func (a App) settingsFieldValue(field int) string {
	in := a.state.Inputs
	switch field {
	case settingsFieldIncome:
		return fmt.Sprintf("%g", in.Income)
	case settingsFieldExpenses:
		return fmt.Sprintf("%g", in.Expenses)
	case settingsFieldTaxRate:
		return fmt.Sprintf("%g", in.TaxRatePercent)
	case settingsFieldHoursPerDay:
		return fmt.Sprintf("%g", in.HoursPerDay)
	case settingsFieldDaysPerWeek:
		return fmt.Sprintf("%g", in.DaysPerWeek)
	case settingsFieldCurrency:
		return in.Currency
	}
	return ""
}

func (a App) settingsFieldDisplay(field int) string {
	in := a.state.Inputs
	switch field {
	case settingsFieldIncome:
		return cli.FormatMoney(in.Income, in.Currency)
	case settingsFieldExpenses:
		return cli.FormatMoney(in.Expenses, in.Currency)
	case settingsFieldTaxRate:
		return cli.FormatPercent(in.TaxRatePercent)
	case settingsFieldHoursPerDay:
		return cli.FormatHours(in.HoursPerDay)
	case settingsFieldDaysPerWeek:
		return fmt.Sprintf("%g", in.DaysPerWeek)
	case settingsFieldCurrency:
		return in.Currency
	}
	return ""
}

func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "enter", "e":
		ti := newSettingsInput()
		ti.SetValue(a.settingsFieldValue(a.settings.cursor))
		ti.Focus()
		a.settings.input = ti
		a.settings.editing = true
		return a, ti.Cursor.BlinkCmd()
	}
	return a, nil
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsCommit()
		a.settings.editing = false
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsCommit applies the edited value. Unparseable numeric input
// normalizes to 0; derived values are recomputed and saved at once.
func (a *App) settingsCommit() {
	value := strings.TrimSpace(a.settings.input.Value())

	if a.settings.cursor == settingsFieldCurrency {
		if value != "" {
			a.state.Inputs.Currency = strings.ToUpper(value)
		}
	} else {
		parsed := rate.ParseAmount(value)
		switch a.settings.cursor {
		case settingsFieldIncome:
			a.state.Inputs.Income = parsed
		case settingsFieldExpenses:
			a.state.Inputs.Expenses = parsed
		case settingsFieldTaxRate:
			a.state.Inputs.TaxRatePercent = parsed
		case settingsFieldHoursPerDay:
			a.state.Inputs.HoursPerDay = parsed
		case settingsFieldDaysPerWeek:
			a.state.Inputs.DaysPerWeek = parsed
		}
	}

	a.persist()
	if a.saveErr == nil {
		a.note = fmt.Sprintf("rate is now %s", cli.FormatRate(a.state.HourlyRate, a.state.Inputs.Currency))
	}
}

func (a App) renderSettingsTab(_ int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var out strings.Builder
	out.WriteString("\n")

	for field := 0; field < settingsFieldCount; field++ {
		cursor := "  "
		label := labelStyle.Render(fmt.Sprintf("%-24s", settingsLabels[field]))
		if field == a.settings.cursor {
			cursor = selectedStyle.Render("▸ ")
			label = selectedStyle.Render(fmt.Sprintf("%-24s", settingsLabels[field]))
		}

		out.WriteString("  ")
		out.WriteString(cursor)
		out.WriteString(label)

		if a.settings.editing && field == a.settings.cursor {
			out.WriteString(a.settings.input.View())
		} else {
			out.WriteString(valueStyle.Render(a.settingsFieldDisplay(field)))
		}
		out.WriteString("\n")
	}

	out.WriteString("\n  ")
	out.WriteString(dimStyle.Render("Every change recomputes the rate and reprices all projects."))
	out.WriteString("\n")

	return out.String()
}
