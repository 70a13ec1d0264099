// Package tui provides the interactive Bubble Tea dashboard for ratecard.
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"ratecard/internal/ledger"
	"ratecard/internal/model"
	"ratecard/internal/rate"
	"ratecard/internal/store"
	"ratecard/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabRate = iota
	tabProjects
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
)

// App is the root Bubble Tea model. It owns the single authoritative
// application state; every mutation recomputes the rate, reprices the
// ledger, and persists before the next event is processed.
type App struct {
	state model.State
	store *store.Store

	width     int
	height    int
	activeTab int

	proj     projectsState
	settings settingsState

	// Add-project form (huh), nil when closed
	addForm *huh.Form
	addVals addValues
	addErr  error

	saveErr error
	note    string // transient confirmation shown in the status bar
}

type projectsState struct {
	cursor int
}

type addValues struct {
	name  string
	hours string
}

// NewApp creates the TUI app around a loaded state and an open store.
func NewApp(st model.State, s *store.Store) App {
	return App{
		state:    st,
		store:    s,
		settings: newSettingsState(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// persist recomputes derived values and saves the full state. No
// stale rate, price, or total survives a mutation.
func (a *App) persist() {
	a.state.HourlyRate = rate.Compute(a.state.Inputs)
	a.state.Ledger = ledger.Reprice(a.state.Ledger, a.state.HourlyRate)
	a.saveErr = a.store.Save(a.state)
	if a.saveErr != nil {
		a.note = "save failed"
	}
}

func (a *App) clampProjectCursor() {
	if a.proj.cursor >= len(a.state.Ledger.Projects) {
		a.proj.cursor = len(a.state.Ledger.Projects) - 1
	}
	if a.proj.cursor < 0 {
		a.proj.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(min(msg.Width-4, 60))
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Add-project form intercepts all other keys while open
		if a.addForm != nil {
			return a.updateAddForm(msg)
		}

		// Settings editing has its own keybindings (text input)
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		a.note = ""

		switch key {
		case "q":
			return a, tea.Quit
		case "r", "1":
			a.activeTab = tabRate
			return a, nil
		case "p", "2":
			a.activeTab = tabProjects
			return a, nil
		case "s", "3":
			a.activeTab = tabSettings
			return a, nil
		case "tab", "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab", "left":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		}

		switch a.activeTab {
		case tabProjects:
			return a.updateProjectsKeys(key)
		case tabSettings:
			return a.updateSettingsKeys(key)
		}
		return a, nil
	}

	// Forward unhandled messages to the add form and the settings
	// input (cursor blinks, etc.)
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateProjectsKeys(key string) (tea.Model, tea.Cmd) {
	projects := a.state.Ledger.Projects

	switch key {
	case "j", "down":
		if a.proj.cursor < len(projects)-1 {
			a.proj.cursor++
		}
	case "k", "up":
		if a.proj.cursor > 0 {
			a.proj.cursor--
		}
	case "g":
		a.proj.cursor = 0
	case "G":
		a.proj.cursor = len(projects) - 1
		a.clampProjectCursor()
	case "a":
		a.addVals = addValues{}
		a.addErr = nil
		a.addForm = newAddForm(&a.addVals).WithWidth(min(a.width-4, 60))
		return a, a.addForm.Init()
	case " ", "enter":
		if len(projects) > 0 {
			p := projects[a.proj.cursor]
			a.state.Ledger = ledger.Toggle(a.state.Ledger, p.ID)
			a.persist()
			a.note = fmt.Sprintf("%q marked %s", p.Name, a.state.Ledger.Projects[a.proj.cursor].Status)
		}
	case "d", "x":
		if len(projects) > 0 {
			p := projects[a.proj.cursor]
			a.state.Ledger = ledger.Delete(a.state.Ledger, p.ID)
			a.clampProjectCursor()
			a.persist()
			a.note = fmt.Sprintf("deleted %q", p.Name)
		}
	}
	return a, nil
}

// newAddForm builds the huh form for a new project entry.
func newAddForm(vals *addValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&vals.name),
			huh.NewInput().
				Title("Estimated hours").
				Placeholder("10").
				Value(&vals.hours),
		),
	).WithShowHelp(true)
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.addForm = nil
		a.addErr = nil
		return a, nil
	}

	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	if a.addForm.State == huh.StateCompleted {
		hours, err := strconv.ParseFloat(strings.TrimSpace(a.addVals.hours), 64)
		if err != nil {
			hours = math.NaN()
		}

		newLedger, p, addErr := ledger.Add(a.state.Ledger, a.addVals.name, hours, a.state.HourlyRate)
		if addErr != nil {
			// Reopen the form with the rejected values and the
			// validation notice; the ledger is unchanged.
			a.addErr = addErr
			a.addForm = newAddForm(&a.addVals).WithWidth(min(a.width-4, 60))
			return a, a.addForm.Init()
		}

		a.state.Ledger = newLedger
		a.addForm = nil
		a.addErr = nil
		a.proj.cursor = len(a.state.Ledger.Projects) - 1
		a.persist()
		a.note = fmt.Sprintf("added %q", p.Name)
		return a, nil
	}

	if a.addForm.State == huh.StateAborted {
		a.addForm = nil
		a.addErr = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  ratecard needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	cw := a.contentWidth()
	var b strings.Builder

	b.WriteString(components.RenderTabBar(a.activeTab, cw))
	b.WriteString("\n")

	switch a.activeTab {
	case tabRate:
		b.WriteString(a.renderRateTab(cw))
	case tabProjects:
		b.WriteString(a.renderProjectsTab(cw))
	case tabSettings:
		b.WriteString(a.renderSettingsTab(cw))
	}

	content := b.String()

	// Pin the status bar to the bottom of the terminal
	contentHeight := lipgloss.Height(content)
	gap := a.height - contentHeight - 1
	if gap > 0 {
		content += strings.Repeat("\n", gap)
	}

	note := a.note
	if a.saveErr != nil {
		note = "save failed: " + a.saveErr.Error()
	}
	content += "\n" + components.RenderStatusBar(cw, a.statusHints(), note)

	return content
}

func (a App) statusHints() string {
	switch a.activeTab {
	case tabProjects:
		if a.addForm != nil {
			return "[enter]next  [esc]cancel"
		}
		return "[a]dd  [space]toggle  [d]elete  [j/k]move  [q]uit"
	case tabSettings:
		if a.settings.editing {
			return "[enter]save  [esc]cancel"
		}
		return "[enter]edit  [j/k]move  [q]uit"
	default:
		return "[r/p/s]tabs  [q]uit"
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
