package components

import (
	"strings"

	"ratecard/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Rate", Key: 'r'},
	{Name: "Projects", Key: 'p'},
	{Name: "Settings", Key: 's'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 2)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		label := "[" + string(tab.Key) + "] " + tab.Name
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}

	ruleWidth := width
	if ruleWidth < 0 {
		ruleWidth = 0
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	rule := keyStyle.Render(strings.Repeat("─", ruleWidth))
	return bar + "\n" + rule
}
