package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
)

var (
	colorFeature   = lipgloss.Color("#00E676")
	colorBug       = lipgloss.Color("#FF5252")
	colorRefactor  = lipgloss.Color("#5B8DEF")
	colorDocs      = lipgloss.Color("#00BFFF")
	colorChore     = lipgloss.Color("#8C8C8C")
	colorMilestone = lipgloss.Color("#FFD700")
	colorWarning   = lipgloss.Color("#FF9800")
	colorMuted     = lipgloss.Color("#636363")
	colorText      = lipgloss.Color("#EEEEEE")
)

var typeColors = map[types.SubcommitType]lipgloss.Color{
	types.SubcommitFeature:   colorFeature,
	types.SubcommitBug:       colorBug,
	types.SubcommitRefactor:  colorRefactor,
	types.SubcommitDocs:      colorDocs,
	types.SubcommitChore:     colorChore,
	types.SubcommitMilestone: colorMilestone,
	types.SubcommitWarning:   colorWarning,
}

const (
	iconDone    = "✓"
	iconActive  = "◎"
	iconPending = "·"
	iconFailed  = "✗"
)

var (
	styleDay = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			MarginTop(1)

	styleEpic = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMilestone).
			PaddingLeft(2)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorDocs).
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(colorBug).
			Bold(true)

	styleDetailBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)
)

// typeBadge renders the type tag of a subcommit in its type colour.
func typeBadge(t types.SubcommitType) string {
	t = t.Normalize()
	return lipgloss.NewStyle().
		Foreground(typeColors[t]).
		Bold(true).
		Render("[" + string(t) + "]")
}
