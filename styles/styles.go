package styles

import "github.com/charmbracelet/lipgloss"

const (
	// Hardcoded document width; the detected terminal width only truncates.
	Width = 72
)

// https://github.com/inngest/inngest/blob/main/pkg/cli/styles.go
var (
	Color     = lipgloss.AdaptiveColor{Light: "#111222", Dark: "#FAFAFA"}
	Primary   = lipgloss.Color("#4636f5")
	Red       = lipgloss.Color("#ff0000")
	White     = lipgloss.Color("#ffffff")
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	TextStyle = lipgloss.NewStyle().Foreground(Color)
	BoldStyle = TextStyle.Copy().Bold(true)

	BaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(Primary).
			Padding(0, 1).
			Bold(true)

	noteBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "-",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}

	// Scale strip.
	NoteStyle = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Border(noteBorder, true).
			BorderForeground(Highlight).
			Width(6)
	TonicStyle = NoteStyle.Copy().
			BorderForeground(Special).
			Bold(true)

	// Keyboard.
	WhiteKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#EEEEEE")).Padding(0, 1)
	BlackKey   = lipgloss.NewStyle().Foreground(White).Background(lipgloss.Color("#222222")).Padding(0, 1)
	InScaleKey = lipgloss.NewStyle().Foreground(White).Background(Highlight).Bold(true).Padding(0, 1)

	// Status Bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			Background(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"})

	StatusStyle = lipgloss.NewStyle().
			Inherit(StatusBarStyle).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#FF5F87")).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().Inherit(StatusBarStyle)
	EnabledExt = StatusStyle.Copy().Background(lipgloss.Color("#43BF6D"))

	HelpMenu = lipgloss.NewStyle().Align(lipgloss.Left).PaddingTop(1)
	// Page
	DocStyle = lipgloss.NewStyle().Padding(1, 2, 1, 2)
)

// RenderError returns a formatted error string.
func RenderError(msg string) string {
	// Error applies styles to an error message
	err := lipgloss.NewStyle().Background(Red).Foreground(White).Bold(true).Padding(0, 1).Render("Error")
	content := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(msg)
	return err + content
}
