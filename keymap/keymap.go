package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Mapping struct {
	RotateLeft     key.Binding
	RotateRight    key.Binding
	TransposeUp    key.Binding
	TransposeDown  key.Binding
	NextMode       key.Binding
	ToggleSpelling key.Binding
	Ext7           key.Binding
	Ext9           key.Binding
	Ext11          key.Binding
	Ext13          key.Binding
	RowDeeper      key.Binding
	RowShallower   key.Binding
	RowReset       key.Binding
	Audition       key.Binding
	Random         key.Binding
	Help           key.Binding
	Quit           key.Binding
}

var DefaultMapping = Mapping{
	RotateLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "rotate down"),
	),
	RotateRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "rotate up"),
	),
	TransposeUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "transpose up"),
	),
	TransposeDown: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "transpose down"),
	),
	NextMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "next mode"),
	),
	ToggleSpelling: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "sharps/flats"),
	),
	Ext7: key.NewBinding(
		key.WithKeys("7"),
		key.WithHelp("7", "toggle 7th"),
	),
	Ext9: key.NewBinding(
		key.WithKeys("9"),
		key.WithHelp("9", "toggle 9th"),
	),
	Ext11: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "toggle 11th"),
	),
	Ext13: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "toggle 13th"),
	),
	RowDeeper: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "row deeper"),
	),
	RowShallower: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "row shallower"),
	),
	RowReset: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("⌫", "row reset"),
	),
	Audition: key.NewBinding(
		key.WithKeys(tea.KeyEnter.String(), " "),
		key.WithHelp("enter", "play chord"),
	),
	Random: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "random key"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", tea.KeyCtrlC.String()),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (m Mapping) ShortHelp() []key.Binding {
	return []key.Binding{m.RotateLeft, m.RotateRight, m.TransposeUp, m.TransposeDown, m.NextMode, m.Help, m.Quit}
}

// FullHelp implements help.KeyMap.
func (m Mapping) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.RotateLeft, m.RotateRight, m.TransposeUp, m.TransposeDown, m.NextMode},
		{m.ToggleSpelling, m.Random, m.Audition},
		{m.Ext7, m.Ext9, m.Ext11, m.Ext13},
		{m.RowDeeper, m.RowShallower, m.RowReset},
		{m.Help, m.Quit},
	}
}
