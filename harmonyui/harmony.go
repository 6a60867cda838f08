// Package harmonyui is the interactive harmony view: scale strip, keyboard and chord grid.
package harmonyui

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/rmxharmony/chord"
	"github.com/rapidmidiex/rmxharmony/harmony"
	"github.com/rapidmidiex/rmxharmony/keymap"
	"github.com/rapidmidiex/rmxharmony/rmxerr"
	"github.com/rapidmidiex/rmxharmony/styles"
	"github.com/rapidmidiex/rmxharmony/synth"
	"github.com/rapidmidiex/rmxharmony/vpiano"
	"golang.org/x/term"
)

const clipLength = 2 * time.Second

var (
	docStyle = styles.DocStyle

	ErrAudioDisabled = errors.New("audio disabled: set RMX_SOUNDFONT or --soundfont")
)

type (
	// AuditionedMsg reports the chord that was sent to the speaker.
	AuditionedMsg struct {
		Name string
	}

	Options struct {
		// Nil disables audition.
		Player *synth.Player
		Rand   *rand.Rand
		Log    *log.Logger
	}

	Model struct {
		ctrl   *harmony.Controller
		grid   table.Model
		help   help.Model
		keys   keymap.Mapping
		player *synth.Player
		rnd    *rand.Rand
		// Last played chord, shown in the status bar.
		playing string
		err     error
		log     *log.Logger
	}
)

func New(ctrl *harmony.Controller, o Options) Model {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Log == nil {
		o.Log = log.Default()
	}
	m := Model{
		ctrl:   ctrl,
		grid:   makeChordTable(),
		help:   help.New(),
		keys:   keymap.DefaultMapping,
		player: o.Player,
		rnd:    o.Rand,
		log:    o.Log,
	}
	m.refresh()
	return m
}

// State returns the state the model is showing.
func (m Model) State() harmony.State {
	return m.ctrl.State()
}

// Cursor returns the selected scale degree.
func (m Model) Cursor() int {
	return m.grid.Cursor()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.grid.SetWidth(msg.Width - 10)
		m.help.Width = msg.Width

	case rmxerr.ErrMsg:
		m.err = msg

	case AuditionedMsg:
		m.playing = msg.Name

	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			m.refresh()
			return m, cmd
		}
	}

	m.grid, cmd = m.grid.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleKey applies harmony transitions for mapped keys. Unmapped keys fall
// through to the chord grid.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	row := m.grid.Cursor()
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.RotateLeft):
		m.ctrl.RotateDegrees(-1)
	case key.Matches(msg, m.keys.RotateRight):
		m.ctrl.RotateDegrees(1)
	case key.Matches(msg, m.keys.TransposeUp):
		m.ctrl.TransposeSemitoneBy(1)
	case key.Matches(msg, m.keys.TransposeDown):
		m.ctrl.TransposeSemitoneBy(-1)
	case key.Matches(msg, m.keys.NextMode):
		m.ctrl.Apply(func(s harmony.State) harmony.State { return harmony.SelectMode(s, s.ModeIndex+1) })
	case key.Matches(msg, m.keys.ToggleSpelling):
		m.ctrl.Apply(harmony.ToggleTonicSpelling)
	case key.Matches(msg, m.keys.Random):
		m.ctrl.Apply(func(s harmony.State) harmony.State { return harmony.Randomize(s, m.rnd) })
	case key.Matches(msg, m.keys.Ext7):
		m.toggleExtension(7)
	case key.Matches(msg, m.keys.Ext9):
		m.toggleExtension(9)
	case key.Matches(msg, m.keys.Ext11):
		m.toggleExtension(11)
	case key.Matches(msg, m.keys.Ext13):
		m.toggleExtension(13)
	case key.Matches(msg, m.keys.RowDeeper):
		m.ctrl.Apply(func(s harmony.State) harmony.State {
			return harmony.SetRowMaxDegree(s, row, s.MaxDegree(row)+2)
		})
	case key.Matches(msg, m.keys.RowShallower):
		m.ctrl.Apply(func(s harmony.State) harmony.State {
			return harmony.SetRowMaxDegree(s, row, s.MaxDegree(row)-2)
		})
	case key.Matches(msg, m.keys.RowReset):
		m.ctrl.Apply(func(s harmony.State) harmony.State { return harmony.ClearRowMaxDegree(s, row) })
	case key.Matches(msg, m.keys.Audition):
		return true, m.audition(row)
	default:
		return false, nil
	}
	return true, nil
}

func (m *Model) toggleExtension(level int) {
	m.ctrl.Apply(func(s harmony.State) harmony.State { return harmony.ToggleExtension(s, level) })
}

// refresh rebuilds the chord grid rows from the current state.
func (m *Model) refresh() {
	s := m.ctrl.State()
	rows := make([]table.Row, 0, len(s.Analysis.Degrees))
	for i := range s.Analysis.Degrees {
		rows = append(rows, table.Row{
			s.Romans[i],
			s.ChordName(i),
			s.ChordNotes(i),
			fmt.Sprintf("%d", s.MaxDegree(i)),
		})
	}
	m.grid.SetRows(rows)
}

// audition plays the chord on row through the synthesizer.
func (m Model) audition(row int) tea.Cmd {
	s := m.ctrl.State()
	r, ok := s.Row(row)
	if !ok {
		return nil
	}
	name := s.ChordName(row)
	pcs := r.PitchClasses(s.MaxDegree(row))
	player := m.player
	logger := m.log

	return func() tea.Msg {
		if player == nil {
			return rmxerr.ErrMsg{Err: ErrAudioDisabled}
		}
		player.Audition(synth.Voice(pcs, vpiano.C4), clipLength)
		logger.Printf("audition %s", name)
		return AuditionedMsg{Name: name}
	}
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}
	s := m.ctrl.State()

	doc.WriteString(m.statusBar(s) + "\n\n")
	doc.WriteString(scaleStrip(s) + "\n")
	doc.WriteString(keyboard(s) + "\n\n")
	doc.WriteString(styles.BaseStyle.Render(m.grid.View()) + "\n")

	if m.err != nil {
		doc.WriteString("\n" + styles.RenderError(m.err.Error()) + "\n")
	}
	doc.WriteString(styles.HelpMenu.Render(m.help.View(m.keys)))

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc.String())
}

func (m Model) statusBar(s harmony.State) string {
	parts := []string{styles.TitleStyle.Render(s.Title())}
	for _, level := range chord.Levels {
		st := styles.StatusStyle
		if s.Ladder.Enabled(level) {
			st = styles.EnabledExt
		}
		parts = append(parts, st.Render(fmt.Sprintf("%d", level)))
	}
	info := "spelling: " + s.Display.PreferenceUsed.String()
	if m.playing != "" {
		info += "  ♪ " + m.playing
	}
	parts = append(parts, styles.StatusText.Render(info))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func scaleStrip(s harmony.State) string {
	notes := make([]string, 0, len(s.Display.Spelled))
	for i, name := range s.Display.Spelled {
		st := styles.NoteStyle
		if i == 0 {
			st = styles.TonicStyle
		}
		notes = append(notes, st.Render(name+"\n\n"+s.Romans[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, notes...)
}

func keyboard(s harmony.State) string {
	keys := vpiano.MakeOctaveNotes(vpiano.C4, s.Display.PitchClasses, s.Display.Spelled, s.Display.PreferenceUsed)
	rendered := make([]string, 0, len(keys))
	for _, k := range keys {
		st := styles.WhiteKey
		switch {
		case k.InScale:
			st = styles.InScaleKey
		case k.IsAccidental:
			st = styles.BlackKey
		}
		rendered = append(rendered, st.Render(k.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func makeChordTable() table.Model {
	columns := []table.Column{
		{Title: "Degree", Width: 7},
		{Title: "Chord", Width: 16},
		{Title: "Notes", Width: 30},
		{Title: "Max", Width: 4},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(7),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return t
}
