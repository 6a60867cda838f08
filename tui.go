package rmxharmony

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rapidmidiex/rmxharmony/config"
	"github.com/rapidmidiex/rmxharmony/harmony"
	"github.com/rapidmidiex/rmxharmony/harmonyui"
	"github.com/rapidmidiex/rmxharmony/rmxerr"
	"github.com/rapidmidiex/rmxharmony/synth"
)

// ********
// Code heavily based on "Project Journal"
// https://github.com/bashbunni/pjs
// https://www.youtube.com/watch?v=uJ2egAkSkjg&t=319s
// ********

type mainModel struct {
	harmony tea.Model
	// Error raised while starting up, shown once the program runs.
	startErr error
}

// InitialState builds the starting state from a tonic label and mode name.
func InitialState(tonic, modeName string) (harmony.State, error) {
	s, err := harmony.SelectTonic(harmony.New(), tonic)
	if err != nil {
		return s, err
	}
	return harmony.SelectModeByName(s, modeName)
}

func NewModel(cfg config.Config, l *log.Logger) (mainModel, error) {
	s, err := InitialState(cfg.Tonic, cfg.Mode)
	if err != nil {
		return mainModel{}, err
	}

	player, startErr := newPlayer(cfg)
	if startErr != nil {
		l.Printf("audio: %v", startErr)
	}

	ctrl := harmony.NewController(s, l)
	return mainModel{
		harmony:  harmonyui.New(ctrl, harmonyui.Options{Player: player, Log: l}),
		startErr: startErr,
	}, nil
}

// newPlayer loads the SoundFont and opens the speaker. A nil player with a
// nil error means audio is not configured.
func newPlayer(cfg config.Config) (*synth.Player, error) {
	if !cfg.AudioEnabled() {
		return nil, nil
	}
	player, err := synth.NewPlayer(synth.NewPlayerOpts{SoundFontPath: cfg.SoundFontPath})
	if err != nil {
		return nil, err
	}
	if err := player.InitSpeaker(); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return player, nil
}

func (m mainModel) Init() tea.Cmd {
	cmd := m.harmony.Init()
	if m.startErr == nil {
		return cmd
	}
	err := m.startErr
	report := func() tea.Msg { return rmxerr.ErrMsg{Err: err} }
	if cmd == nil {
		return report
	}
	return tea.Batch(cmd, report)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.harmony, cmd = m.harmony.Update(msg)
	return m, cmd
}

func (m mainModel) View() string {
	return m.harmony.View()
}

// Run starts the TUI. Logs go to cfg.LogFile so they do not draw over the screen.
func Run(cfg config.Config) error {
	f, err := tea.LogToFile(cfg.LogFile, "rmxharmony")
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer f.Close()

	m, err := NewModel(cfg, log.Default())
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
