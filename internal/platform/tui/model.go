package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pacman/internal/audio"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// footerHeight is the number of rows reserved below the game for help.
const footerHeight = 1

// Game is the simulation driven by the model.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(input core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// SoundPlayer plays sound effects. *audio.Player implements it.
type SoundPlayer interface {
	Play(sound audio.SoundType)
}

// Options configures a Model. Zero values are valid.
type Options struct {
	Logger *log.Logger
	Sound  SoundPlayer
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	keys KeyMap
	help help.Model

	logger  *log.Logger
	sound   SoundPlayer
	session string

	quitting bool
}

// NewModel creates a model and starts the first session.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) *Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		sound:      opts.Sound,
	}
	m.startSession()
	return m
}

// startSession resets the game from scratch under a new session id.
func (m *Model) startSession() {
	m.session = uuid.NewString()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()

	m.logger.Info("session started",
		"session", m.session,
		"game", m.game.Title(),
		"seed", m.config.Seed,
	)
}

// Session returns the id of the current session.
func (m *Model) Session() string {
	return m.session
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "session", m.session, "score", m.gameState.Score)
		return m, tea.Quit
	}

	// The game over notice stays up until explicitly dismissed, so a held
	// arrow key cannot skip past the final score
	if m.gameState.GameOver {
		if action == core.ActionRestart {
			m.config.Seed = time.Now().UnixNano()
			m.startSession()
		}
		return m, nil
	}

	if action != core.ActionNone && action != core.ActionRestart {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the game running and only relayouts it.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(0, msg.Height-footerHeight)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventPelletEaten:
			m.play(audio.SoundChomp)
		case core.EventGameOver:
			m.play(audio.SoundDeath)
			m.logger.Info("game over", "session", m.session, "score", ev.Score)
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) play(sound audio.SoundType) {
	if m.sound != nil {
		m.sound.Play(sound)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".pacman", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	cfg.ScreenH = max(0, cfg.ScreenH-footerHeight)
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
