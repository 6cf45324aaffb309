package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// ModelConfig holds everything a Model needs.
type ModelConfig struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional
	Logger  *log.Logger

	// ScreenshotDir is where ctrl+s writes frames. Empty disables screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that drives one flappy world.
type Model struct {
	world         *flappy.World
	screen        *core.Screen
	store         *storage.Store
	logger        *log.Logger
	keys          KeyMap
	help          help.Model
	runtime       core.RuntimeConfig
	width         int
	height        int
	lastPhase     flappy.Phase
	screenshotDir string
	quitting      bool
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a model with a fresh world in ReadyToStart.
func NewModel(mc ModelConfig) Model {
	rt := mc.Runtime.Normalized()
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger := mc.Logger
	if logger == nil {
		logger = log.Default()
	}

	// A nil *storage.Store must stay a nil interface.
	var best flappy.BestScoreStore
	if mc.Store != nil {
		best = mc.Store
	}

	m := Model{
		world:         flappy.NewWorld(mc.Game, rt.Seed, best, logger),
		store:         mc.Store,
		logger:        logger,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		runtime:       rt,
		width:         rt.ScreenW,
		height:        rt.ScreenH,
		lastPhase:     flappy.PhaseReadyToStart,
		screenshotDir: mc.ScreenshotDir,
	}
	m.help.Width = rt.ScreenW
	m.screen = core.NewScreen(m.width, m.playHeight())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := ActionForMouse(msg); a != core.ActionNone {
			m.world.Push(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.playHeight())
		return m, nil
	}

	if a := m.keys.ActionForKey(msg); a != core.ActionNone {
		m.world.Push(a)
	}
	return m, nil
}

// handleResize only rescales the view. Playfield geometry is fixed, so the
// running game is never reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.width, m.playHeight())
	return m, nil
}

// handleTick runs one update pass and records the run when it ends.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.world.Step(1)

	phase := m.world.Phase()
	if m.lastPhase == flappy.PhasePlaying && phase == flappy.PhaseOver {
		m.recordRun()
	}
	m.lastPhase = phase

	return m, tickCmd(m.runtime.TickRate)
}

// recordRun appends the finished run to the history.
func (m *Model) recordRun() {
	score := m.world.Score()
	m.logger.Debug("run over", "score", score, "best", m.world.Best(), "ticks", m.world.RunTicks())

	if m.store == nil || score == 0 {
		return
	}
	run := storage.RunRecord{Score: score, Ticks: m.world.RunTicks(), Seed: m.runtime.Seed}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "score", score, "error", err)
	}
}

// playHeight is the number of rows left for the playfield under the footer.
func (m Model) playHeight() int {
	rows := 1
	if m.help.ShowAll {
		rows = len(m.keys.FullHelp()[1])
	}
	return max(m.height-rows, 0)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	m.world.Draw(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", flappy.ID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.world.Draw(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// World exposes the running world.
func (m Model) World() *flappy.World {
	return m.world
}

// DefaultScreenshotDir returns ~/.flappy/screenshots, or "" when the home
// directory is unknown.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "screenshots")
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(mc ModelConfig) error {
	p := tea.NewProgram(
		NewModel(mc),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
