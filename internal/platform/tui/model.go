package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keepups/internal/core"
	"github.com/vovakirdan/keepups/internal/games/keepups"
)

// footerRows is the space below the game screen: prompt or help, then status.
const footerRows = 2

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *keepups.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	prompt     textinput.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	statusErr  bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *keepups.Game, cfg core.RuntimeConfig, keyboardKick bool, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Prompt = "Enter name: "
	ti.Placeholder = "your name"
	ti.CharLimit = 64

	cfg.ScreenH = core.Max(cfg.ScreenH-footerRows, 1)
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(keyboardKick),
		help:       help.New(),
		prompt:     ti,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.prompt.Focused() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg, m.gameState.Phase)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.game.Teardown()
		return m, tea.Quit

	case core.ActionConfirm:
		if err := m.game.SubmitName(m.prompt.Value()); err != nil {
			m.setError(err)
		} else if out := m.game.Session().LastOutcome(); out != nil && out.Name != "" {
			if out.NewBest {
				m.setStatus(fmt.Sprintf("New best for %s: %d", out.Name, out.Score))
			} else {
				m.setStatus(fmt.Sprintf("%s's best is still %d", out.Name, m.game.Session().Best(out.Name)))
			}
		}
		m.syncState()
		return m, nil

	case core.ActionBack:
		m.game.CancelName()
		m.syncState()
		return m, nil

	case core.ActionNone:
		if m.prompt.Focused() {
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse records left-button presses as clicks for the next tick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Click(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize adapts the play field without ending the session.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-footerRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	m.prompt.Width = core.Max(msg.Width-len(m.prompt.Prompt)-1, 1)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	cmd := m.syncState()

	return m, tea.Batch(cmd, tickCmd(m.config.TickInterval()))
}

// syncState refreshes the cached game state and focuses or blurs the name
// prompt when the phase changes.
func (m *Model) syncState() tea.Cmd {
	prev := m.gameState.Phase
	m.gameState = m.game.State()

	switch {
	case m.gameState.Phase == core.PhaseAwaitingName && prev != core.PhaseAwaitingName:
		m.prompt.Reset()
		m.status = ""
		return m.prompt.Focus()

	case m.gameState.Phase != core.PhaseAwaitingName && m.prompt.Focused():
		m.prompt.Blur()
		m.prompt.Reset()
	}
	return nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.logger.Error("name prompt", "err", err)
	m.status = "Could not save score: " + err.Error()
	m.statusErr = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.setError(err)
		return
	}
	dir := filepath.Join(home, ".keepups", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setError(err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setError(err)
		return
	}

	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("Screenshot saved to " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// footer renders the prompt or the key help, followed by the status line.
func (m Model) footer() string {
	var top string
	if m.gameState.Phase == core.PhaseAwaitingName {
		top = m.prompt.View()
	} else {
		top = helpStyle.Render(m.help.View(m.keys.HelpFor(m.gameState.Phase)))
	}

	bottom := m.status
	switch {
	case m.gameState.Phase == core.PhaseAwaitingName:
		bottom = helpStyle.Render(m.help.View(m.keys.HelpFor(m.gameState.Phase)))
		if left := m.game.Session().PromptRemaining(); left > 0 {
			bottom += helpStyle.Render(fmt.Sprintf("  (%ds)", int(left.Round(time.Second)/time.Second)))
		}
	case m.statusErr:
		bottom = errorStyle.Render(bottom)
	default:
		bottom = statusStyle.Render(bottom)
	}

	return top + "\n" + bottom
}

// Run starts the Bubble Tea program for the game and tears the session down
// when it exits.
func Run(game *keepups.Game, cfg core.RuntimeConfig, keyboardKick bool, logger *log.Logger) error {
	model := NewModel(game, cfg, keyboardKick, logger)
	defer game.Teardown()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
