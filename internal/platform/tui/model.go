package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/registry"
)

// Resizer is implemented by games that can adapt to a new screen size without
// restarting. Other games are Reset on resize.
type Resizer interface {
	Resize(rt core.RuntimeConfig)
}

// GameModel is the Bubble Tea model that runs one game. The bottom row holds
// the help bar; the game gets the rest.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	canGoBack  bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. When canGoBack is set, Esc leaves the
// game instead of being ignored.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, canGoBack bool) GameModel {
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		canGoBack:  canGoBack,
	}
}

func gameRows(screenH int) int {
	return max(screenH-1, 0)
}

// gameRuntime is the runtime config as seen by the game, without the help row.
func (m GameModel) gameRuntime() core.RuntimeConfig {
	rt := m.config
	rt.ScreenH = gameRows(rt.ScreenH)
	return rt
}

// Init starts the game and the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameRuntime())
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.canGoBack {
			m.backToMenu = true
		}
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleMouse records every pointer position, motion and clicks alike.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y >= gameRows(m.config.ScreenH) {
		return m, nil
	}
	m.inputFrame.Point(msg.X, msg.Y)
	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.gameRuntime())
	} else {
		m.game.Reset(m.gameRuntime())
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the game and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Game)
}

// State returns the game status as of the last frame.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the user asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewGameModel(game, cfg, false),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
