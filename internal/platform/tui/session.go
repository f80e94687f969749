package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/registry"
)

// SessionModel runs the picker and the chosen game in turn until the user
// quits. Every session builds its own games and shares no state.
type SessionModel struct {
	arena     config.Config
	config    core.RuntimeConfig
	logger    *log.Logger
	menu      MenuModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a session that starts at the picker. logger may be nil.
func NewSessionModel(arena config.Config, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	return SessionModel{
		arena:  arena,
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the menu or the game.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	// The menu answers a selection with tea.Quit; drop it and start the game.
	game, err := registry.Create(selected.ID, m.arena)
	if err != nil {
		m.logf("cannot create game", "game", selected.ID, "error", err)
		m.menu = NewMenuModel(m.config)
		return m, nil
	}

	gameModel := NewGameModel(game, m.config, true)
	m.gameModel = &gameModel
	m.logf("game started", "game", selected.ID)
	return m, m.gameModel.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.logf("game left", "ticks", m.gameModel.State().Ticks)
		m.gameModel = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) logf(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, keyvals...)
	}
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.gameModel != nil
}

// RunSession runs the picker and games in the local terminal.
func RunSession(arena config.Config, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(arena, cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
