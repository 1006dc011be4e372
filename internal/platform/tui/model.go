package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/universal-elevators/internal/core"
	"github.com/vovakirdan/universal-elevators/internal/host"
	"github.com/vovakirdan/universal-elevators/internal/storage"
	"github.com/vovakirdan/universal-elevators/internal/upgrade"
)

// Model is the Bubble Tea model for one game.
type Model struct {
	host      *host.Host
	store     *storage.Store
	logger    *log.Logger
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	frame     core.InputFrame
	status    Status
	board     *RunBoard
	quitting  bool
	saved     bool
}

// NewModel creates a model driving h. store may be nil.
func NewModel(h *host.Host, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	return Model{
		host:      h,
		store:     store,
		logger:    logger,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		status:    Status{Controller: h.Result().Controller},
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey records purchase keys for the next tick and handles the
// immediate ones.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quit()
		return m, tea.Quit
	case action == core.ActionPause:
		m.status.Paused = !m.status.Paused
	case action == core.ActionRuns:
		board := NewRunBoard(m.store, m.config.ScreenW, m.config.ScreenH)
		m.board = &board
	case action != core.ActionNone:
		m.frame.Set(action)
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board, ok := next.(RunBoard)
	if !ok {
		return m, cmd
	}
	switch {
	case board.IsQuitting():
		m.board = nil
		m.quit()
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
	default:
		m.board = &board
	}
	return m, cmd
}

// handleTick applies the keys pressed since the previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.status.Paused {
		return m, tickCmd(m.config.TickRate)
	}

	report := m.host.Step(CommandFromFrame(m.frame))
	m.status.Message = describe(report.Purchased)
	if len(report.Purchased) > 0 {
		m.logger.Debug("upgrades purchased", "tick", report.Tick, "kinds", report.Purchased)
	}

	m.frame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func describe(kinds []upgrade.Kind) string {
	if len(kinds) == 0 {
		return ""
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return "bought " + strings.Join(names, ", ")
}

// quit records the run once. Storage failures only get logged.
func (m *Model) quit() {
	m.quitting = true
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	res := m.host.Result()
	if res.Ticks == 0 {
		return
	}
	if err := m.store.SaveRun(res.Record()); err != nil {
		m.logger.Warn("cannot save run", "id", res.ID, "error", err)
		return
	}
	if state, err := m.host.GetGameState(); err == nil {
		if _, err := m.store.SaveSnapshot(res.ID, res.Ticks, state); err != nil {
			m.logger.Warn("cannot save snapshot", "id", res.ID, "error", err)
		}
	}
	m.logger.Info("run saved", "id", res.ID, "ticks", res.Ticks, "earned", fmt.Sprintf("%.2f", res.Earned))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}
	DrawGame(m.screen, m.host.Snapshot(), m.status)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player has quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run plays h in the local terminal until the player quits.
func Run(h *host.Host, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(h, store, cfg, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
