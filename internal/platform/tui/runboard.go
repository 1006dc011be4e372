package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/universal-elevators/internal/storage"
)

const maxRuns = 50

// RunBoardKeyMap defines the key bindings for the run board.
type RunBoardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunBoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reload, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunBoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Reload},
		{k.Back, k.Quit},
	}
}

// DefaultRunBoardKeyMap returns default key bindings.
func DefaultRunBoardKeyMap() RunBoardKeyMap {
	return RunBoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "reload"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "r"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunBoard lists the best stored runs.
type RunBoard struct {
	store     *storage.Store
	runs      []storage.Run
	err       error
	table     table.Model
	help      help.Model
	keys      RunBoardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRunBoard creates a run board and loads the runs from store.
// A nil store shows an empty board.
func NewRunBoard(store *storage.Store, width, height int) RunBoard {
	m := RunBoard{
		store:  store,
		keys:   DefaultRunBoardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *RunBoard) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Earned", Width: 10},
		{Title: "Ticks", Width: 7},
		{Title: "Floors", Width: 6},
		{Title: "Cars", Width: 5},
		{Title: "Controller", Width: 14},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *RunBoard) load() {
	m.runs, m.err = nil, nil
	if m.store != nil {
		m.runs, m.err = m.store.TopRuns(maxRuns)
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", r.Earned),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Floors),
			fmt.Sprintf("%d", r.Elevators),
			r.Controller,
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the run board.
func (m RunBoard) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run board.
func (m RunBoard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run board.
func (m RunBoard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("BEST RUNS", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.content()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RunBoard) content() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 2)
	switch {
	case m.store == nil:
		return emptyStyle.Render("Run history is unavailable.")
	case m.err != nil:
		return emptyStyle.Render("Cannot load runs: " + m.err.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nQuit a game to record it.")
	}
	return m.table.View()
}

// Runs returns the loaded runs, best first.
func (m RunBoard) Runs() []storage.Run {
	return m.runs
}

// IsGoingBack returns true if the user wants to return to the game.
func (m RunBoard) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m RunBoard) IsQuitting() bool {
	return m.quitting
}
