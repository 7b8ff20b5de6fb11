package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blasters/internal/registry"
	"github.com/vovakirdan/tui-blasters/internal/storage"
)

// BoardView selects what the scoreboard lists.
type BoardView int

const (
	BoardRuns BoardView = iota // latest finished runs
	BoardTop                   // highest scores
)

func (v BoardView) String() string {
	if v == BoardTop {
		return "top scores"
	}
	return "recent runs"
}

const boardRowLimit = 50

type boardKeys struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	View key.Binding
	Help key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.View, k.Back, k.Help}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev, k.View}, {k.Help, k.Back, k.Quit}}
}

var defaultBoardKeys = boardKeys{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
	Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
	View: key.NewBinding(key.WithKeys("v", " "), key.WithHelp("v", "runs/top")),
	Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// boardData is what the scoreboard knows about one game.
type boardData struct {
	best  int
	stats storage.GameStats
	runs  []storage.Run
	top   []storage.ScoreEntry
	err   error
}

// loadBoard reads one game's history. Read errors leave the affected part
// empty and keep the last error for display.
func loadBoard(store *storage.Store, gameID string) boardData {
	var d boardData
	if store == nil || gameID == "" {
		return d
	}

	best, err := store.BestScore(storage.BestKey(gameID))
	if err != nil {
		d.err = err
	}
	d.best = best

	if st, err := store.GetGameStats(gameID); err != nil {
		d.err = err
	} else {
		d.stats = *st
	}
	if d.runs, err = store.RecentRuns(gameID, boardRowLimit); err != nil {
		d.err = err
	}
	if d.top, err = store.TopScores(gameID, boardRowLimit); err != nil {
		d.err = err
	}
	return d
}

// boardTable lays out the columns and rows for a view.
func boardTable(v BoardView, d boardData) ([]table.Column, []table.Row) {
	if v == BoardTop {
		cols := []table.Column{{Title: "#", Width: 4}, {Title: "Score", Width: 9}, {Title: "When", Width: 13}}
		rows := make([]table.Row, len(d.top))
		for i, s := range d.top {
			rows[i] = table.Row{strconv.Itoa(i + 1), strconv.Itoa(s.Score), s.CreatedAt.Format("Jan 02 15:04")}
		}
		return cols, rows
	}

	cols := []table.Column{
		{Title: "When", Width: 13},
		{Title: "Score", Width: 8},
		{Title: "Wave", Width: 5},
		{Title: "Result", Width: 8},
		{Title: "Time", Width: 6},
	}
	rows := make([]table.Row, len(d.runs))
	for i, r := range d.runs {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Wave),
			r.Outcome,
			runClock(r.Duration),
		}
	}
	return cols, rows
}

// runClock formats a run length as m:ss.
func runClock(d time.Duration) string {
	s := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// summary is the one-line stats strip above the table.
func (d boardData) summary() string {
	if d.stats.GamesCount == 0 && d.best == 0 {
		return "no runs yet"
	}
	line := fmt.Sprintf("best %d  ·  %d played  ·  avg %.0f", d.best, d.stats.GamesCount, d.stats.AvgScore)
	if !d.stats.LastPlayed.IsZero() {
		line += "  ·  last " + d.stats.LastPlayed.Format("Jan 02 15:04")
	}
	return line
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

func boardTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return s
}

// ScoreboardModel browses the run history of each registered game.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	game   int
	view   BoardView
	data   boardData
	keys   boardKeys
	help   help.Model
	table  table.Model
	width  int
	height int
	back   bool
	quit   bool
}

// NewScoreboardModel opens the board on gameID, or on the first game when
// gameID is empty or unknown.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		keys:   defaultBoardKeys,
		help:   help.New(),
		table:  table.New(table.WithFocused(true), table.WithStyles(boardTableStyles())),
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.game = i
		}
	}
	m.help.Width = width
	m.reload()
	return m
}

func (m *ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.game].ID
}

func (m *ScoreboardModel) reload() {
	m.data = loadBoard(m.store, m.gameID())
	m.refresh()
}

// refresh rebuilds the table for the current view and size.
func (m *ScoreboardModel) refresh() {
	cols, rows := boardTable(m.view, m.data)
	// Rows must be cleared first: the table renders old rows against new columns.
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.SetHeight(max(m.height-10, 3))
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycleGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.game = (m.game + step + len(m.games)) % len(m.games)
	m.reload()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycleGame(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycleGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.view = 1 - m.view
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.back || m.quit {
		return ""
	}

	title := "SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("%s  ·  %s", m.games[m.game].Title, m.view)
	}

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.game {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}

	var body string
	switch {
	case m.data.err != nil:
		body = boardErrStyle.Render("cannot read scores: " + m.data.err.Error())
	case len(m.table.Rows()) == 0:
		body = boardDimStyle.Italic(true).Padding(1, 4).Render("Nothing here yet. Finish a run!")
	default:
		body = m.table.View()
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		boardTitleStyle.Render(title),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		boardDimStyle.Render(m.data.summary()),
		boardFrameStyle.Render(body),
		boardDimStyle.Render(m.help.View(m.keys)),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, page)
}

// Back reports whether the board was left with the back key.
func (m ScoreboardModel) Back() bool {
	return m.back
}

// RunScoreboard shows the scoreboard opened on gameID. It reports whether
// the user went back rather than quitting.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, gameID, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.Back(), nil
}
