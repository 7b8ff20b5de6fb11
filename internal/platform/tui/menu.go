package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blasters/internal/core"
	"github.com/vovakirdan/tui-blasters/internal/registry"
	"github.com/vovakirdan/tui-blasters/internal/storage"
)

// MenuItem is one game on the picker with its record.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
	Played int
}

type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Play   key.Binding
	Scores key.Binding
	Quit   key.Binding
}

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Play, k.Scores, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultMenuKeys = menuKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓", "down")),
	Play:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
	Scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "b", "ctrl+c"), key.WithHelp("q", "quit")),
}

// menuChoice is how the picker was left.
type menuChoice int

const (
	menuOpen menuChoice = iota
	menuPlay
	menuScores
	menuQuit
)

// MenuModel picks the game to play.
type MenuModel struct {
	items  []MenuItem
	cursor int
	choice menuChoice
	keys   menuKeys
	help   help.Model
	config core.RuntimeConfig
}

// menuItems lists the registered games with their records. A nil store
// leaves the records empty.
func menuItems(store *storage.Store) []MenuItem {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if store == nil {
			continue
		}
		if best, err := store.BestScore(storage.BestKey(g.ID)); err == nil {
			items[i].Best = best
		}
		if st, ok := stats[g.ID]; ok {
			items[i].Played = st.GamesCount
		}
	}
	return items
}

// NewMenuModel builds the picker for the registered games.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:  menuItems(store),
		keys:   defaultMenuKeys,
		help:   help.New(),
		config: cfg,
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.choice = menuQuit
		case key.Matches(msg, m.keys.Scores):
			m.choice = menuScores
		case key.Matches(msg, m.keys.Play) && len(m.items) > 0:
			m.choice = menuPlay
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
		}
		if m.choice != menuOpen {
			return m, tea.Quit
		}
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	menuRowStyle    = lipgloss.NewStyle().Padding(0, 2)
	menuActiveStyle = menuRowStyle.Bold(true).Foreground(lipgloss.Color("212"))
	menuNoteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.choice != menuOpen {
		return ""
	}

	rows := make([]string, 0, len(m.items))
	for i, it := range m.items {
		note := "new"
		if it.Played > 0 || it.Best > 0 {
			note = fmt.Sprintf("best %-6d %d runs", it.Best, it.Played)
		}
		line := fmt.Sprintf("%-12s %s", it.Title, menuNoteStyle.Render(note))
		if i == m.cursor {
			rows = append(rows, menuActiveStyle.Render("▶ "+line))
		} else {
			rows = append(rows, menuRowStyle.Render("  "+line))
		}
	}

	page := lipgloss.JoinVertical(lipgloss.Left,
		menuTitleStyle.Render("B L A S T E R S"),
		strings.Join(rows, "\n"),
		"",
		menuNoteStyle.Render(m.help.View(m.keys)),
	)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, page)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// result translates how the picker was left.
func (m MenuModel) result() MenuResult {
	r := MenuResult{Config: m.config}
	switch m.choice {
	case menuPlay:
		r.GameID = m.items[m.cursor].GameID
	case menuScores:
		r.WantsScoreboard = true
		if len(m.items) > 0 {
			r.GameID = m.items[m.cursor].GameID
		}
	default:
		r.Quit = true
	}
	return r
}

// RunMenu shows the picker and returns the user's choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
