package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-quest/internal/registry"
	"github.com/vovakirdan/tile-quest/internal/storage"
)

const (
	scoreboardRows   = 100 // Rows loaded per view
	scoreboardChrome = 10  // Lines used by title, tabs, summary and help
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Toggle   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Toggle, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.NextMode, k.PrevMode}, {k.Toggle, k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Toggle:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "scores/levels/recent")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardView selects what the table shows.
type ScoreboardView int

const (
	ViewScores ScoreboardView = iota // Best run totals
	ViewLevels                       // Aggregates per level
	ViewRecent                       // Latest finished levels
	viewCount
)

func (v ScoreboardView) title() string {
	switch v {
	case ViewLevels:
		return "LEVEL RESULTS"
	case ViewRecent:
		return "RECENT LEVELS"
	default:
		return "HIGH SCORES"
	}
}

func (v ScoreboardView) columns() []table.Column {
	switch v {
	case ViewLevels:
		return []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Played", Width: 7},
			{Title: "Won", Width: 6},
			{Title: "Best", Width: 8},
			{Title: "Avg time", Width: 9},
		}
	case ViewRecent:
		return []table.Column{
			{Title: "When", Width: 13},
			{Title: "Level", Width: 6},
			{Title: "Result", Width: 7},
			{Title: "Quests", Width: 7},
			{Title: "Score", Width: 8},
		}
	default:
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 14},
		}
	}
}

// ScoreboardModel shows stored results for every registered mode.
type ScoreboardModel struct {
	modes []registry.GameInfo
	mode  int
	view  ScoreboardView
	store *storage.Store

	scores     []storage.ScoreEntry
	levelStats []storage.LevelStats
	recent     []storage.LevelResult
	summary    *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard opened on the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m *ScoreboardModel) currentID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// reload rebuilds the table and reads the rows of the current view.
func (m *ScoreboardModel) reload() {
	m.scores, m.levelStats, m.recent, m.summary = nil, nil, nil, nil

	id := m.currentID()
	if m.store != nil && id != "" {
		var err error
		switch m.view {
		case ViewLevels:
			m.levelStats, err = m.store.GetLevelStats(id)
		case ViewRecent:
			m.recent, err = m.store.RecentLevelResults(id, scoreboardRows)
		default:
			m.scores, err = m.store.TopScores(id, scoreboardRows)
		}
		if err != nil {
			logger.Warn("scoreboard load failed", "game", id, "err", err)
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.summary = stats
		}
	}

	m.table = m.newTable()
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.view.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardChrome, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) rows() []table.Row {
	var rows []table.Row
	switch m.view {
	case ViewLevels:
		for _, ls := range m.levelStats {
			rows = append(rows, table.Row{
				fmt.Sprint(ls.Level),
				fmt.Sprint(ls.Attempts),
				fmt.Sprintf("%.0f%%", ls.WinRate()*100),
				fmt.Sprint(ls.BestScore),
				fmt.Sprintf("%.1fs", ls.AvgElapsed),
			})
		}
	case ViewRecent:
		for _, r := range m.recent {
			result := "lost"
			if r.Won {
				result = "won"
			}
			rows = append(rows, table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				fmt.Sprint(r.Level),
				result,
				fmt.Sprintf("%d/%d", r.QuestsCompleted, r.QuestsTotal),
				fmt.Sprint(r.Score),
			})
		}
	default:
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprint(s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	return rows
}

func (m ScoreboardModel) empty() bool {
	return len(m.scores) == 0 && len(m.levelStats) == 0 && len(m.recent) == 0
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
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			if len(m.modes) > 0 {
				m.mode = (m.mode + 1) % len(m.modes)
				m.reload()
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			if len(m.modes) > 0 {
				m.mode = (m.mode + len(m.modes) - 1) % len(m.modes)
				m.reload()
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.view = (m.view + 1) % viewCount
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.view.title()
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.mode].Title
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if m.empty() {
		body = boardMutedStyle.Italic(true).Padding(1, 3).Render(m.emptyMessage())
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")

	if line := m.summaryLine(); line != "" {
		b.WriteString(boardMutedStyle.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the mode strip, collapsing to "< current >" when it does
// not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.modes) == 0 {
		return ""
	}
	parts := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			parts[i] = boardActiveTab.Render(g.Title)
		} else {
			parts[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(line) > m.width-4 {
		return "< " + m.modes[m.mode].Title + " >"
	}
	return line
}

func (m ScoreboardModel) emptyMessage() string {
	switch m.view {
	case ViewLevels, ViewRecent:
		return "No levels finished yet.\nFinish a level to see it here!"
	default:
		return "No scores recorded yet.\nPlay a run to set a high score!"
	}
}

func (m ScoreboardModel) summaryLine() string {
	if m.summary == nil || m.summary.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  |  best %d  |  avg %.0f  |  last %s",
		m.summary.GamesCount, m.summary.HighScore, m.summary.AvgScore,
		m.summary.LastPlayed.Format("Jan 02 15:04"))
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the user asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard runs the scoreboard as its own program. It returns true
// when the user wants the menu back.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
