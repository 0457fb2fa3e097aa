// Package tui provides the interactive author browser.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/authorscout/internal/favorites"
	"github.com/lepinkainen/authorscout/internal/search"
	"github.com/lepinkainen/authorscout/internal/view"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 27
	maxSuggestions    = 3
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// Searcher runs one search through the orchestrator. Cancel abandons the
// running search so nothing more from it is rendered.
type Searcher interface {
	Search(ctx context.Context, q search.Query) search.Result
	Cancel()
}

// HistoryStore is the part of the history store the browser uses.
type HistoryStore interface {
	List() []string
	Suggest(term string) []string
	Clear() error
}

// Config wires the browser to its stores.
type Config struct {
	Searcher  Searcher
	Board     *view.Board
	History   HistoryStore
	Favorites *favorites.Store
	Debouncer *search.Debouncer
	CoverURL  func(coverID int) string

	// Initial query. A non-empty Author searches immediately.
	Author string
	Title  string
}

type focus int

const (
	focusAuthor focus = iota
	focusTitle
	focusResults
	focusHistory
	focusCount
)

type (
	debounceMsg   struct{ token uint64 }
	searchDoneMsg struct{ result search.Result }
	boardMsg      struct{}
)

type model struct {
	ctx context.Context
	cfg Config

	author  textinput.Model
	title   textinput.Model
	results list.Model
	focus   focus

	board        view.State
	history      []string
	historyIndex int
	suggestions  []string
	favs         favorites.Snapshot
	status       string
}

func newModel(ctx context.Context, cfg Config) *model {
	if cfg.Debouncer == nil {
		cfg.Debouncer = search.NewDebouncer(search.DefaultDebounce)
	}

	author := textinput.New()
	author.Placeholder = "Author name"
	author.SetValue(cfg.Author)
	author.Focus()

	title := textinput.New()
	title.Placeholder = "Title filter (optional)"
	title.SetValue(cfg.Title)

	l := list.New(nil, newCardDelegate(cfg.CoverURL), defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &model{
		ctx:     ctx,
		cfg:     cfg,
		author:  author,
		title:   title,
		results: l,
		history: cfg.History.List(),
		favs:    cfg.Favorites.Snapshot(),
	}
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.waitForBoard()}
	if q := m.query(); q.Valid() {
		cmds = append(cmds, m.submit(q))
	}
	return tea.Batch(cmds...)
}

func (m *model) query() search.Query {
	return search.Query{Author: m.author.Value(), Title: m.title.Value()}.Normalize()
}

func (m *model) waitForBoard() tea.Cmd {
	updates := m.cfg.Board.Updates()
	return func() tea.Msg {
		<-updates
		return boardMsg{}
	}
}

// submit runs q immediately and cancels any pending debounced search.
func (m *model) submit(q search.Query) tea.Cmd {
	if !q.Valid() {
		return nil
	}
	token := m.cfg.Debouncer.Touch()
	m.status = ""
	searcher, debouncer, ctx := m.cfg.Searcher, m.cfg.Debouncer, m.ctx
	return func() tea.Msg {
		// A reset between Enter and this command running drops the search.
		if !debouncer.Live(token) {
			return searchDoneMsg{result: search.Result{Query: q, Stale: true}}
		}
		return searchDoneMsg{result: searcher.Search(ctx, q)}
	}
}

func (m *model) debounce() tea.Cmd {
	token := m.cfg.Debouncer.Touch()
	return tea.Tick(m.cfg.Debouncer.Interval(), func(time.Time) tea.Msg {
		return debounceMsg{token: token}
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceMsg:
		if !m.cfg.Debouncer.Live(msg.token) {
			return m, nil
		}
		return m, m.submit(m.query())

	case searchDoneMsg:
		m.history = m.cfg.History.List()
		m.clampHistory()
		if msg.result.Err != nil && !msg.result.Stale {
			slog.Debug("Search failed", "author", msg.result.Query.Author, "error", msg.result.Err)
		}
		return m, nil

	case boardMsg:
		m.board = m.cfg.Board.Snapshot()
		m.refreshCards()
		return m, m.waitForBoard()

	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-36, 40)
		height := clamp(defaultListHeight, msg.Height-12, 9)
		m.results.SetSize(width, height)
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+r":
		m.reset()
		return m, nil
	case "ctrl+x":
		if err := m.cfg.History.Clear(); err != nil {
			slog.Warn("Failed to clear search history", "error", err)
			m.status = "Could not clear history"
		} else {
			m.status = "History cleared"
		}
		m.history = m.cfg.History.List()
		m.suggestions = nil
		m.clampHistory()
		return m, nil
	}

	switch m.focus {
	case focusAuthor, focusTitle:
		if msg.String() == "enter" {
			m.suggestions = nil
			return m, m.submit(m.query())
		}
	case focusResults:
		return m.handleResultsKey(msg)
	case focusHistory:
		return m.handleHistoryKey(msg)
	}

	return m.updateFocused(msg)
}

func (m *model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	card, ok := m.results.SelectedItem().(cardItem)
	switch key := msg.String(); {
	case key == "a":
		if ok && m.cfg.Favorites.LikeAuthor(card.Author.Name) {
			m.status = fmt.Sprintf("Liked author %s", card.Author.Name)
			m.afterLike()
		}
		return m, nil
	case len(key) == 1 && key[0] >= '1' && key[0] <= '0'+search.MaxWorks:
		n := int(key[0] - '1')
		if ok && card.Books.State == search.BooksLoaded && n < len(card.Books.Works) {
			title := card.Books.Works[n].Title
			if m.cfg.Favorites.LikeBook(title) {
				m.status = fmt.Sprintf("Liked book %s", title)
				m.afterLike()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m *model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.historyIndex > 0 {
			m.historyIndex--
		}
	case "down", "j":
		if m.historyIndex < len(m.history)-1 {
			m.historyIndex++
		}
	case "enter":
		if m.historyIndex < len(m.history) {
			m.author.SetValue(m.history[m.historyIndex])
			return m, m.submit(m.query())
		}
	}
	return m, nil
}

// updateFocused forwards msg to the focused text input and debounces author edits.
func (m *model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusAuthor:
		before := m.author.Value()
		m.author, cmd = m.author.Update(msg)
		if m.author.Value() != before {
			m.suggestions = m.cfg.History.Suggest(m.author.Value())
			if len(m.suggestions) > maxSuggestions {
				m.suggestions = m.suggestions[:maxSuggestions]
			}
			return m, tea.Batch(cmd, m.debounce())
		}
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	}
	return m, cmd
}

func (m *model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.author.Blur()
	m.title.Blur()
	switch f {
	case focusAuthor:
		return m.author.Focus()
	case focusTitle:
		return m.title.Focus()
	}
	return nil
}

func (m *model) reset() {
	m.cfg.Debouncer.Touch()
	m.cfg.Searcher.Cancel()
	m.author.SetValue("")
	m.title.SetValue("")
	m.suggestions = nil
	m.status = ""
	m.cfg.Board.Reset()
	m.board = m.cfg.Board.Snapshot()
	m.refreshCards()
}

// afterLike redraws the cards and sidebar after a favorite was added.
func (m *model) afterLike() {
	m.favs = m.cfg.Favorites.Snapshot()
	m.refreshCards()
}

func (m *model) refreshCards() {
	items := make([]list.Item, len(m.board.Cards))
	for i, c := range m.board.Cards {
		items[i] = newCardItem(c, m.favs)
	}
	index := m.results.Index()
	m.results.SetItems(items)
	if index < len(items) {
		m.results.Select(index)
	}
}

func (m *model) clampHistory() {
	if m.historyIndex >= len(m.history) {
		m.historyIndex = max(len(m.history)-1, 0)
	}
}

func (m *model) View() string {
	header := headerStyle.Render("authorscout: search Open Library authors")

	inputs := lipgloss.JoinVertical(lipgloss.Left,
		m.label("Author", focusAuthor)+m.author.View(),
		m.label("Title", focusTitle)+m.title.View(),
	)
	if len(m.suggestions) > 0 {
		inputs = lipgloss.JoinVertical(lipgloss.Left, inputs,
			suggestionStyle.Render("  recent: "+strings.Join(m.suggestions, ", ")))
	}

	results := lipgloss.JoinHorizontal(lipgloss.Top, m.resultsView(), m.sidebarView())

	parts := []string{header, inputs, results}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, helpStyle.Render(
		"Tab focus | Enter search | a like author | 1-4 like book | ctrl+r reset | ctrl+x clear history | Esc quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *model) label(name string, f focus) string {
	if m.focus == f {
		return focusedLabelStyle.Render(name)
	}
	return labelStyle.Render(name)
}

func (m *model) resultsView() string {
	switch m.board.Status {
	case view.StatusFailed:
		return errorStyle.Render(m.board.Message)
	case view.StatusLoading, view.StatusEmpty:
		return messageStyle.Render(m.board.Message)
	case view.StatusReady:
		return m.results.View()
	default:
		return messageStyle.Render("Type an author name to search.")
	}
}

func (m *model) sidebarView() string {
	var sb strings.Builder

	sb.WriteString(sectionStyle.Render("Authors") + "\n")
	for _, name := range m.board.Authors() {
		sb.WriteString("  " + truncate(name, 26) + "\n")
	}

	sb.WriteString("\n" + sectionStyle.Render("Recent searches") + "\n")
	for i, q := range m.history {
		line := "  " + truncate(q, 26)
		if m.focus == focusHistory && i == m.historyIndex {
			line = cursorStyle.Render("> " + truncate(q, 26))
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n" + sectionStyle.Render("Favorite authors") + "\n")
	for _, a := range m.favs.Authors {
		sb.WriteString("  " + truncate(a, 26) + "\n")
	}
	sb.WriteString("\n" + sectionStyle.Render("Favorite books") + "\n")
	for _, b := range m.favs.Books {
		sb.WriteString("  " + truncate(b, 26) + "\n")
	}

	return sidebarStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// Browse runs the interactive browser until the user quits.
func Browse(ctx context.Context, cfg Config) error {
	if cfg.Searcher == nil || cfg.Board == nil || cfg.History == nil || cfg.Favorites == nil {
		return fmt.Errorf("browse: searcher, board, history and favorites are required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	finalModel, err := runProgram(newModel(ctx, cfg))
	if err != nil {
		return err
	}
	if _, ok := finalModel.(*model); !ok {
		return fmt.Errorf("unexpected program result")
	}
	return nil
}
