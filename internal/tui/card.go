package tui

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/authorscout/internal/favorites"
	"github.com/lepinkainen/authorscout/internal/search"
)

type cardItem struct {
	search.Card
	authorLiked bool
	bookLiked   []bool
}

func newCardItem(card search.Card, favs favorites.Snapshot) cardItem {
	item := cardItem{
		Card:        card,
		authorLiked: slices.Contains(favs.Authors, card.Author.Name),
		bookLiked:   make([]bool, len(card.Books.Works)),
	}
	for i, w := range card.Books.Works {
		item.bookLiked[i] = slices.Contains(favs.Books, w.Title)
	}
	return item
}

func (i cardItem) FilterValue() string {
	return i.Author.Name
}

type cardDelegate struct {
	styles   cardStyles
	coverURL func(coverID int) string
}

func newCardDelegate(coverURL func(int) string) cardDelegate {
	return cardDelegate{styles: newCardStyles(), coverURL: coverURL}
}

// name, top work, count, then up to MaxWorks books, inside a two-line border
func (d cardDelegate) Height() int                         { return 3 + search.MaxWorks + 2 }
func (d cardDelegate) Spacing() int                        { return 0 }
func (d cardDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d cardDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	card, ok := item.(cardItem)
	if !ok {
		return
	}
	width := m.Width() - 4

	name := strings.ToUpper(card.Author.Name)
	if card.authorLiked {
		name += d.styles.likedStyle.Render(" *")
	}

	topWork := card.Author.TopWork
	if topWork == "" {
		topWork = search.MsgNotAvailable
	}

	lines := []string{
		d.styles.nameStyle.Render(name),
		d.styles.metaStyle.Render(truncate("Top Work: "+topWork, width)),
		d.styles.metaStyle.Render(fmt.Sprintf("Work Count: %d", card.Author.WorkCount)),
	}

	if card.Books.State == search.BooksLoaded {
		for n, work := range card.Books.Works {
			lines = append(lines, d.renderBook(card, n, work.Title, work.CoverID, width))
		}
	} else {
		lines = append(lines, d.styles.noticeStyle.Render(card.Books.Message()))
	}

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func (d cardDelegate) renderBook(card cardItem, n int, title string, coverID int, width int) string {
	cover := search.MsgNoCover
	if coverID > 0 && d.coverURL != nil {
		cover = d.coverURL(coverID)
	}

	line := d.styles.bookStyle.Render(truncate(fmt.Sprintf("%d. %s", n+1, title), width/2))
	if n < len(card.bookLiked) && card.bookLiked[n] {
		line += d.styles.likedStyle.Render(" *")
	}
	return line + " " + d.styles.coverStyle.Render(cover)
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	if width <= 0 || len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
