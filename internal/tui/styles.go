package tui

import "github.com/charmbracelet/lipgloss"

type cardStyles struct {
	normal      lipgloss.Style
	selected    lipgloss.Style
	nameStyle   lipgloss.Style
	metaStyle   lipgloss.Style
	bookStyle   lipgloss.Style
	coverStyle  lipgloss.Style
	noticeStyle lipgloss.Style
	likedStyle  lipgloss.Style
}

func newCardStyles() cardStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return cardStyles{
		normal:   container,
		selected: selected,
		nameStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		metaStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
		bookStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("110")),
		coverStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		noticeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("248")).
			Italic(true),
		likedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")),
	}
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110")).
			Width(8)

	focusedLabelStyle = labelStyle.Copy().
				Foreground(lipgloss.Color("214")).
				Bold(true)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	messageStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("248"))

	errorStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("161")).
			Bold(true)

	sidebarStyle = lipgloss.NewStyle().
			MarginLeft(2).
			PaddingLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Width(30)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("237"))

	statusStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("178"))

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)
