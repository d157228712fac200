package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/airdate/internal/tui/styles"
)

// renderAdmin renders the content management screen
func (m Model) renderAdmin() string {
	releases := m.Catalog.List()

	heading := styles.HeadingStyle.Render(m.tr.T("Manage Content")) +
		"  " + styles.DimStyle.Render(m.tr.T("%d releases", len(releases)))
	subtitle := styles.SubtitleStyle.Render(m.tr.T("Welcome back, Admin"))

	var list string
	if len(releases) == 0 {
		list = lipgloss.Place(m.Width, m.listHeight(),
			lipgloss.Center, lipgloss.Center,
			styles.DimStyle.Render(m.tr.T("Nothing to show yet")))
	} else {
		height := m.listHeight()
		start := 0
		if m.AdminCursor >= height {
			start = m.AdminCursor - height + 1
		}
		end := min(start+height, len(releases))

		var lines []string
		for i := start; i < end; i++ {
			lines = append(lines, m.renderReleaseRow(releases[i], i == m.AdminCursor))
		}
		list = strings.Join(lines, "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		subtitle,
		styles.Hint("n", m.tr.T("Add New Anime")),
		"",
		list,
	)
}
