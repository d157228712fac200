package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/airdate/internal/domain"
	"github.com/mmcdole/airdate/internal/query"
	"github.com/mmcdole/airdate/internal/tui/styles"
)

// Browse list column widths
const (
	dateColumnWidth   = 12
	studioColumnWidth = 20
)

// renderBrowse renders the public browse screen
func (m Model) renderBrowse() string {
	buckets := m.buckets()
	count := query.Count(buckets)

	heading := styles.HeadingStyle.Render(m.tr.T("Upcoming Releases")) +
		"  " + styles.DimStyle.Render(m.tr.T("%d releases", count))
	subtitle := styles.SubtitleStyle.Render(m.tr.T("Discover the anime arriving this season."))

	var list string
	if count == 0 {
		list = m.renderEmpty()
	} else {
		list = m.renderBuckets(buckets)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		subtitle,
		m.renderFilterBar(),
		"",
		list,
	)
}

// renderEmpty renders the explicit no-results state
func (m Model) renderEmpty() string {
	msg := m.tr.T("No results found.")
	if m.Criteria.IsZero() {
		msg = m.tr.T("Nothing to show yet")
	}
	return lipgloss.Place(m.Width, m.listHeight(),
		lipgloss.Center, lipgloss.Center,
		styles.DimStyle.Render(msg))
}

// renderFilterBar renders the search box and the four selects
func (m Model) renderFilterBar() string {
	month := m.tr.T("All Months")
	if m.Criteria.Month != 0 {
		month = m.tr.MonthName(m.Criteria.Month)
	}
	year := m.tr.T("All Years")
	if m.Criteria.Year != 0 {
		year = strconv.Itoa(m.Criteria.Year)
	}
	studio := m.tr.T("All Studios")
	if m.Criteria.Studio != "" && m.Criteria.Studio != query.All {
		studio = m.Criteria.Studio
	}
	genre := m.tr.T("All Genres")
	if m.Criteria.Genre != "" && m.Criteria.Genre != query.All {
		genre = m.Criteria.Genre
	}

	parts := []string{
		m.Search.View(),
		filterSegment("m", month, m.Criteria.Month != 0),
		filterSegment("y", year, m.Criteria.Year != 0),
		filterSegment("s", studio, studio != m.tr.T("All Studios")),
		filterSegment("t", genre, genre != m.tr.T("All Genres")),
	}
	if !m.Criteria.IsZero() {
		parts = append(parts, styles.Hint("r", m.tr.T("Reset")))
	}
	return strings.Join(parts, "   ")
}

func filterSegment(keyName, value string, active bool) string {
	v := styles.SubtitleStyle.Render(value)
	if active {
		v = styles.AccentStyle.Render(value)
	}
	return styles.HelpKeyStyle.Render(keyName) + " " + v
}

// renderBuckets renders month headers and release rows, scrolled so the
// cursor row stays visible
func (m Model) renderBuckets(buckets []query.Bucket) string {
	var lines []string
	selectedLine := 0
	idx := 0

	for _, b := range buckets {
		label := m.tr.T("Undated")
		if !b.Undated() {
			label = m.tr.MonthYear(b.Date)
		}
		lines = append(lines, styles.HeadingStyle.Render(label)+" "+
			styles.DimStyle.Render("("+strconv.Itoa(len(b.Releases))+")"))

		for _, r := range b.Releases {
			if idx == m.Cursor {
				selectedLine = len(lines)
			}
			lines = append(lines, m.renderReleaseRow(r, idx == m.Cursor))
			idx++
		}
	}

	height := m.listHeight()
	start := 0
	if selectedLine >= height {
		start = selectedLine - height + 1
	}
	end := min(start+height, len(lines))
	return strings.Join(lines[start:end], "\n")
}

// renderReleaseRow renders one release as a single list row
func (m Model) renderReleaseRow(r domain.Release, selected bool) string {
	width := max(m.Width-4, 40)
	titleWidth := max(width-dateColumnWidth-studioColumnWidth-24, 15)

	text := styles.Pad(m.tr.Date(r.ReleaseDate), dateColumnWidth) +
		styles.Pad(r.Title, titleWidth) + "  " +
		styles.Pad(r.Studio, studioColumnWidth) + "  " +
		styles.Truncate(strings.Join(r.Genre, ", "), 22)

	if selected {
		return styles.SelectedItemStyle.Width(width).Render(text)
	}
	return styles.NormalItemStyle.Render(text)
}
