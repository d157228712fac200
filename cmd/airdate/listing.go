package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mmcdole/airdate/internal/domain"
	"github.com/mmcdole/airdate/internal/i18n"
	"github.com/mmcdole/airdate/internal/query"
)

// writeListing prints the filtered releases grouped by month, one table per
// bucket.
func writeListing(w io.Writer, releases []domain.Release, c query.Criteria, tr *i18n.Translator) error {
	buckets := query.GroupByMonth(query.Filter(releases, c))

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", tr.T("Upcoming Releases"), tr.T("%d releases", query.Count(buckets)))
	if len(buckets) == 0 {
		fmt.Fprintf(&b, "\n%s\n", tr.T("No results found."))
	}

	for _, bucket := range buckets {
		heading := tr.T("Undated")
		if !bucket.Undated() {
			heading = tr.MonthYear(bucket.Date)
		}

		rows := make([][]string, len(bucket.Releases))
		for i, r := range bucket.Releases {
			rows[i] = []string{tr.Date(r.ReleaseDate), r.Title, r.Studio, strings.Join(r.Genre, ", ")}
		}
		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderTop(false).
			BorderBottom(false).
			BorderRight(false).
			Rows(rows...)

		fmt.Fprintf(&b, "\n%s\n%s\n", heading, t.Render())
	}

	_, err := io.WriteString(w, b.String())
	return err
}
