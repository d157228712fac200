package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/airdate/internal/domain"
	"github.com/mmcdole/airdate/internal/i18n"
	"github.com/mmcdole/airdate/internal/tui/styles"
)

// detailContent holds the three-zone layout content
type detailContent struct {
	header string // fixed top
	body   string // scrollable middle
	footer string // fixed bottom
}

// Detail is the overlay showing every field of one release
type Detail struct {
	visible bool
	release domain.Release
	tr      *i18n.Translator
	width   int
	height  int
	offset  int // body scroll offset
}

// NewDetail creates a new detail overlay
func NewDetail() Detail {
	return Detail{}
}

// Show displays the overlay for a release
func (d *Detail) Show(r domain.Release, tr *i18n.Translator) {
	d.visible = true
	d.release = r
	d.tr = tr
	d.offset = 0
}

// Hide dismisses the overlay
func (d *Detail) Hide() {
	d.visible = false
}

// IsVisible returns whether the overlay is shown
func (d Detail) IsVisible() bool {
	return d.visible
}

// Release returns the release being shown
func (d Detail) Release() domain.Release {
	return d.release
}

// SetSize updates the available screen area
func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// HandleKey scrolls or closes the overlay. All keys are consumed while visible.
func (d *Detail) HandleKey(msg tea.KeyMsg) bool {
	if !d.visible {
		return false
	}
	switch {
	case key.Matches(msg, DetailKeys.Escape):
		d.Hide()
	case key.Matches(msg, DetailKeys.Down):
		d.offset++
	case key.Matches(msg, DetailKeys.Up):
		if d.offset > 0 {
			d.offset--
		}
	}
	return true
}

// View renders the overlay box
func (d Detail) View() string {
	if !d.visible || d.tr == nil {
		return ""
	}

	boxWidth := min(max(d.width*2/3, 40), 90)
	contentWidth := boxWidth - 6 // border + padding
	maxVisible := max(d.height-6, 5)

	content := d.render(contentWidth)
	headerLines := splitLines(content.header)
	footerLines := splitLines(content.footer)
	bodyLines := splitLines(content.body)

	available := max(maxVisible-len(headerLines)-len(footerLines)-2, 1)

	// Clamp body scroll offset
	maxOffset := max(len(bodyLines)-available, 0)
	offset := min(d.offset, maxOffset)
	end := min(offset+available, len(bodyLines))
	visibleBody := bodyLines[offset:end]

	up := " "
	if offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < len(bodyLines) {
		down = styles.DimStyle.Render("↓ more")
	}

	var parts []string
	parts = append(parts, headerLines...)
	parts = append(parts, up)
	parts = append(parts, visibleBody...)
	parts = append(parts, down)
	parts = append(parts, footerLines...)

	return styles.ModalStyle.
		Width(boxWidth - 2).
		Render(strings.Join(parts, "\n"))
}

func (d Detail) render(width int) detailContent {
	r := d.release
	tr := d.tr

	var header strings.Builder
	header.WriteString(styles.TitleStyle.Render(styles.Truncate(r.Title, width)))
	header.WriteString("\n")
	header.WriteString(styles.SubtitleStyle.Render(styles.Truncate(r.Studio, width)))
	header.WriteString("\n")
	header.WriteString(styles.DimStyle.Render(tr.T("Release date") + ": "))
	header.WriteString(styles.AccentStyle.Render(tr.Date(r.ReleaseDate)))
	if len(r.Genre) > 0 {
		header.WriteString("\n")
		header.WriteString(renderGenres(r.Genre))
	}

	var body strings.Builder
	if r.Description != "" {
		body.WriteString(styles.DimStyle.Render(tr.T("Description")))
		body.WriteString("\n")
		body.WriteString(styles.SubtitleStyle.Render(wordWrap(r.Description, width)))
	}

	var footer strings.Builder
	footer.WriteString(styles.DimStyle.Render(strings.Repeat("─", width)))
	footer.WriteString("\n")
	footer.WriteString(styles.DimStyle.Render(tr.T("Cover image") + ": "))
	footer.WriteString(styles.Truncate(DescribeImage(r.CoverImage), width-lipgloss.Width(tr.T("Cover image"))-2))
	if len(r.Gallery) > 0 {
		footer.WriteString("\n")
		footer.WriteString(styles.DimStyle.Render(fmt.Sprintf("%s (%d)", tr.T("Gallery"), len(r.Gallery))))
		for _, img := range r.Gallery {
			footer.WriteString("\n  ")
			footer.WriteString(styles.Truncate(DescribeImage(img), width-2))
		}
	}

	return detailContent{
		header: header.String(),
		body:   body.String(),
		footer: footer.String(),
	}
}

func renderGenres(genres []string) string {
	badges := make([]string, len(genres))
	for i, g := range genres {
		badges[i] = styles.DimBadgeStyle.Render(g)
	}
	return strings.Join(badges, " ")
}

// DescribeImage summarizes an image reference for display. Data URIs are
// reduced to their media type and size.
func DescribeImage(ref string) string {
	if !strings.HasPrefix(ref, "data:") {
		return ref
	}
	meta, payload, ok := strings.Cut(ref[len("data:"):], ",")
	if !ok {
		return "data URI"
	}
	mime, _, _ := strings.Cut(meta, ";")
	size := len(payload) * 3 / 4
	return fmt.Sprintf("[embedded %s, %d KB]", mime, (size+1023)/1024)
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	for p, para := range strings.Split(text, "\n") {
		if p > 0 {
			result.WriteString("\n")
		}
		lineLen := 0
		for _, word := range strings.Fields(para) {
			wordLen := lipgloss.Width(word)

			if lineLen+wordLen+1 > width && lineLen > 0 {
				result.WriteString("\n")
				lineLen = 0
			}

			if lineLen > 0 {
				result.WriteString(" ")
				lineLen++
			}

			result.WriteString(word)
			lineLen += wordLen
		}
	}

	return result.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
