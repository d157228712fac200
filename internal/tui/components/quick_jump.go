package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/airdate/internal/domain"
	"github.com/mmcdole/airdate/internal/query"
	"github.com/mmcdole/airdate/internal/tui/styles"
)

// QuickJump is the fuzzy title search modal
type QuickJump struct {
	input     textinput.Model
	title     string
	releases  []domain.Release
	results   []query.Hit
	cursor    int
	visible   bool
	width     int
	height    int
	prevQuery string
}

// NewQuickJump creates a new quick jump component
func NewQuickJump() QuickJump {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "› "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.Text)
	ti.PlaceholderStyle = styles.DimStyle

	return QuickJump{
		input: ti,
	}
}

// Show makes the quick jump visible over the given releases
func (o *QuickJump) Show(title, placeholder string, releases []domain.Release) {
	o.visible = true
	o.title = title
	o.releases = releases
	o.input.Focus()
	o.input.SetValue("")
	o.input.Placeholder = placeholder
	o.results = nil
	o.cursor = 0
	o.prevQuery = ""
}

// Hide hides the quick jump
func (o *QuickJump) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible returns true if the quick jump is visible
func (o QuickJump) IsVisible() bool {
	return o.visible
}

// SetSize updates the component dimensions
func (o *QuickJump) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.input.Width = max(min(width*2/3, 80)-10, 20)
}

// Query returns the current search query
func (o QuickJump) Query() string {
	return o.input.Value()
}

// Results returns the ranked hits for the current query
func (o QuickJump) Results() []query.Hit {
	return o.results
}

// Selected returns the release under the cursor
func (o QuickJump) Selected() *domain.Release {
	if len(o.results) == 0 || o.cursor >= len(o.results) {
		return nil
	}
	r := o.results[o.cursor].Release
	return &r
}

// Init initializes the component
func (o QuickJump) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages, returns (component, cmd, selected)
func (o QuickJump) Update(msg tea.Msg) (QuickJump, tea.Cmd, bool) {
	if !o.visible {
		return o, nil, false
	}

	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, QuickJumpKeys.Escape):
			o.Hide()
			return o, nil, false

		case key.Matches(keyMsg, QuickJumpKeys.Enter):
			if len(o.results) > 0 {
				o.Hide()
				return o, nil, true
			}
			return o, nil, false

		case key.Matches(keyMsg, QuickJumpKeys.Down):
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return o, nil, false

		case key.Matches(keyMsg, QuickJumpKeys.Up):
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, false
		}
	}

	o.input, cmd = o.input.Update(msg)
	if q := o.input.Value(); q != o.prevQuery {
		o.prevQuery = q
		o.results = query.Rank(q, o.releases)
		o.cursor = 0
	}
	return o, cmd, false
}

// View renders the component
func (o QuickJump) View() string {
	if !o.visible {
		return ""
	}

	modalWidth := min(max(o.width*2/3, 40), 80)
	maxResults := 10

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render(o.title))
	b.WriteString("\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")
	o.renderResults(&b, modalWidth, maxResults)

	content := lipgloss.NewStyle().
		Width(modalWidth - 4).
		Render(b.String())

	return styles.ModalStyle.
		Width(modalWidth).
		Render(content)
}

// renderResults renders the ranked hits
func (o QuickJump) renderResults(b *strings.Builder, modalWidth, maxResults int) {
	if len(o.results) == 0 {
		if o.input.Value() != "" {
			b.WriteString(styles.DimStyle.Render("No matches found"))
		}
		return
	}

	displayCount := min(len(o.results), maxResults)
	for i := 0; i < displayCount; i++ {
		hit := o.results[i]
		selected := i == o.cursor

		title := styles.Truncate(hit.Release.Title, modalWidth-20)
		b.WriteString(highlightMatches(title, hit.MatchedIndexes, selected))
		b.WriteString(" ")
		b.WriteString(styles.DimStyle.Render(hit.Release.Studio))
		b.WriteString("\n")
	}

	if len(o.results) > maxResults {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", len(o.results)-maxResults)))
	}
}

// highlightMatches renders text with the matched byte offsets highlighted
func highlightMatches(text string, matchedIndexes []int, selected bool) string {
	normal := styles.NormalItemStyle.UnsetPadding()
	match := styles.MatchHighlightStyle
	if selected {
		normal = styles.SelectedItemStyle.UnsetPadding()
		match = styles.MatchHighlightSelectedStyle
	}
	if len(matchedIndexes) == 0 {
		return normal.Render(text)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	// Batch consecutive runes with the same match state
	var result, batch strings.Builder
	batchMatch := false
	flush := func() {
		if batch.Len() == 0 {
			return
		}
		if batchMatch {
			result.WriteString(match.Render(batch.String()))
		} else {
			result.WriteString(normal.Render(batch.String()))
		}
		batch.Reset()
	}
	for i, r := range text {
		if isMatch := matchSet[i]; isMatch != batchMatch {
			flush()
			batchMatch = isMatch
		}
		batch.WriteRune(r)
	}
	flush()

	return result.String()
}
