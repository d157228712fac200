package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/airdate/internal/catalog"
	"github.com/mmcdole/airdate/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPicker(t *testing.T) {
	p := NewPicker()
	opts := []PickerOption{{Value: "all", Label: "All"}, {Value: "a", Label: "A"}, {Value: "b", Label: "B"}}

	p.Show("Studio", opts, "b")
	require.True(t, p.IsVisible())
	assert.Contains(t, p.View(), "✓ B")

	// Cursor starts on the active value and stops at the edges
	handled, sel := p.HandleKey(runes("j"))
	assert.True(t, handled)
	assert.Nil(t, sel)
	p.HandleKey(runes("k"))
	_, sel = p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, sel)
	assert.Equal(t, "a", sel.Value)
	assert.False(t, p.IsVisible())

	p.Show("Studio", opts, "missing")
	_, sel = p.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, sel)
	assert.False(t, p.IsVisible())
}

func TestReleaseForm_DraftSplitsGallery(t *testing.T) {
	f := NewReleaseForm()
	f.Show("Edit", FormLabels{}, catalog.Draft{
		Title:   "Spirit Hunter",
		Gallery: []string{"data:image/png;base64,a,b", "x.png"},
	})

	d := f.Draft()
	assert.Equal(t, "Spirit Hunter", d.Title)
	assert.Equal(t, []string{"data:image/png;base64,a,b", "x.png"}, d.Gallery)
}

func TestReleaseForm_Navigation(t *testing.T) {
	f := NewReleaseForm()
	f.Show("New", FormLabels{}, catalog.Draft{})
	assert.Equal(t, FieldTitle, f.Focused())

	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldGallery, f.Focused())

	// Enter on the last field submits
	_, _, submitted := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, submitted)

	f.SetErrors(&catalog.ValidationError{Fields: []catalog.FieldError{{Field: "releaseDate", Message: "bad"}}})
	assert.Equal(t, FieldReleaseDate, f.Focused())

	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, f.IsVisible())
}

func TestQuickJump_RanksAsYouType(t *testing.T) {
	q := NewQuickJump()
	q.Show("Jump", "", []domain.Release{
		{ID: "1", Title: "Blade of the Void"},
		{ID: "2", Title: "Spirit Hunter"},
	})

	for _, r := range "hunt" {
		q, _, _ = q.Update(runes(string(r)))
	}
	require.NotEmpty(t, q.Results())
	assert.Equal(t, "2", q.Selected().ID)

	q, _, selected := q.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, selected)
	assert.False(t, q.IsVisible())
}

func TestHighlightMatches_KeepsText(t *testing.T) {
	out := highlightMatches("void", []int{0, 1}, false)
	assert.Contains(t, out, "vo")
	assert.Contains(t, out, "id")
}
