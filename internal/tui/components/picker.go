package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/airdate/internal/tui/styles"
)

// PickerOption is one selectable value of a filter select.
type PickerOption struct {
	Value string
	Label string
}

// pickerMaxRows bounds the number of options shown at once
const pickerMaxRows = 12

// Picker is a small popup for choosing one value of a filter select
type Picker struct {
	visible bool
	title   string
	options []PickerOption
	cursor  int
	active  string
}

// NewPicker creates a new picker
func NewPicker() Picker {
	return Picker{}
}

// Show displays the picker with the given options, marking the active value
func (m *Picker) Show(title string, options []PickerOption, active string) {
	m.visible = true
	m.title = title
	m.options = options
	m.active = active
	// Position cursor on the active value
	m.cursor = 0
	for i, opt := range options {
		if opt.Value == active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the picker
func (m *Picker) Hide() {
	m.visible = false
}

// IsVisible returns whether the picker is shown
func (m Picker) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a choice.
func (m *Picker) HandleKey(msg tea.KeyMsg) (handled bool, selection *PickerOption) {
	if !m.visible {
		return false, nil
	}

	switch {
	case key.Matches(msg, PickerKeys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(msg, PickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, PickerKeys.Enter):
		if len(m.options) == 0 {
			m.visible = false
			return true, nil
		}
		chosen := m.options[m.cursor]
		m.visible = false
		return true, &chosen
	case key.Matches(msg, PickerKeys.Escape):
		m.visible = false
	}

	return true, nil // consume all keys when visible
}

// View renders the picker
func (m Picker) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	width := lipgloss.Width(m.title)
	for _, opt := range m.options {
		width = max(width, lipgloss.Width(opt.Label)+2)
	}
	width = min(width, 40)

	start := 0
	if m.cursor >= pickerMaxRows {
		start = m.cursor - pickerMaxRows + 1
	}
	end := min(start+pickerMaxRows, len(m.options))

	var lines []string
	if start > 0 {
		lines = append(lines, styles.DimStyle.Render("↑ more"))
	}
	for i := start; i < end; i++ {
		opt := m.options[i]
		selected := i == m.cursor
		isActive := opt.Value == m.active

		prefix := "  "
		if isActive {
			prefix = "✓ "
		}
		text := styles.Pad(prefix+opt.Label, width)

		switch {
		case selected:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.Text).
				Background(styles.Raised).
				Render(text))
		case isActive:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.Accent).
				Render(text))
		default:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.Muted).
				Render(text))
		}
	}

	if end < len(m.options) {
		lines = append(lines, styles.DimStyle.Render("↓ more"))
	}

	content := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Accent).
		Background(styles.Surface).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render(m.title) + "\n" + content)
}
