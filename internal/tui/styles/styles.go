package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mmcdole/airdate/internal/domain"
)

// Palette is one color scheme.
type Palette struct {
	Accent  lipgloss.Color
	Surface lipgloss.Color // Modal background
	Raised  lipgloss.Color // Selected row background
	Dim     lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

// Color palettes
var (
	DarkPalette = Palette{
		Accent:  lipgloss.Color("#E5A00D"),
		Surface: lipgloss.Color("#1F2937"),
		Raised:  lipgloss.Color("#374151"),
		Dim:     lipgloss.Color("#6B7280"),
		Muted:   lipgloss.Color("#9CA3AF"),
		Text:    lipgloss.Color("#F9FAFB"),
		Success: lipgloss.Color("#10B981"),
		Error:   lipgloss.Color("#EF4444"),
	}

	LightPalette = Palette{
		Accent:  lipgloss.Color("#B45309"),
		Surface: lipgloss.Color("#F3F4F6"),
		Raised:  lipgloss.Color("#E5E7EB"),
		Dim:     lipgloss.Color("#9CA3AF"),
		Muted:   lipgloss.Color("#4B5563"),
		Text:    lipgloss.Color("#111827"),
		Success: lipgloss.Color("#047857"),
		Error:   lipgloss.Color("#B91C1C"),
	}
)

// Active colors, set by Apply
var (
	Accent  lipgloss.Color
	Surface lipgloss.Color
	Raised  lipgloss.Color
	Dim     lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
)

// Text styles
var (
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	DimStyle       lipgloss.Style
	AccentStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	SuccessStyle   lipgloss.Style
	HighlightStyle lipgloss.Style
	HeadingStyle   lipgloss.Style
)

// List item styles
var (
	SelectedItemStyle lipgloss.Style
	NormalItemStyle   lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
)

// Help and badge styles
var (
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
	BadgeStyle    lipgloss.Style
	DimBadgeStyle lipgloss.Style
)

// Match highlight styles for quick jump results
var (
	MatchHighlightStyle         lipgloss.Style
	MatchHighlightSelectedStyle lipgloss.Style
)

var current domain.Theme

func init() {
	Apply(domain.DefaultTheme)
}

// Current returns the theme last passed to Apply.
func Current() domain.Theme {
	return current
}

// Apply rebuilds every style from the palette for theme.
func Apply(theme domain.Theme) {
	p := DarkPalette
	if theme == domain.ThemeLight {
		p = LightPalette
	}
	current = theme

	Accent, Surface, Raised = p.Accent, p.Surface, p.Raised
	Dim, Muted, Text = p.Dim, p.Muted, p.Text
	Success, Error = p.Success, p.Error

	TitleStyle = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(Muted)

	DimStyle = lipgloss.NewStyle().
		Foreground(Dim)

	AccentStyle = lipgloss.NewStyle().
		Foreground(Accent)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success)

	HighlightStyle = lipgloss.NewStyle().
		Foreground(Text).
		Background(Accent).
		Padding(0, 1)

	HeadingStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(Text).
		Background(Raised).
		Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(1, 2).
		Background(Surface)

	ModalTitleStyle = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true).
		MarginBottom(1)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(Accent)

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(Dim)

	BadgeStyle = lipgloss.NewStyle().
		Foreground(Text).
		Background(Accent).
		Padding(0, 1)

	DimBadgeStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Background(Raised).
		Padding(0, 1)

	MatchHighlightStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Background(Raised).
		Bold(true)
}

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// Pad pads a string to the given display width
func Pad(s string, width int) string {
	s = Truncate(s, width)
	return s + strings.Repeat(" ", max(0, width-runewidth.StringWidth(s)))
}

// Hint renders a "key description" pair for footers.
func Hint(key, desc string) string {
	return HelpKeyStyle.Render(key) + HelpDescStyle.Render(" "+desc)
}
