package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/airdate/internal/domain"
	"github.com/mmcdole/airdate/internal/i18n"
	"github.com/mmcdole/airdate/internal/query"
	"github.com/mmcdole/airdate/internal/tui/components"
	"github.com/mmcdole/airdate/internal/tui/styles"
)

// Catalog is the record store the UI reads and mutates.
type Catalog interface {
	List() []domain.Release
	Get(id string) (domain.Release, bool)
	Session() domain.Session
	Add(candidate domain.Release) (domain.Release, error)
	Update(id string, patch domain.ReleasePatch) bool
	Delete(id string) bool
	Login(creds domain.Credentials) error
	Logout()
	SetLanguage(lang domain.Language) error
	SetTheme(theme domain.Theme) error
}

// Screen is the top-level page being shown
type Screen int

const (
	ScreenBrowse Screen = iota
	ScreenAdmin
)

// ApplicationState represents the current interaction state
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StateHelp
	StateConfirmDelete
)

// filterField identifies which select the picker is editing
type filterField int

const (
	filterNone filterField = iota
	filterMonth
	filterYear
	filterStudio
	filterGenre
)

// Vertical chrome: heading, subtitle, filter bar, spacer and footer
const ChromeHeight = 5

// statusTTL is how long transient status messages stay visible
const statusTTL = 3 * time.Second

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State  ApplicationState
	Screen Screen
	Ready  bool

	Catalog Catalog
	logger  *slog.Logger
	tr      *i18n.Translator

	// UI Components
	Search    textinput.Model
	Picker    components.Picker
	Detail    components.Detail
	QuickJump components.QuickJump
	Login     components.LoginModal
	Form      components.ReleaseForm

	// Browse state
	Criteria    query.Criteria
	Cursor      int // Index into visibleReleases
	pickerField filterField

	// Admin state
	AdminCursor   int
	editingID     string // Empty when the form adds a new release
	formSeq       int    // Bumped on every form opening
	pendingDelete string

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates a new application model over an initialized catalog
func NewModel(cat Catalog, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	session := cat.Session()
	styles.Apply(session.Theme)
	tr := i18n.New(session.Language)

	search := textinput.New()
	search.Prompt = "/ "
	search.PromptStyle = styles.AccentStyle
	search.TextStyle = lipgloss.NewStyle().Foreground(styles.Text)
	search.PlaceholderStyle = styles.DimStyle
	search.Placeholder = tr.T("Search by title...")
	search.CharLimit = 100
	search.Width = 30

	return Model{
		State:     StateBrowsing,
		Screen:    ScreenBrowse,
		Catalog:   cat,
		logger:    logger,
		tr:        tr,
		Search:    search,
		Picker:    components.NewPicker(),
		Detail:    components.NewDetail(),
		QuickJump: components.NewQuickJump(),
		Login:     components.NewLoginModal(),
		Form:      components.NewReleaseForm(),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case DraftResolvedMsg:
		return m.applyDraft(msg)

	case ErrMsg:
		m.logger.Error("ui error", "error", msg.Err, "context", msg.Context)
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(5 * time.Second)

	case StatusMsg:
		return m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other input messages go to whichever input has focus
	var cmd tea.Cmd
	switch {
	case m.Form.IsVisible():
		m.Form, cmd, _ = m.Form.Update(msg)
	case m.Login.IsVisible():
		m.Login, cmd, _ = m.Login.Update(msg)
	case m.QuickJump.IsVisible():
		m.QuickJump, cmd, _ = m.QuickJump.Update(msg)
	case m.State == StateSearching:
		m.Search, cmd = m.Search.Update(msg)
	}
	return m, cmd
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	m.Detail.SetSize(m.Width, m.Height)
	m.QuickJump.SetSize(m.Width, m.Height)
	m.Form.SetWidth(m.Width)
	m.Search.Width = max(min(m.Width/3, 40), 15)
}

// listHeight is the number of rows available to the release list
func (m Model) listHeight() int {
	return max(m.Height-ChromeHeight, 1)
}

// setStatus shows a transient footer message
func (m Model) setStatus(msg string, isErr bool) (Model, tea.Cmd) {
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	return m, ClearStatusCmd(statusTTL)
}

// buckets returns the filtered releases grouped by month
func (m Model) buckets() []query.Bucket {
	return query.GroupByMonth(query.Filter(m.Catalog.List(), m.Criteria))
}

// visibleReleases returns the browse list in display order
func (m Model) visibleReleases() []domain.Release {
	var out []domain.Release
	for _, b := range m.buckets() {
		out = append(out, b.Releases...)
	}
	return out
}

func (m *Model) clampCursor() {
	n := len(m.visibleReleases())
	m.Cursor = max(min(m.Cursor, n-1), 0)
	m.AdminCursor = max(min(m.AdminCursor, len(m.Catalog.List())-1), 0)
}

// isAdmin reports whether the admin screen may be shown
func (m Model) isAdmin() bool {
	return m.Catalog.Session().IsAdmin
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	var content string
	if m.Screen == ScreenAdmin && m.isAdmin() {
		content = m.renderAdmin()
	} else {
		content = m.renderBrowse()
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Height(m.Height-1).MaxHeight(m.Height-1).Render(content),
		m.renderFooter(),
	)

	// Overlays, at most one is visible at a time
	var overlay string
	switch {
	case m.State == StateConfirmDelete:
		overlay = m.renderDeleteConfirmation()
	case m.Form.IsVisible():
		overlay = m.Form.View()
	case m.Login.IsVisible():
		overlay = m.Login.View()
	case m.QuickJump.IsVisible():
		overlay = m.QuickJump.View()
	case m.Picker.IsVisible():
		overlay = m.Picker.View()
	case m.Detail.IsVisible():
		overlay = m.Detail.View()
	}
	if overlay != "" {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			overlay)
	}

	return view
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	tr := m.tr
	var hints []string
	switch {
	case m.State == StateSearching:
		hints = []string{styles.Hint("enter", tr.T("done")), styles.Hint("esc", tr.T("close"))}
	case m.Screen == ScreenAdmin && m.isAdmin():
		hints = []string{
			styles.Hint("n", tr.T("new")), styles.Hint("e", tr.T("edit")), styles.Hint("x", tr.T("delete")),
			styles.Hint("o", tr.T("logout")), styles.Hint("esc", tr.T("browse")),
		}
	default:
		hints = []string{
			styles.Hint("/", tr.T("search")), styles.Hint("m y s t", tr.T("filters")),
			styles.Hint("r", tr.T("reset")), styles.Hint("f", tr.T("jump")), styles.Hint("a", "admin"),
		}
	}
	center := strings.Join(hints, "  ")

	right := styles.Hint("?", tr.T("help"))

	// Layout: left + centered hints + right
	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space - just left + right
		gap := max(m.Width-leftWidth-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// helpEntry is one key and its description on the help screen
type helpEntry struct {
	key  string
	desc string
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	browse := []helpEntry{
		{"j/k", "Up/down"},
		{"g/G", "First/last"},
		{"PgUp/PgDn", "Scroll page"},
		{"Enter", "Details"},
		{"/", "Search title"},
		{"m y s t", "Month/year/studio/genre"},
		{"r", "Reset filters"},
		{"f", "Quick jump"},
	}
	admin := []helpEntry{
		{"a", "Open admin / login"},
		{"n", "New release"},
		{"e", "Edit release"},
		{"x", "Delete release"},
		{"o", "Logout"},
	}
	other := []helpEntry{
		{"L", "Switch language"},
		{"T", "Switch theme"},
		{"q", "Quit"},
		{"Esc", "Close / Cancel"},
	}

	section := func(title string, entries []helpEntry) string {
		lines := []string{styles.HeadingStyle.Render(m.tr.T(title))}
		for _, e := range entries {
			lines = append(lines, "  "+styles.HelpKeyStyle.Render(styles.Pad(e.key, 11))+m.tr.T(e.desc))
		}
		return strings.Join(lines, "\n")
	}

	left := section("BROWSE", browse)
	right := section("ADMIN", admin) + "\n\n" + section("OTHER", other)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	help := body + "\n\n" + styles.DimStyle.Render(m.tr.T("Press any key to return..."))

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// renderDeleteConfirmation renders the delete confirmation modal
func (m Model) renderDeleteConfirmation() string {
	title := m.pendingDelete
	if r, ok := m.Catalog.Get(m.pendingDelete); ok {
		title = r.Title
	}
	return styles.ModalStyle.Render(m.tr.T("Delete %s? (y/n)", `"`+title+`"`))
}
