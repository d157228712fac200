package tui

import (
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/airdate/internal/catalog"
	"github.com/mmcdole/airdate/internal/domain"
	"github.com/mmcdole/airdate/internal/i18n"
	"github.com/mmcdole/airdate/internal/query"
	"github.com/mmcdole/airdate/internal/tui/components"
	"github.com/mmcdole/airdate/internal/tui/styles"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		m.State = StateBrowsing
		return m, nil

	case StateConfirmDelete:
		switch {
		case key.Matches(msg, Keys.Confirm):
			return m.confirmDelete()
		case key.Matches(msg, Keys.Deny):
			m.State = StateBrowsing
			m.pendingDelete = ""
		}
		return m, nil

	case StateSearching:
		return m.handleSearchKey(msg)
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// Keys shared by both screens
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Language):
		return m.toggleLanguage()

	case key.Matches(msg, Keys.Theme):
		return m.toggleTheme()
	}

	if m.Screen == ScreenAdmin {
		if m.isAdmin() {
			return m.handleAdminKey(msg)
		}
		m.Screen = ScreenBrowse
	}
	return m.handleBrowseKey(msg)
}

// routeToModal gives the visible modal first claim on a key
func (m Model) routeToModal(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case m.Form.IsVisible():
		var submitted bool
		m.Form, cmd, submitted = m.Form.Update(msg)
		if submitted {
			newModel, submitCmd := m.submitForm()
			return true, newModel, submitCmd
		}
		if !m.Form.IsVisible() {
			m.editingID = ""
		}
		return true, m, cmd

	case m.Login.IsVisible():
		var submitted bool
		m.Login, cmd, submitted = m.Login.Update(msg)
		if submitted {
			newModel, loginCmd := m.submitLogin()
			return true, newModel, loginCmd
		}
		return true, m, cmd

	case m.QuickJump.IsVisible():
		var selected bool
		m.QuickJump, cmd, selected = m.QuickJump.Update(msg)
		if selected {
			if r := m.QuickJump.Selected(); r != nil {
				newModel, jumpCmd := m.jumpTo(*r)
				return true, newModel, jumpCmd
			}
		}
		return true, m, cmd

	case m.Picker.IsVisible():
		if _, selection := m.Picker.HandleKey(msg); selection != nil {
			m.applyPick(*selection)
		}
		return true, m, nil

	case m.Detail.IsVisible():
		m.Detail.HandleKey(msg)
		return true, m, nil
	}

	return false, m, nil
}

// handleBrowseKey handles keys on the browse screen
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	releases := m.visibleReleases()

	switch {
	case key.Matches(msg, Keys.Up, Keys.Down, Keys.PageUp, Keys.PageDown, Keys.Home, Keys.End):
		m.Cursor = moveCursor(msg, m.Cursor, len(releases), m.listHeight())
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if m.Cursor < len(releases) {
			m.Detail.Show(releases[m.Cursor], m.tr)
		}
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.State = StateSearching
		cmd := m.Search.Focus()
		return m, cmd

	case key.Matches(msg, Keys.Month):
		m.showPicker(filterMonth)
		return m, nil

	case key.Matches(msg, Keys.Year):
		m.showPicker(filterYear)
		return m, nil

	case key.Matches(msg, Keys.Studio):
		m.showPicker(filterStudio)
		return m, nil

	case key.Matches(msg, Keys.Genre):
		m.showPicker(filterGenre)
		return m, nil

	case key.Matches(msg, Keys.Reset):
		m.resetFilters()
		return m.setStatus(m.tr.T("Filters reset"), false)

	case key.Matches(msg, Keys.QuickJump):
		m.QuickJump.Show(m.tr.T("Quick jump"), m.tr.T("Search by title..."), m.Catalog.List())
		m.QuickJump.SetSize(m.Width, m.Height)
		return m, m.QuickJump.Init()

	case key.Matches(msg, Keys.Admin):
		if m.isAdmin() {
			m.Screen = ScreenAdmin
			return m, nil
		}
		m.Login.Show(components.LoginLabels{
			Title:    m.tr.T("Admin Access"),
			Subtitle: m.tr.T("Enter credentials to manage content"),
			Username: m.tr.T("Username"),
			Password: "Password",
		})
		return m, textinput.Blink

	case key.Matches(msg, Keys.Escape):
		if !m.Criteria.IsZero() {
			m.resetFilters()
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey edits the title search while the search box has focus
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.Search.Blur()
		m.State = StateBrowsing
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	m.Criteria.Search = m.Search.Value()
	m.Cursor = 0
	return m, cmd
}

// handleAdminKey handles keys on the admin screen
func (m Model) handleAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	releases := m.Catalog.List()

	switch {
	case key.Matches(msg, Keys.Up, Keys.Down, Keys.PageUp, Keys.PageDown, Keys.Home, Keys.End):
		m.AdminCursor = moveCursor(msg, m.AdminCursor, len(releases), m.listHeight())
		return m, nil

	case key.Matches(msg, Keys.New):
		m.showForm(m.tr.T("Add New Anime"), "", catalog.Draft{})
		return m, textinput.Blink

	case key.Matches(msg, Keys.Edit):
		if m.AdminCursor < len(releases) {
			r := releases[m.AdminCursor]
			m.showForm(m.tr.T("Edit Anime"), r.ID, catalog.DraftFrom(r))
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, Keys.Delete):
		if m.AdminCursor < len(releases) {
			m.pendingDelete = releases[m.AdminCursor].ID
			m.State = StateConfirmDelete
		}
		return m, nil

	case key.Matches(msg, Keys.Logout):
		m.Catalog.Logout()
		m.Screen = ScreenBrowse
		return m.setStatus(m.tr.T("Logged out"), false)

	case key.Matches(msg, Keys.Escape):
		m.Screen = ScreenBrowse
		m.clampCursor()
		return m, nil
	}

	return m, nil
}

// moveCursor applies a navigation key to a cursor over n rows
func moveCursor(msg tea.KeyMsg, cursor, n, page int) int {
	switch {
	case key.Matches(msg, Keys.Up):
		cursor--
	case key.Matches(msg, Keys.Down):
		cursor++
	case key.Matches(msg, Keys.PageUp):
		cursor -= page
	case key.Matches(msg, Keys.PageDown):
		cursor += page
	case key.Matches(msg, Keys.Home):
		cursor = 0
	case key.Matches(msg, Keys.End):
		cursor = n - 1
	}
	return max(min(cursor, n-1), 0)
}

// showPicker opens the picker for one filter select
func (m *Model) showPicker(field filterField) {
	all := m.Catalog.List()
	var (
		title   string
		options []components.PickerOption
		active  = query.All
	)

	switch field {
	case filterMonth:
		title = m.tr.T("Month")
		options = append(options, components.PickerOption{Value: query.All, Label: m.tr.T("All Months")})
		for mo := time.January; mo <= time.December; mo++ {
			options = append(options, components.PickerOption{Value: strconv.Itoa(int(mo)), Label: m.tr.MonthName(mo)})
		}
		if m.Criteria.Month != 0 {
			active = strconv.Itoa(int(m.Criteria.Month))
		}

	case filterYear:
		title = m.tr.T("Year")
		options = append(options, components.PickerOption{Value: query.All, Label: m.tr.T("All Years")})
		for _, y := range query.Years(all) {
			options = append(options, components.PickerOption{Value: strconv.Itoa(y), Label: strconv.Itoa(y)})
		}
		if m.Criteria.Year != 0 {
			active = strconv.Itoa(m.Criteria.Year)
		}

	case filterStudio:
		title = "Studio"
		options = append(options, components.PickerOption{Value: query.All, Label: m.tr.T("All Studios")})
		for _, s := range query.Studios(all) {
			options = append(options, components.PickerOption{Value: s, Label: s})
		}
		if m.Criteria.Studio != "" {
			active = m.Criteria.Studio
		}

	case filterGenre:
		title = m.tr.T("Genres")
		options = append(options, components.PickerOption{Value: query.All, Label: m.tr.T("All Genres")})
		for _, g := range query.Genres(all) {
			options = append(options, components.PickerOption{Value: g, Label: g})
		}
		if m.Criteria.Genre != "" {
			active = m.Criteria.Genre
		}
	}

	m.pickerField = field
	m.Picker.Show(title, options, active)
}

// applyPick stores a picker selection in the browse criteria
func (m *Model) applyPick(opt components.PickerOption) {
	value := opt.Value
	if value == query.All {
		value = ""
	}

	switch m.pickerField {
	case filterMonth:
		n, _ := strconv.Atoi(value)
		m.Criteria.Month = time.Month(n)
	case filterYear:
		n, _ := strconv.Atoi(value)
		m.Criteria.Year = n
	case filterStudio:
		m.Criteria.Studio = value
	case filterGenre:
		m.Criteria.Genre = value
	}
	m.pickerField = filterNone
	m.Cursor = 0
}

func (m *Model) resetFilters() {
	m.Criteria = query.Criteria{}
	m.Search.SetValue("")
	m.Cursor = 0
}

// jumpTo moves the browse cursor onto a release, clearing filters that hide it
func (m Model) jumpTo(r domain.Release) (Model, tea.Cmd) {
	m.Screen = ScreenBrowse
	idx := indexOf(m.visibleReleases(), r.ID)
	if idx < 0 {
		m.resetFilters()
		idx = indexOf(m.visibleReleases(), r.ID)
	}
	if idx < 0 {
		return m, nil
	}
	m.Cursor = idx
	return m, nil
}

func indexOf(releases []domain.Release, id string) int {
	for i, r := range releases {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// toggleLanguage switches between the two UI languages
func (m Model) toggleLanguage() (tea.Model, tea.Cmd) {
	lang := m.tr.Language().Toggle()
	if err := m.Catalog.SetLanguage(lang); err != nil {
		return m.setStatus(err.Error(), true)
	}
	m.tr = i18n.New(lang)
	m.Search.Placeholder = m.tr.T("Search by title...")
	m.logger.Debug("language changed", "language", lang)
	return m.setStatus(m.tr.T("Language: %s", string(lang)), false)
}

// toggleTheme switches between the dark and light palettes
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	theme := m.Catalog.Session().Theme.Toggle()
	if err := m.Catalog.SetTheme(theme); err != nil {
		return m.setStatus(err.Error(), true)
	}
	styles.Apply(theme)
	m.Search.PromptStyle = styles.AccentStyle
	m.logger.Debug("theme changed", "theme", theme)
	return m.setStatus(m.tr.T("Theme: %s", string(theme)), false)
}

// submitLogin checks the login modal credentials against the catalog
func (m Model) submitLogin() (Model, tea.Cmd) {
	if err := m.Catalog.Login(m.Login.Credentials()); err != nil {
		if errors.Is(err, domain.ErrAuthFailed) {
			m.Login.SetError(m.tr.T("Invalid credentials"))
		} else {
			m.Login.SetError(err.Error())
		}
		return m, nil
	}
	m.Login.Hide()
	m.Screen = ScreenAdmin
	m.AdminCursor = 0
	return m.setStatus(m.tr.T("Welcome back, Admin"), false)
}

// showForm opens the release form. Each opening gets a new sequence number
// so results resolved for an earlier form are dropped.
func (m *Model) showForm(heading, id string, d catalog.Draft) {
	m.editingID = id
	m.formSeq++
	m.Form.Show(heading, m.formLabels(), d)
}

// submitForm validates the form and starts image resolution
func (m Model) submitForm() (Model, tea.Cmd) {
	draft := m.Form.Draft()
	if err := draft.Validate(); err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			m.Form.SetErrors(m.localizeErrors(verr))
		}
		m.Form.SetStatus(m.tr.T("Fix the highlighted fields"))
		return m, nil
	}
	m.Form.SetErrors(nil)
	m.Form.SetStatus("")
	return m, ResolveDraftCmd(draft, m.editingID, m.formSeq)
}

// applyDraft writes a resolved form to the catalog
func (m Model) applyDraft(msg DraftResolvedMsg) (tea.Model, tea.Cmd) {
	if !m.Form.IsVisible() || msg.Seq != m.formSeq {
		// Cancelled or replaced while images were being read
		m.logger.Debug("dropping stale form result", "id", msg.ID, "seq", msg.Seq)
		return m, nil
	}
	if msg.Err != nil {
		m.Form.SetStatus(m.tr.T("Could not read image: %v", msg.Err))
		return m, nil
	}
	if !m.isAdmin() {
		m.Form.Hide()
		m.Screen = ScreenBrowse
		return m, nil
	}

	var status string
	if msg.ID != "" {
		if !m.Catalog.Update(msg.ID, msg.Draft.Patch()) {
			m.Form.Hide()
			m.editingID = ""
			return m.setStatus(m.tr.T("Anime no longer exists"), true)
		}
		status = m.tr.T("Anime updated successfully")
	} else {
		added, err := m.Catalog.Add(msg.Draft.Release())
		if err != nil {
			m.Form.SetStatus(m.tr.T("Could not save: %v", err))
			return m, nil
		}
		m.AdminCursor = indexOf(m.Catalog.List(), added.ID)
		status = m.tr.T("Anime added successfully")
	}

	m.Form.Hide()
	m.editingID = ""
	m.clampCursor()
	return m.setStatus(status, false)
}

// confirmDelete removes the release awaiting confirmation
func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	id := m.pendingDelete
	m.pendingDelete = ""
	m.State = StateBrowsing

	if !m.Catalog.Delete(id) {
		return m.setStatus(m.tr.T("Anime no longer exists"), true)
	}
	m.clampCursor()
	return m.setStatus(m.tr.T("Anime deleted"), false)
}

// localizeErrors translates validation messages for display
func (m Model) localizeErrors(err *catalog.ValidationError) *catalog.ValidationError {
	out := &catalog.ValidationError{Fields: make([]catalog.FieldError, len(err.Fields))}
	for i, f := range err.Fields {
		f.Message = m.tr.T(f.Key, f.Args...)
		out.Fields[i] = f
	}
	return out
}

// formLabels returns the localized release form labels
func (m Model) formLabels() components.FormLabels {
	return components.FormLabels{
		components.FieldTitle:       m.tr.T("Title"),
		components.FieldStudio:      "Studio",
		components.FieldReleaseDate: m.tr.T("Release date"),
		components.FieldGenres:      m.tr.T("Genres (comma separated)"),
		components.FieldDescription: m.tr.T("Description"),
		components.FieldCoverImage:  m.tr.T("Cover image"),
		components.FieldGallery:     m.tr.T("Gallery (separated by |)"),
	}
}
