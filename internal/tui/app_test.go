package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/airdate/internal/catalog"
	"github.com/mmcdole/airdate/internal/domain"
	"github.com/mmcdole/airdate/internal/snapshot"
	"github.com/mmcdole/airdate/internal/tui/styles"
)

func newTestModel(t *testing.T) (Model, *catalog.Store) {
	t.Helper()

	snaps, err := snapshot.NewBoltStore("", "")
	require.NoError(t, err)
	store := catalog.NewStore(snaps, nil)
	require.NoError(t, store.Initialize())
	t.Cleanup(func() {
		store.Close()
		styles.Apply(domain.DefaultTheme)
	})

	m := NewModel(store, nil)
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40}), store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// submit presses ctrl+s and feeds the resulting command's message back in
func submit(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(keyMsg("ctrl+s"))
	m = next.(Model)
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func visibleIDs(m Model) []string {
	var ids []string
	for _, r := range m.visibleReleases() {
		ids = append(ids, r.ID)
	}
	return ids
}

func loggedIn(t *testing.T, m Model) Model {
	t.Helper()
	m = press(t, m, "a")
	m = typeText(t, m, "admin")
	m = press(t, m, "tab")
	m = typeText(t, m, "admin")
	return press(t, m, "enter")
}

func TestBrowse_InitialView(t *testing.T) {
	m, _ := newTestModel(t)

	// Grouped by month, insertion order within a month
	assert.Equal(t, []string{"1", "3", "2", "5", "4"}, visibleIDs(m))

	view := m.View()
	assert.Contains(t, view, "Prossime Uscite")
	assert.Contains(t, view, "Marzo 2026")
	assert.Contains(t, view, "Blade of the Void")
}

func TestBrowse_Search(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "/")
	assert.Equal(t, StateSearching, m.State)

	m = typeText(t, m, "BLADE")
	assert.Equal(t, []string{"3"}, visibleIDs(m))

	m = press(t, m, "esc")
	assert.Equal(t, StateBrowsing, m.State)
	assert.Equal(t, "BLADE", m.Criteria.Search)

	// Typing "q" in the search box does not quit
	m = press(t, m, "/", "q")
	assert.Equal(t, "BLADEq", m.Criteria.Search)
	assert.Empty(t, visibleIDs(m))
	assert.Contains(t, m.View(), "Nessun risultato trovato.")

	m = press(t, m, "esc", "r")
	assert.Len(t, visibleIDs(m), 5)
	assert.Equal(t, "", m.Search.Value())
}

func TestBrowse_Pickers(t *testing.T) {
	m, _ := newTestModel(t)

	// Studios: All, Future Works, Kyoto Hearts, ...
	m = press(t, m, "s")
	assert.True(t, m.Picker.IsVisible())
	m = press(t, m, "j", "enter")
	assert.False(t, m.Picker.IsVisible())
	assert.Equal(t, "Future Works", m.Criteria.Studio)
	assert.Equal(t, []string{"1", "4"}, visibleIDs(m))

	// Month: All, January, February, March
	m = press(t, m, "m", "j", "j", "j", "enter")
	assert.Equal(t, time.March, m.Criteria.Month)
	assert.Equal(t, []string{"1"}, visibleIDs(m))

	// Choosing "all" clears the select
	m = press(t, m, "s", "k", "enter")
	assert.Equal(t, "", m.Criteria.Studio)
	assert.Equal(t, []string{"1", "3"}, visibleIDs(m))

	m = press(t, m, "y", "j", "enter")
	assert.Equal(t, 2026, m.Criteria.Year)

	m = press(t, m, "t", "esc")
	assert.False(t, m.Picker.IsVisible())
	assert.Equal(t, "", m.Criteria.Genre)
}

func TestBrowse_Detail(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "j", "enter")
	require.True(t, m.Detail.IsVisible())
	assert.Equal(t, "3", m.Detail.Release().ID)
	assert.Contains(t, m.View(), "Mappa Arts")

	m = press(t, m, "esc")
	assert.False(t, m.Detail.IsVisible())
}

func TestBrowse_QuickJump(t *testing.T) {
	m, _ := newTestModel(t)

	// Filter so the target is hidden; the jump clears the filters
	m = press(t, m, "/")
	m = typeText(t, m, "cyber")
	m = press(t, m, "enter")
	require.Equal(t, []string{"1"}, visibleIDs(m))

	m = press(t, m, "f")
	require.True(t, m.QuickJump.IsVisible())
	m = typeText(t, m, "spirit")
	require.NotEmpty(t, m.QuickJump.Results())
	m = press(t, m, "enter")

	assert.False(t, m.QuickJump.IsVisible())
	assert.True(t, m.Criteria.IsZero())
	assert.Equal(t, "5", m.visibleReleases()[m.Cursor].ID)
}

func TestBrowse_LanguageAndTheme(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, "L")
	assert.Equal(t, domain.LanguageEnglish, store.Session().Language)
	assert.Contains(t, m.View(), "Upcoming Releases")
	assert.Contains(t, m.View(), "March 2026")

	m = press(t, m, "T")
	assert.Equal(t, domain.ThemeLight, store.Session().Theme)
	assert.Equal(t, domain.ThemeLight, styles.Current())

	m = press(t, m, "T")
	assert.Equal(t, domain.ThemeDark, styles.Current())
}

func TestLogin(t *testing.T) {
	t.Run("wrong password keeps the modal open", func(t *testing.T) {
		m, store := newTestModel(t)
		m = press(t, m, "a")
		m = typeText(t, m, "admin")
		m = press(t, m, "tab")
		m = typeText(t, m, "nope")
		m = press(t, m, "enter")

		assert.True(t, m.Login.IsVisible())
		assert.False(t, store.Session().IsAdmin)
		assert.Equal(t, ScreenBrowse, m.Screen)
		assert.Contains(t, m.View(), "Credenziali non valide")
	})

	t.Run("correct credentials open the admin screen", func(t *testing.T) {
		m, store := newTestModel(t)
		m = loggedIn(t, m)

		assert.False(t, m.Login.IsVisible())
		assert.True(t, store.Session().IsAdmin)
		assert.Equal(t, ScreenAdmin, m.Screen)
	})

	t.Run("esc cancels", func(t *testing.T) {
		m, store := newTestModel(t)
		m = press(t, m, "a", "esc")
		assert.False(t, m.Login.IsVisible())
		assert.False(t, store.Session().IsAdmin)
	})
}

func TestAdmin_Add(t *testing.T) {
	m, store := newTestModel(t)
	m = loggedIn(t, m)

	m = press(t, m, "n")
	require.True(t, m.Form.IsVisible())

	m = typeText(t, m, "Moonlit Ronin")
	m = press(t, m, "tab")
	m = typeText(t, m, "Studio Kaze")
	m = press(t, m, "tab")
	m = typeText(t, m, "2026-07-01")
	m = press(t, m, "tab")
	m = typeText(t, m, "Action, Historical")
	m = press(t, m, "tab", "tab")
	m = typeText(t, m, "https://example.com/ronin.png")
	m = submit(t, m)

	assert.False(t, m.Form.IsVisible())
	releases := store.List()
	require.Len(t, releases, 6)
	added := releases[5]
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Moonlit Ronin", added.Title)
	assert.Equal(t, []string{"Action", "Historical"}, added.Genre)
	assert.Equal(t, []string{"https://example.com/ronin.png"}, added.Gallery)
	assert.Equal(t, 5, m.AdminCursor)
}

func TestAdmin_AddValidation(t *testing.T) {
	m, store := newTestModel(t)
	m = loggedIn(t, m)

	m = press(t, m, "n")
	next, cmd := m.Update(keyMsg("ctrl+s"))
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.True(t, m.Form.IsVisible())
	assert.Len(t, store.List(), 5)
	assert.Contains(t, m.View(), "Il titolo è obbligatorio")
}

func TestAdmin_Edit(t *testing.T) {
	m, store := newTestModel(t)
	m = loggedIn(t, m)

	m = press(t, m, "e")
	require.True(t, m.Form.IsVisible())
	m = press(t, m, "end")
	m = typeText(t, m, " II")
	m = submit(t, m)

	r, ok := store.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Cyber Chronicles: Neon Dawn II", r.Title)
	assert.Equal(t, "Future Works", r.Studio)
	assert.Len(t, store.List(), 5)
}

func TestAdmin_StaleFormResultIsDropped(t *testing.T) {
	m, store := newTestModel(t)
	m = loggedIn(t, m)

	// Save release 1 but hold back the resolved result
	m = press(t, m, "e")
	m = press(t, m, "end")
	m = typeText(t, m, " II")
	next, cmd := m.Update(keyMsg("ctrl+s"))
	m = next.(Model)
	require.NotNil(t, cmd)
	late := cmd()

	// Cancel and open release 2 before the result arrives
	m = press(t, m, "esc", "j", "e")
	require.True(t, m.Form.IsVisible())
	m = update(t, m, late)

	assert.True(t, m.Form.IsVisible())
	r, _ := store.Get("2")
	assert.Equal(t, "Sakura High: Eternal Spring", r.Title)
	r, _ = store.Get("1")
	assert.Equal(t, "Cyber Chronicles: Neon Dawn", r.Title)

	// The open form still saves to its own release
	m = submit(t, m)
	assert.False(t, m.Form.IsVisible())
	r, _ = store.Get("2")
	assert.Equal(t, "Sakura High: Eternal Spring", r.Title)
	assert.Len(t, store.List(), 5)
}

func TestAdmin_EditCancelled(t *testing.T) {
	m, store := newTestModel(t)
	m = loggedIn(t, m)

	m = press(t, m, "e")
	m = typeText(t, m, "X")
	m = press(t, m, "esc")

	assert.False(t, m.Form.IsVisible())
	r, _ := store.Get("1")
	assert.Equal(t, "Cyber Chronicles: Neon Dawn", r.Title)
}

func TestAdmin_Delete(t *testing.T) {
	m, store := newTestModel(t)
	m = loggedIn(t, m)

	m = press(t, m, "x")
	assert.Equal(t, StateConfirmDelete, m.State)
	m = press(t, m, "n")
	assert.Equal(t, StateBrowsing, m.State)
	assert.Len(t, store.List(), 5)

	m = press(t, m, "j", "x", "y")
	assert.Len(t, store.List(), 4)
	_, ok := store.Get("2")
	assert.False(t, ok)
}

func TestAdmin_Logout(t *testing.T) {
	m, store := newTestModel(t)
	m = loggedIn(t, m)

	m = press(t, m, "o")
	assert.False(t, store.Session().IsAdmin)
	assert.Equal(t, ScreenBrowse, m.Screen)

	// Admin key asks for credentials again
	m = press(t, m, "a")
	assert.True(t, m.Login.IsVisible())
}

func TestHelp(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "cerca")

	m = press(t, m, "?")
	assert.Equal(t, StateHelp, m.State)
	assert.Contains(t, m.View(), "Salto rapido")
	assert.Contains(t, m.View(), "Cambia lingua")

	m = press(t, m, "x")
	assert.Equal(t, StateBrowsing, m.State)

	m = press(t, m, "L", "?")
	assert.Contains(t, m.View(), "Quick jump")
	assert.Contains(t, m.View(), "Switch language")
}
