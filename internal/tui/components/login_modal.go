package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/airdate/internal/domain"
	"github.com/mmcdole/airdate/internal/tui/styles"
)

// LoginLabels holds the localized strings of the login modal.
type LoginLabels struct {
	Title    string
	Subtitle string
	Username string
	Password string
}

// LoginModal asks for the admin credentials
type LoginModal struct {
	visible  bool
	labels   LoginLabels
	username textinput.Model
	password textinput.Model
	focus    int // 0 username, 1 password
	err      string
}

func newCredentialInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.Text)
	ti.PlaceholderStyle = styles.DimStyle
	return ti
}

// NewLoginModal creates a new login modal
func NewLoginModal() LoginModal {
	password := newCredentialInput()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return LoginModal{
		username: newCredentialInput(),
		password: password,
	}
}

// Show displays the modal with empty fields
func (m *LoginModal) Show(labels LoginLabels) {
	m.visible = true
	m.labels = labels
	m.err = ""
	m.username.SetValue("")
	m.password.SetValue("")
	m.username.Placeholder = labels.Username
	m.password.Placeholder = labels.Password
	m.setFocus(0)
}

// Hide dismisses the modal
func (m *LoginModal) Hide() {
	m.visible = false
	m.username.Blur()
	m.password.Blur()
}

// IsVisible returns whether the modal is shown
func (m LoginModal) IsVisible() bool {
	return m.visible
}

// SetError shows a message under the fields and clears the password
func (m *LoginModal) SetError(msg string) {
	m.err = msg
	m.password.SetValue("")
	m.setFocus(1)
}

// Credentials returns the entered username and password
func (m LoginModal) Credentials() domain.Credentials {
	return domain.Credentials{
		Username: m.username.Value(),
		Password: m.password.Value(),
	}
}

func (m *LoginModal) setFocus(i int) {
	m.focus = i
	if i == 0 {
		m.username.Focus()
		m.password.Blur()
	} else {
		m.password.Focus()
		m.username.Blur()
	}
}

// Update handles input events, returns (modal, cmd, submitted)
func (m LoginModal) Update(msg tea.Msg) (LoginModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, FormKeys.Escape):
			m.Hide()
			return m, nil, false
		case keyMsg.String() == "enter":
			if m.focus == 0 {
				m.setFocus(1)
				return m, nil, false
			}
			return m, nil, true
		case key.Matches(keyMsg, FormKeys.Next), key.Matches(keyMsg, FormKeys.Prev):
			m.setFocus(1 - m.focus)
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd, false
}

// View renders the login modal
func (m LoginModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 36

	row := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.Surface)

	titleStyle := row.
		Foreground(styles.Text).
		Bold(true)

	label := func(text string, focused bool) string {
		if focused {
			return row.Foreground(styles.Accent).Render(text)
		}
		return row.Foreground(styles.Dim).Render(text)
	}

	spacer := row.Render("")

	parts := []string{
		titleStyle.Render(m.labels.Title),
		row.Foreground(styles.Muted).Render(m.labels.Subtitle),
		spacer,
		label(m.labels.Username, m.focus == 0),
		row.Render(m.username.View()),
		spacer,
		label(m.labels.Password, m.focus == 1),
		row.Render(m.password.View()),
	}
	if m.err != "" {
		parts = append(parts, spacer, row.Foreground(styles.Error).Render(m.err))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Accent).
		Background(styles.Surface).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
