package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/airdate/internal/catalog"
	"github.com/mmcdole/airdate/internal/tui/styles"
)

// Form field positions
const (
	FieldTitle = iota
	FieldStudio
	FieldReleaseDate
	FieldGenres
	FieldDescription
	FieldCoverImage
	FieldGallery
	fieldCount
)

// GallerySeparator splits gallery entries in the form. Commas cannot be used
// because data URIs contain them.
const GallerySeparator = "|"

// validationKeys maps form positions to catalog.Draft validation field names
var validationKeys = [fieldCount]string{
	FieldTitle:       "title",
	FieldStudio:      "studio",
	FieldReleaseDate: "releaseDate",
	FieldGenres:      "genre",
	FieldCoverImage:  "coverImage",
}

// FormLabels holds the localized field labels, indexed by field position.
type FormLabels [fieldCount]string

// ReleaseForm edits one release as a column of text inputs
type ReleaseForm struct {
	visible bool
	heading string
	labels  FormLabels
	inputs  [fieldCount]textinput.Model
	focus   int
	errs    *catalog.ValidationError
	status  string
	width   int
}

// NewReleaseForm creates a new release form
func NewReleaseForm() ReleaseForm {
	var f ReleaseForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 50
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.Text)
		ti.PlaceholderStyle = styles.DimStyle
		f.inputs[i] = ti
	}
	f.inputs[FieldTitle].CharLimit = 200
	f.inputs[FieldStudio].CharLimit = 100
	f.inputs[FieldReleaseDate].CharLimit = 25
	f.inputs[FieldReleaseDate].Placeholder = "YYYY-MM-DD"
	f.inputs[FieldGenres].Placeholder = "Action, Fantasy"
	f.inputs[FieldCoverImage].Placeholder = "https://... or ~/path/to/cover.png"
	f.inputs[FieldGallery].Placeholder = "img1.png | img2.png"
	return f
}

// Show displays the form filled from a draft
func (f *ReleaseForm) Show(heading string, labels FormLabels, d catalog.Draft) {
	f.visible = true
	f.heading = heading
	f.labels = labels
	f.errs = nil
	f.status = ""

	f.inputs[FieldTitle].SetValue(d.Title)
	f.inputs[FieldStudio].SetValue(d.Studio)
	f.inputs[FieldReleaseDate].SetValue(d.ReleaseDate)
	f.inputs[FieldGenres].SetValue(d.Genres)
	f.inputs[FieldDescription].SetValue(d.Description)
	f.inputs[FieldCoverImage].SetValue(d.CoverImage)
	f.inputs[FieldGallery].SetValue(strings.Join(d.Gallery, " "+GallerySeparator+" "))
	for i := range f.inputs {
		f.inputs[i].CursorStart()
	}
	f.setFocus(FieldTitle)
}

// Hide dismisses the form
func (f *ReleaseForm) Hide() {
	f.visible = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// IsVisible returns whether the form is shown
func (f ReleaseForm) IsVisible() bool {
	return f.visible
}

// SetWidth updates the available width
func (f *ReleaseForm) SetWidth(width int) {
	f.width = width
	for i := range f.inputs {
		f.inputs[i].Width = max(min(width-20, 70), 20)
	}
}

// SetErrors shows per-field validation messages and focuses the first failed field
func (f *ReleaseForm) SetErrors(err *catalog.ValidationError) {
	f.errs = err
	if err == nil {
		return
	}
	for i, name := range validationKeys {
		if name != "" && err.Message(name) != "" {
			f.setFocus(i)
			return
		}
	}
}

// SetStatus shows a form-level message
func (f *ReleaseForm) SetStatus(msg string) {
	f.status = msg
}

// Draft returns the current field values
func (f ReleaseForm) Draft() catalog.Draft {
	var gallery []string
	for _, part := range strings.Split(f.inputs[FieldGallery].Value(), GallerySeparator) {
		if ref := strings.TrimSpace(part); ref != "" {
			gallery = append(gallery, ref)
		}
	}
	return catalog.Draft{
		Title:       f.inputs[FieldTitle].Value(),
		Studio:      f.inputs[FieldStudio].Value(),
		ReleaseDate: f.inputs[FieldReleaseDate].Value(),
		Genres:      f.inputs[FieldGenres].Value(),
		Description: f.inputs[FieldDescription].Value(),
		CoverImage:  f.inputs[FieldCoverImage].Value(),
		Gallery:     gallery,
	}
}

// Focused returns the focused field position
func (f ReleaseForm) Focused() int {
	return f.focus
}

func (f *ReleaseForm) setFocus(i int) {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

// Update handles input events, returns (form, cmd, submitted)
func (f ReleaseForm) Update(msg tea.Msg) (ReleaseForm, tea.Cmd, bool) {
	if !f.visible {
		return f, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, FormKeys.Escape):
			f.Hide()
			return f, nil, false
		case key.Matches(keyMsg, FormKeys.Submit):
			return f, nil, true
		case keyMsg.String() == "enter":
			if f.focus == fieldCount-1 {
				return f, nil, true
			}
			f.setFocus(f.focus + 1)
			return f, nil, false
		case key.Matches(keyMsg, FormKeys.Next):
			f.setFocus((f.focus + 1) % fieldCount)
			return f, nil, false
		case key.Matches(keyMsg, FormKeys.Prev):
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, nil, false
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, false
}

// View renders the form
func (f ReleaseForm) View() string {
	if !f.visible {
		return ""
	}

	labelWidth := 0
	for _, l := range f.labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	var rows []string
	rows = append(rows, styles.ModalTitleStyle.Render(f.heading))
	for i := range f.inputs {
		label := styles.Pad(f.labels[i], labelWidth)
		if i == f.focus {
			label = styles.AccentStyle.Render("› " + label)
		} else {
			label = styles.DimStyle.Render("  " + label)
		}
		rows = append(rows, label+"  "+f.inputs[i].View())

		if f.errs != nil && validationKeys[i] != "" {
			if msg := f.errs.Message(validationKeys[i]); msg != "" {
				indent := strings.Repeat(" ", labelWidth+4)
				rows = append(rows, indent+styles.ErrorStyle.Render(msg))
			}
		}
	}

	rows = append(rows, "")
	if f.status != "" {
		rows = append(rows, styles.ErrorStyle.Render(f.status))
	}
	rows = append(rows, styles.Hint("tab", "next")+"  "+styles.Hint("C-s", "save")+"  "+styles.Hint("esc", "cancel"))

	return styles.ModalStyle.Render(strings.Join(rows, "\n"))
}
