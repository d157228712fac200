package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/airdate/internal/catalog"
	"github.com/mmcdole/airdate/internal/media"
)

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// ResolveDraftCmd reads any local image files referenced by the draft and
// replaces them with data URIs. id and seq identify the form submission.
func ResolveDraftCmd(d catalog.Draft, id string, seq int) tea.Cmd {
	return func() tea.Msg {
		msg := resolveDraft(d)
		msg.ID = id
		msg.Seq = seq
		return msg
	}
}

func resolveDraft(d catalog.Draft) DraftResolvedMsg {
	cover, err := media.Resolve(d.CoverImage)
	if err != nil {
		return DraftResolvedMsg{Draft: d, Err: err}
	}
	d.CoverImage = cover

	gallery := make([]string, 0, len(d.Gallery))
	for _, ref := range d.Gallery {
		img, err := media.Resolve(ref)
		if err != nil {
			return DraftResolvedMsg{Draft: d, Err: err}
		}
		if img != "" {
			gallery = append(gallery, img)
		}
	}
	d.Gallery = gallery
	return DraftResolvedMsg{Draft: d}
}
