package tui

import "github.com/mmcdole/airdate/internal/catalog"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// DraftResolvedMsg carries a submitted form whose local image paths have
// been converted to data URIs.
type DraftResolvedMsg struct {
	Draft catalog.Draft
	ID    string // Release being edited, empty for a new one
	Seq   int    // Form opening the draft came from
	Err   error
}
