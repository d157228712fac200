package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical release date representation (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Release is one catalog entry describing a single upcoming anime release.
type Release struct {
	ID          string   `json:"id"`          // Opaque, immutable after creation
	Title       string   `json:"title"`       // Display title
	ReleaseDate string   `json:"releaseDate"` // ISO date, see ParseReleaseDate
	Studio      string   `json:"studio"`      // Animation studio
	Genre       []string `json:"genre"`       // Ordered genre tags, not deduplicated
	Description string   `json:"description"` // Synopsis, may be empty
	CoverImage  string   `json:"coverImage"`  // URL or data URI
	Gallery     []string `json:"gallery"`     // Additional image references
}

// ParseReleaseDate parses a release date. Both plain dates (2026-03-15) and
// RFC 3339 date-times are accepted; the calendar fields are taken as written.
func ParseReleaseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Date returns the parsed release date. ok is false when the stored date
// cannot be parsed; such releases carry no calendar information.
func (r Release) Date() (t time.Time, ok bool) {
	t, err := ParseReleaseDate(r.ReleaseDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// HasGenre reports whether the genre tag appears in the release's tags.
func (r Release) HasGenre(genre string) bool {
	for _, g := range r.Genre {
		if g == genre {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot alias store-owned slices.
func (r Release) Clone() Release {
	c := r
	c.Genre = append([]string{}, r.Genre...)
	c.Gallery = append([]string{}, r.Gallery...)
	return c
}

// Normalize replaces nil slices with empty ones so snapshots always
// serialize arrays.
func (r *Release) Normalize() {
	if r.Genre == nil {
		r.Genre = []string{}
	}
	if r.Gallery == nil {
		r.Gallery = []string{}
	}
}

// ReleasePatch describes a partial update. A nil field is left untouched.
type ReleasePatch struct {
	Title       *string
	ReleaseDate *string
	Studio      *string
	Genre       *[]string
	Description *string
	CoverImage  *string
	Gallery     *[]string
}

// Apply merges the supplied fields over r. The ID is never changed.
func (p ReleasePatch) Apply(r Release) Release {
	out := r.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.ReleaseDate != nil {
		out.ReleaseDate = *p.ReleaseDate
	}
	if p.Studio != nil {
		out.Studio = *p.Studio
	}
	if p.Genre != nil {
		out.Genre = append([]string{}, (*p.Genre)...)
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.CoverImage != nil {
		out.CoverImage = *p.CoverImage
	}
	if p.Gallery != nil {
		out.Gallery = append([]string{}, (*p.Gallery)...)
	}
	return out
}
