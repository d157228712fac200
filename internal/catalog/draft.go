package catalog

import (
	"fmt"
	"strings"

	"github.com/mmcdole/airdate/internal/domain"
)

// Draft is the admin form input before it reaches the Store.
type Draft struct {
	Title       string
	Studio      string
	ReleaseDate string
	Description string
	Genres      string // Comma-separated tags
	CoverImage  string
	Gallery     []string
}

// FieldError is one failed form field. Message is Key formatted with Args;
// Key and Args are kept apart so the message can be translated.
type FieldError struct {
	Field   string
	Message string
	Key     string
	Args    []any
}

// ValidationError lists every failed field of a Draft.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Message returns the message for a field, or "".
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// DraftFrom fills a draft from an existing release, for editing.
func DraftFrom(r domain.Release) Draft {
	return Draft{
		Title:       r.Title,
		Studio:      r.Studio,
		ReleaseDate: r.ReleaseDate,
		Description: r.Description,
		Genres:      strings.Join(r.Genre, ", "),
		CoverImage:  r.CoverImage,
		Gallery:     append([]string{}, r.Gallery...),
	}
}

// ParseGenres splits a comma-separated tag list, dropping empty entries.
func ParseGenres(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Validate checks the required fields. It returns *ValidationError.
func (d Draft) Validate() error {
	var fields []FieldError
	add := func(field, key string, args ...any) {
		fields = append(fields, FieldError{
			Field:   field,
			Message: fmt.Sprintf(key, args...),
			Key:     key,
			Args:    args,
		})
	}

	if strings.TrimSpace(d.Title) == "" {
		add("title", "Title is required")
	}
	if strings.TrimSpace(d.Studio) == "" {
		add("studio", "Studio is required")
	}
	if strings.TrimSpace(d.ReleaseDate) == "" {
		add("releaseDate", "Date is required")
	} else if _, err := domain.ParseReleaseDate(d.ReleaseDate); err != nil {
		add("releaseDate", "Date must be YYYY-MM-DD, got %q", d.ReleaseDate)
	}
	if len(ParseGenres(d.Genres)) == 0 {
		add("genre", "Add at least one genre separated by comma")
	}
	if strings.TrimSpace(d.CoverImage) == "" {
		add("coverImage", "Cover image is required")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Release builds the candidate record. The Store assigns the id.
func (d Draft) Release() domain.Release {
	cover := strings.TrimSpace(d.CoverImage)
	gallery := make([]string, 0, len(d.Gallery))
	for _, g := range d.Gallery {
		if g = strings.TrimSpace(g); g != "" {
			gallery = append(gallery, g)
		}
	}
	if len(gallery) == 0 && cover != "" {
		gallery = []string{cover}
	}

	return domain.Release{
		Title:       strings.TrimSpace(d.Title),
		Studio:      strings.TrimSpace(d.Studio),
		ReleaseDate: strings.TrimSpace(d.ReleaseDate),
		Description: d.Description,
		Genre:       ParseGenres(d.Genres),
		CoverImage:  cover,
		Gallery:     gallery,
	}
}

// Patch builds a patch that replaces every editable field.
func (d Draft) Patch() domain.ReleasePatch {
	r := d.Release()
	return domain.ReleasePatch{
		Title:       &r.Title,
		ReleaseDate: &r.ReleaseDate,
		Studio:      &r.Studio,
		Genre:       &r.Genre,
		Description: &r.Description,
		CoverImage:  &r.CoverImage,
		Gallery:     &r.Gallery,
	}
}
