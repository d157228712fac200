package query

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/mmcdole/airdate/internal/domain"
)

// All is the sentinel select value meaning "do not constrain on this field".
const All = "all"

// Criteria holds the browse filters. Zero values are unset: an empty Search,
// Month 0, Year 0, and Studio or Genre that are empty or All.
type Criteria struct {
	Search string     // Case-insensitive substring of the title
	Month  time.Month // 1-12
	Year   int
	Studio string
	Genre  string
}

// IsZero reports whether no criterion is applied.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Month == 0 && c.Year == 0 && unset(c.Studio) && unset(c.Genre)
}

func unset(v string) bool {
	return v == "" || v == All
}

// Matcher evaluates one Criteria against releases, folding the search term
// once.
type Matcher struct {
	c      Criteria
	caser  cases.Caser
	folded string
}

// NewMatcher prepares criteria for repeated matching.
func NewMatcher(c Criteria) *Matcher {
	m := &Matcher{c: c, caser: cases.Fold()}
	m.folded = m.caser.String(c.Search)
	return m
}

// Match reports whether r satisfies every applied criterion. A release whose
// date cannot be parsed fails any applied month or year criterion.
func (m *Matcher) Match(r domain.Release) bool {
	c := m.c

	if c.Search != "" && !strings.Contains(m.caser.String(r.Title), m.folded) {
		return false
	}

	if c.Month != 0 || c.Year != 0 {
		t, ok := r.Date()
		if !ok {
			return false
		}
		if c.Month != 0 && t.Month() != c.Month {
			return false
		}
		if c.Year != 0 && t.Year() != c.Year {
			return false
		}
	}

	if !unset(c.Studio) && r.Studio != c.Studio {
		return false
	}
	if !unset(c.Genre) && !r.HasGenre(c.Genre) {
		return false
	}
	return true
}

// Filter returns the releases matching every applied criterion, preserving
// input order.
func Filter(releases []domain.Release, c Criteria) []domain.Release {
	m := NewMatcher(c)
	out := make([]domain.Release, 0, len(releases))
	for _, r := range releases {
		if m.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
