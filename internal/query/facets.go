// Package query derives filter facets, filtered views and month buckets from
// a release list. Every function is pure and deterministic.
package query

import (
	"slices"

	"github.com/mmcdole/airdate/internal/domain"
)

// Years returns the distinct release years in ascending order. Releases
// whose date cannot be parsed contribute nothing.
func Years(releases []domain.Release) []int {
	seen := make(map[int]bool)
	years := []int{}
	for _, r := range releases {
		t, ok := r.Date()
		if !ok || seen[t.Year()] {
			continue
		}
		seen[t.Year()] = true
		years = append(years, t.Year())
	}
	slices.Sort(years)
	return years
}

// Studios returns the distinct studios in lexicographic order.
func Studios(releases []domain.Release) []string {
	values := make([]string, 0, len(releases))
	for _, r := range releases {
		values = append(values, r.Studio)
	}
	return distinctSorted(values)
}

// Genres returns the distinct genre tags across all releases in
// lexicographic order.
func Genres(releases []domain.Release) []string {
	var values []string
	for _, r := range releases {
		values = append(values, r.Genre...)
	}
	return distinctSorted(values)
}

func distinctSorted(values []string) []string {
	out := slices.Clone(values)
	if out == nil {
		out = []string{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
