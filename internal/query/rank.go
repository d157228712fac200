package query

import (
	"sort"
	"strings"
	"unicode"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/airdate/internal/domain"
)

// Hit is a quick-jump match. MatchedIndexes are byte offsets into the
// lowercased title, for highlighting.
type Hit struct {
	Release        domain.Release
	MatchedIndexes []int
	Score          int // Higher is better
}

// titleIndex implements fuzzy.Source over lowercase titles.
type titleIndex struct {
	lowerTitles []string
}

func (idx titleIndex) String(i int) string { return idx.lowerTitles[i] }

func (idx titleIndex) Len() int { return len(idx.lowerTitles) }

// Rank matches query against release titles for the quick-jump omnibar.
// Subsequence matches come first, best score first. When nothing matches, a
// typo-tolerant pass compares the query to each title word.
func Rank(query string, releases []domain.Release) []Hit {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(releases) == 0 {
		return nil
	}

	idx := titleIndex{lowerTitles: make([]string, len(releases))}
	for i, r := range releases {
		idx.lowerTitles[i] = strings.ToLower(r.Title)
	}

	matches := fuzzy.FindFrom(query, idx)
	if len(matches) > 0 {
		hits := make([]Hit, len(matches))
		for i, m := range matches {
			hits[i] = Hit{
				Release:        releases[m.Index],
				MatchedIndexes: m.MatchedIndexes,
				Score:          m.Score,
			}
		}
		return hits
	}

	return typoHits(query, releases, idx.lowerTitles)
}

// typoHits finds titles containing a word within the allowed edit distance.
func typoHits(query string, releases []domain.Release, lowerTitles []string) []Hit {
	maxTypos := allowedTypos(len([]rune(query)))
	if maxTypos == 0 {
		return nil
	}

	var hits []Hit
	for i, title := range lowerTitles {
		best := -1
		var bestIdx []int
		for _, w := range words(title) {
			d := lfuzzy.LevenshteinDistance(query, w.text)
			if d <= maxTypos && (best < 0 || d < best) {
				best = d
				bestIdx = rangeIndexes(w.start, w.end)
			}
		}
		if best >= 0 {
			hits = append(hits, Hit{Release: releases[i], MatchedIndexes: bestIdx, Score: -best})
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Score > hits[b].Score
	})
	return hits
}

// allowedTypos: 1-3 chars = 0, 4-6 chars = 1, 7+ chars = 2
func allowedTypos(length int) int {
	switch {
	case length <= 3:
		return 0
	case length <= 6:
		return 1
	default:
		return 2
	}
}

type word struct {
	text       string
	start, end int // Byte offsets, end exclusive
}

func words(s string) []word {
	var out []word
	start := -1
	for i, r := range s {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r)
		if isWord && start < 0 {
			start = i
		} else if !isWord && start >= 0 {
			out = append(out, word{text: s[start:i], start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, word{text: s[start:], start: start, end: len(s)})
	}
	return out
}

func rangeIndexes(start, end int) []int {
	out := make([]int, end-start)
	for i := range out {
		out[i] = start + i
	}
	return out
}
