package query

import (
	"fmt"
	"slices"
	"time"

	"github.com/mmcdole/airdate/internal/domain"
)

// UndatedKey is the bucket key for releases whose date cannot be parsed.
const UndatedKey = "undated"

// Bucket groups releases sharing a release year and month.
type Bucket struct {
	Key      string     // "2026-03", or UndatedKey
	Year     int        // 0 when undated
	Month    time.Month // 0 when undated
	Date     time.Time  // First day of the month, for display; zero when undated
	Releases []domain.Release
}

// Undated reports whether this is the bucket of unparseable dates.
func (b Bucket) Undated() bool {
	return b.Key == UndatedKey
}

// GroupByMonth partitions releases into (year, month) buckets in ascending
// chronological order. Within a bucket, input order is kept. Releases with
// unparseable dates go to one trailing undated bucket.
func GroupByMonth(releases []domain.Release) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket
	var undated []domain.Release

	for _, r := range releases {
		t, ok := r.Date()
		if !ok {
			undated = append(undated, r)
			continue
		}

		key := fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
		i, exists := index[key]
		if !exists {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{
				Key:   key,
				Year:  t.Year(),
				Month: t.Month(),
				Date:  time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC),
			})
		}
		buckets[i].Releases = append(buckets[i].Releases, r)
	}

	slices.SortStableFunc(buckets, func(a, b Bucket) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return int(a.Month) - int(b.Month)
	})

	if len(undated) > 0 {
		buckets = append(buckets, Bucket{Key: UndatedKey, Releases: undated})
	}
	return buckets
}

// Count returns the number of releases across buckets.
func Count(buckets []Bucket) int {
	n := 0
	for _, b := range buckets {
		n += len(b.Releases)
	}
	return n
}
