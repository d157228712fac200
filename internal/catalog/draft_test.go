package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/airdate/internal/domain"
)

func validDraft() Draft {
	return Draft{
		Title:       "  Spirit Hunter  ",
		Studio:      "Spectral Animation",
		ReleaseDate: "2026-04-18",
		Description: "Keeping the balance.",
		Genres:      "Supernatural, Mystery, ,",
		CoverImage:  "data:image/png;base64,AAAA",
	}
}

func TestParseGenres(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Action, Fantasy,Shonen", []string{"Action", "Fantasy", "Shonen"}},
		{" , ,", []string{}},
		{"", []string{}},
		{"Action,Action", []string{"Action", "Action"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseGenres(tt.in), tt.in)
	}
}

func TestDraft_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Draft)
		fields []string
	}{
		{"valid", func(d *Draft) {}, nil},
		{"missing_title", func(d *Draft) { d.Title = "  " }, []string{"title"}},
		{"missing_studio", func(d *Draft) { d.Studio = "" }, []string{"studio"}},
		{"missing_date", func(d *Draft) { d.ReleaseDate = "" }, []string{"releaseDate"}},
		{"bad_date", func(d *Draft) { d.ReleaseDate = "next spring" }, []string{"releaseDate"}},
		{"no_genres", func(d *Draft) { d.Genres = ", ," }, []string{"genre"}},
		{"no_cover", func(d *Draft) { d.CoverImage = "" }, []string{"coverImage"}},
		{"everything", func(d *Draft) { *d = Draft{} }, []string{"title", "studio", "releaseDate", "genre", "coverImage"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			err := d.Validate()

			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			var got []string
			for _, f := range verr.Fields {
				got = append(got, f.Field)
				assert.Equal(t, f.Message, verr.Message(f.Field))
				assert.Equal(t, fmt.Sprintf(f.Key, f.Args...), f.Message)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestDraft_ValidateQuotesInputVerbatim(t *testing.T) {
	d := validDraft()
	d.ReleaseDate = "50% spring"

	var verr *ValidationError
	require.True(t, errors.As(d.Validate(), &verr))
	require.Len(t, verr.Fields, 1)
	f := verr.Fields[0]
	assert.Equal(t, `Date must be YYYY-MM-DD, got "50% spring"`, f.Message)
	assert.Equal(t, "Date must be YYYY-MM-DD, got %q", f.Key)
	assert.Equal(t, []any{"50% spring"}, f.Args)
}

func TestDraft_Release(t *testing.T) {
	r := validDraft().Release()

	assert.Empty(t, r.ID)
	assert.Equal(t, "Spirit Hunter", r.Title)
	assert.Equal(t, []string{"Supernatural", "Mystery"}, r.Genre)
	assert.Equal(t, []string{"data:image/png;base64,AAAA"}, r.Gallery, "gallery defaults to the cover")

	d := validDraft()
	d.Gallery = []string{"a.png", " ", "b.png"}
	assert.Equal(t, []string{"a.png", "b.png"}, d.Release().Gallery)
}

func TestDraft_PatchReplacesAllFields(t *testing.T) {
	orig := domain.Release{ID: "keep", Title: "Old", Studio: "Old", ReleaseDate: "2020-01-01", Genre: []string{"x"}}
	got := validDraft().Patch().Apply(orig)

	assert.Equal(t, "keep", got.ID)
	assert.Equal(t, "Spirit Hunter", got.Title)
	assert.Equal(t, "Spectral Animation", got.Studio)
	assert.Equal(t, "2026-04-18", got.ReleaseDate)
	assert.Equal(t, []string{"Supernatural", "Mystery"}, got.Genre)
}

func TestDraftFrom_RoundTrips(t *testing.T) {
	seed := SeedReleases()[0]
	d := DraftFrom(seed)

	require.NoError(t, d.Validate())
	assert.Equal(t, "Sci-Fi, Cyberpunk, Action", d.Genres)
	assert.Equal(t, seed, d.Patch().Apply(seed))
}
