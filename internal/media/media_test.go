package media

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestIsInline(t *testing.T) {
	assert.True(t, IsInline("data:image/png;base64,AAAA"))
	assert.True(t, IsInline("https://example.com/a.png"))
	assert.True(t, IsInline("HTTP://example.com/a.png"))
	assert.False(t, IsInline("assets/cover.png"))
	assert.False(t, IsInline("/tmp/cover.png"))
}

func TestDataURI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(path, pngPixel, 0o644))

	uri, err := DataURI(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"), uri)
}

func TestDataURI_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := DataURI(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	_, err = DataURI(dir)
	assert.Error(t, err)

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("hello world"), 0o644))
	_, err = DataURI(text)
	assert.True(t, errors.Is(err, ErrNotImage))
}

func TestResolve(t *testing.T) {
	got, err := Resolve("  https://example.com/a.png ")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", got)

	got, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = Resolve("assets/cover_missing.png")
	require.NoError(t, err)
	assert.Equal(t, "assets/cover_missing.png", got)

	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("hello world"), 0o644))
	_, err = Resolve(notes)
	assert.ErrorIs(t, err, ErrNotImage)

	path := filepath.Join(dir, "g.png")
	require.NoError(t, os.WriteFile(path, pngPixel, 0o644))
	got, err = Resolve(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:image/png"))
}
