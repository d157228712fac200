// Package media turns local image files into inline image references.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSize bounds the files accepted as cover or gallery images.
const MaxImageSize = 8 << 20

// ErrNotImage is returned when a file does not sniff as an image.
var ErrNotImage = errors.New("not an image")

// IsInline reports whether ref is already usable as an image reference
// (a data URI or a remote URL) and needs no conversion.
func IsInline(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "data:") ||
		strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://")
}

// DataURI reads the image at path and encodes it as a base64 data URI.
func DataURI(path string) (string, error) {
	path = expandHome(path)
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("read image: %s is a directory", path)
	}
	if info.Size() > MaxImageSize {
		return "", fmt.Errorf("read image: %s exceeds %d bytes", path, MaxImageSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return Encode(data)
}

// Encode wraps raw image bytes in a data URI.
func Encode(data []byte) (string, error) {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Resolve converts ref to a data URI when it names an existing local file.
// Inline references and paths that do not exist are returned unchanged, the
// latter being treated as opaque asset references.
func Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || IsInline(ref) {
		return ref, nil
	}
	if _, err := os.Stat(expandHome(ref)); errors.Is(err, fs.ErrNotExist) {
		return ref, nil
	}
	return DataURI(ref)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
