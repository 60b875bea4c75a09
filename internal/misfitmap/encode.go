package misfitmap

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// ErrUnknownFormat is returned for an image format other than webp, tga or
// png.
var ErrUnknownFormat = errors.New("misfitmap: unknown image format")

// Formats lists the accepted image formats.
var Formats = []string{"webp", "tga", "png"}

// Encode writes img to w in the named format. webp is lossless.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "tga":
		return tga.Encode(w, img)
	case "png":
		return png.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// FormatFromPath is the lower-case extension of path without the dot.
func FormatFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// WriteFile encodes img into a new file at path, choosing the format from
// the extension and creating parent directories as needed.
func WriteFile(path string, img image.Image) error {
	format := FormatFromPath(path)
	if !IsFormat(format) {
		return fmt.Errorf("misfitmap: write %s: %w: %q", path, ErrUnknownFormat, format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("misfitmap: write %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("misfitmap: write %s: %w", path, err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("misfitmap: encode %s: %w", path, err)
	}
	return f.Close()
}

// IsFormat reports whether format is one of Formats.
func IsFormat(format string) bool {
	for _, f := range Formats {
		if f == strings.ToLower(format) {
			return true
		}
	}
	return false
}
