// Package imageio encodes rendered images by format name.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Supported formats.
const (
	WebP = "webp"
	TGA  = "tga"
)

var ErrUnknownFormat = errors.New("imageio: unknown format")

// Formats lists the supported format names.
func Formats() []string {
	return []string{WebP, TGA}
}

// Normalize lower-cases a format name and checks it is supported.
func Normalize(format string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	switch f {
	case WebP, TGA:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Ext returns the file extension, with dot, for format.
func Ext(format string) (string, error) {
	f, err := Normalize(format)
	if err != nil {
		return "", err
	}
	return "." + f, nil
}

// Encode writes img to w in the given format. WebP output is lossless.
func Encode(w io.Writer, img image.Image, format string) error {
	f, err := Normalize(format)
	if err != nil {
		return err
	}
	switch f {
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("imageio: %s encode: %w", f, err)
	}
	return nil
}

// WriteFile encodes img into a new file at path.
func WriteFile(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close %s: %w", path, err)
	}
	return nil
}
