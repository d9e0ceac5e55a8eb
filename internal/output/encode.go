package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is an output image format.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
	GIF  Format = "gif" // one animated file for the whole run
)

// ParseFormat accepts a format name or file extension, case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(s), ".")); f {
	case PNG, WebP, TGA, GIF:
		return f, nil
	case "":
		return PNG, nil
	}
	return "", fmt.Errorf("output: unknown format %q", s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes one still image. GIF is not a still format here; use a Recorder.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case TGA:
		return tga.Encode(w, img)
	}
	return fmt.Errorf("output: cannot encode still %s", f)
}
