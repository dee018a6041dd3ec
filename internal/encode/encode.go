package encode

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
	WebP Format = "webp"
	TGA  Format = "tga"
	PNG  Format = "png"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case WebP, TGA, PNG:
		return f, nil
	}
	return "", fmt.Errorf("encode: unknown format %q", s)
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes img to w in format f. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	case PNG:
		err = png.Encode(w, img)
	default:
		return fmt.Errorf("encode: unknown format %q", string(f))
	}
	if err != nil {
		return fmt.Errorf("encode: %s: %w", f, err)
	}
	return nil
}
