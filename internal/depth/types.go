// Package depth renders raw depth sensor frames into displayable pixel buffers.
package depth

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// BytesPerPixel is the stride of one output pixel: B, G, R and an unused byte.
const BytesPerPixel = 4

// NoEntity is the segmentation value for pixels that no tracked entity occupies.
const NoEntity uint8 = 0xFF

// Gold is the default highlight for tracked entities.
var Gold = color.RGBA{R: 255, G: 215, B: 0, A: 255}

var (
	// ErrInvalidInput reports a frame whose sample counts disagree with its
	// dimensions, or whose dimensions are not positive.
	ErrInvalidInput = errors.New("depth: invalid input")

	// ErrConcurrentUse reports a call on a Renderer that is already rendering.
	ErrConcurrentUse = errors.New("depth: renderer used concurrently")
)

// Dimensions is the pixel size of a frame.
type Dimensions struct {
	Width  int
	Height int
}

// Pixels returns Width*Height.
func (d Dimensions) Pixels() int {
	return d.Width * d.Height
}

// Validate rejects non-positive dimensions and sizes whose pixel buffer
// length would overflow an int.
func (d Dimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidInput, d.Width, d.Height)
	}
	if d.Height > math.MaxInt/BytesPerPixel/d.Width {
		return fmt.Errorf("%w: dimensions %dx%d overflow the pixel buffer", ErrInvalidInput, d.Width, d.Height)
	}
	return nil
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// ReliableRange is the inclusive window of depth readings the sensor trusts.
type ReliableRange struct {
	Min uint16
	Max uint16
}

// Contains reports whether d lies within [Min, Max].
func (r ReliableRange) Contains(d uint16) bool {
	return d >= r.Min && d <= r.Max
}

// Intensity maps a depth sample to a gray level. In-range samples keep their
// low 8 bits, so intensity wraps every 256 units; out-of-range samples are 0.
func Intensity(d uint16, r ReliableRange) uint8 {
	if !r.Contains(d) {
		return 0
	}
	return uint8(d)
}
