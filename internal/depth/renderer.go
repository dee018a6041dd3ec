package depth

import (
	"fmt"
	"image/color"
	"sync/atomic"
)

// noCopy makes go vet flag copies of a Renderer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHighlight sets the color painted over tracked entities.
func WithHighlight(c color.RGBA) Option {
	return func(r *Renderer) {
		r.highlight = c
	}
}

// Renderer converts depth frames into B,G,R,x pixel buffers.
//
// A Renderer owns one output buffer and reuses it for every call: the slice
// returned by a render method is valid only until the next call on the same
// Renderer. A Renderer is not safe for concurrent use; give each goroutine
// its own, or copy the result before rendering again. Overlapping calls fail
// with ErrConcurrentUse.
type Renderer struct {
	_ noCopy

	highlight color.RGBA
	fb        FrameBuffer
	busy      atomic.Bool
}

// NewRenderer returns a Renderer that highlights entities in Gold unless an
// option says otherwise. Buffers are allocated on the first render.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{highlight: Gold}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Highlight returns the color used for tracked entities.
func (r *Renderer) Highlight() color.RGBA {
	return r.highlight
}

// Buffer exposes the renderer's storage, mainly for inspection in tools.
func (r *Renderer) Buffer() *FrameBuffer {
	return &r.fb
}

// RenderDepth renders depth as grayscale.
func (r *Renderer) RenderDepth(depth []uint16, dims Dimensions, rng ReliableRange) ([]byte, error) {
	if !r.busy.CompareAndSwap(false, true) {
		return nil, ErrConcurrentUse
	}
	defer r.busy.Store(false)

	if err := checkSamples(dims, len(depth), "depth"); err != nil {
		return nil, err
	}
	r.fb.Resize(dims)
	r.renderDepth(depth, rng)
	return r.fb.Pix, nil
}

// RenderDepthWithSegmentation renders depth as grayscale and paints every
// pixel that a tracked entity occupies in the highlight color.
func (r *Renderer) RenderDepthWithSegmentation(depth []uint16, seg []uint8, dims Dimensions, rng ReliableRange) ([]byte, error) {
	if !r.busy.CompareAndSwap(false, true) {
		return nil, ErrConcurrentUse
	}
	defer r.busy.Store(false)

	if err := checkSamples(dims, len(depth), "depth"); err != nil {
		return nil, err
	}
	if err := checkSamples(dims, len(seg), "segmentation"); err != nil {
		return nil, err
	}
	r.fb.Resize(dims)
	r.renderSegmented(depth, seg, rng)
	return r.fb.Pix, nil
}

func (r *Renderer) renderDepth(depth []uint16, rng ReliableRange) {
	pix := r.fb.Pix
	for i, d := range depth {
		v := Intensity(d, rng)
		o := i * BytesPerPixel
		p := pix[o : o+BytesPerPixel : o+BytesPerPixel]
		p[0] = v // B
		p[1] = v // G
		p[2] = v // R
		p[3] = 0
	}
}

func (r *Renderer) renderSegmented(depth []uint16, seg []uint8, rng ReliableRange) {
	pix := r.fb.Pix
	hl := r.highlight
	for i, d := range depth {
		o := i * BytesPerPixel
		p := pix[o : o+BytesPerPixel : o+BytesPerPixel]
		if seg[i] != NoEntity {
			p[0] = hl.B
			p[1] = hl.G
			p[2] = hl.R
		} else {
			v := Intensity(d, rng)
			p[0] = v
			p[1] = v
			p[2] = v
		}
		p[3] = 0
	}
}

func checkSamples(dims Dimensions, n int, what string) error {
	if err := dims.Validate(); err != nil {
		return err
	}
	if n != dims.Pixels() {
		return fmt.Errorf("%w: %d %s samples for %s frame (want %d)",
			ErrInvalidInput, n, what, dims, dims.Pixels())
	}
	return nil
}
