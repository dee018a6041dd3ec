package depth

// FrameBuffer holds the reusable storage of a Renderer as flat slices.
// The zero value is empty; Resize lays it out.
type FrameBuffer struct {
	Width        int
	Height       int
	Pix          []uint8  // B,G,R,x interleaved, len = W*H*4
	Depth        []uint16 // staged depth samples, len = W*H
	Segmentation []uint8  // staged segmentation samples, len = W*H
}

// Dimensions returns the size the buffer is currently laid out for.
func (fb *FrameBuffer) Dimensions() Dimensions {
	return Dimensions{Width: fb.Width, Height: fb.Height}
}

// Resize lays the buffer out for d. It is a no-op when d matches the current
// size. Existing capacity is reused when large enough; every slice ends up
// with exactly the length d requires.
func (fb *FrameBuffer) Resize(d Dimensions) {
	fb.stage(d)
	if fb.Pix != nil && d.Width == fb.Width && d.Height == fb.Height {
		return
	}
	fb.Width = d.Width
	fb.Height = d.Height
	fb.Pix = grow(fb.Pix, d.Pixels()*BytesPerPixel)
}

// stage sizes only the staging arrays for d, leaving Pix and the recorded
// dimensions describing the last rendered frame.
func (fb *FrameBuffer) stage(d Dimensions) {
	n := d.Pixels()
	fb.Depth = grow(fb.Depth, n)
	fb.Segmentation = grow(fb.Segmentation, n)
}

func grow[T any](s []T, n int) []T {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]T, n)
}
