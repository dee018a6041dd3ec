package capture

import (
	"encoding/binary"
	"fmt"
	"os"

	"depth-frame-renderer/internal/depth"
)

// Frame is a recorded frame read into memory. It satisfies both
// depth.DepthFrame and depth.SegmentationFrame.
type Frame struct {
	dims  depth.Dimensions
	rng   depth.ReliableRange
	depth []byte // little-endian uint16 samples
	seg   []byte // nil when not recorded
}

// Open reads the files of c. Recordings carry no header, so the sensor mode
// they were taken in is supplied by the caller.
func Open(c Capture, dims depth.Dimensions, rng depth.ReliableRange) (*Frame, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("capture: open %s: %w", c.Name, err)
	}
	n := dims.Pixels()

	raw, err := os.ReadFile(c.DepthPath)
	if err != nil {
		return nil, fmt.Errorf("capture: read %s: %w", c.DepthPath, err)
	}
	if len(raw) != n*2 {
		return nil, fmt.Errorf("capture: %s is %d bytes, want %d for %s",
			c.DepthPath, len(raw), n*2, dims)
	}

	f := &Frame{dims: dims, rng: rng, depth: raw}
	if c.HasSegmentation() {
		seg, err := os.ReadFile(c.SegmentationPath)
		if err != nil {
			return nil, fmt.Errorf("capture: read %s: %w", c.SegmentationPath, err)
		}
		if len(seg) != n {
			return nil, fmt.Errorf("capture: %s is %d bytes, want %d for %s",
				c.SegmentationPath, len(seg), n, dims)
		}
		f.seg = seg
	}
	return f, nil
}

// Dimensions returns the frame size.
func (f *Frame) Dimensions() depth.Dimensions { return f.dims }

// ReliableRange returns the range supplied to Open.
func (f *Frame) ReliableRange() depth.ReliableRange { return f.rng }

// HasSegmentation reports whether segmentation samples were loaded.
func (f *Frame) HasSegmentation() bool { return f.seg != nil }

// CopyDepthTo decodes the depth samples into dst.
func (f *Frame) CopyDepthTo(dst []uint16) error {
	if len(dst) != len(f.depth)/2 {
		return fmt.Errorf("capture: depth destination holds %d samples, frame has %d", len(dst), len(f.depth)/2)
	}
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint16(f.depth[i*2:])
	}
	return nil
}

// CopySegmentationTo copies the segmentation samples into dst.
func (f *Frame) CopySegmentationTo(dst []uint8) error {
	if f.seg == nil {
		return fmt.Errorf("capture: frame has no segmentation")
	}
	if len(dst) != len(f.seg) {
		return fmt.Errorf("capture: segmentation destination holds %d samples, frame has %d", len(dst), len(f.seg))
	}
	copy(dst, f.seg)
	return nil
}
