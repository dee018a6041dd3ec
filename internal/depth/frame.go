package depth

import "fmt"

// DepthFrame is a sensor frame that can copy its depth samples out.
type DepthFrame interface {
	Dimensions() Dimensions
	ReliableRange() ReliableRange
	// CopyDepthTo fills dst, whose length is Dimensions().Pixels().
	CopyDepthTo(dst []uint16) error
}

// SegmentationFrame is a sensor frame that can copy its per-pixel entity
// indices out.
type SegmentationFrame interface {
	Dimensions() Dimensions
	// CopySegmentationTo fills dst, whose length is Dimensions().Pixels().
	CopySegmentationTo(dst []uint8) error
}

// RenderFrame stages the samples of f in the renderer's buffers and renders
// them as grayscale. If copying the samples fails, the previous frame is left
// in the output buffer.
func (r *Renderer) RenderFrame(f DepthFrame) ([]byte, error) {
	if !r.busy.CompareAndSwap(false, true) {
		return nil, ErrConcurrentUse
	}
	defer r.busy.Store(false)

	dims := f.Dimensions()
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	r.fb.stage(dims)
	if err := f.CopyDepthTo(r.fb.Depth); err != nil {
		return nil, fmt.Errorf("depth: copy depth: %w", err)
	}
	r.fb.Resize(dims)
	r.renderDepth(r.fb.Depth, f.ReliableRange())
	return r.fb.Pix, nil
}

// RenderFrameWithSegmentation is RenderFrame with entity highlighting. Both
// frames must have been captured at the same instant; they must at least
// agree on their dimensions.
func (r *Renderer) RenderFrameWithSegmentation(f DepthFrame, s SegmentationFrame) ([]byte, error) {
	if !r.busy.CompareAndSwap(false, true) {
		return nil, ErrConcurrentUse
	}
	defer r.busy.Store(false)

	dims := f.Dimensions()
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if sd := s.Dimensions(); sd != dims {
		return nil, fmt.Errorf("%w: segmentation frame is %s, depth frame is %s",
			ErrInvalidInput, sd, dims)
	}
	r.fb.stage(dims)
	if err := f.CopyDepthTo(r.fb.Depth); err != nil {
		return nil, fmt.Errorf("depth: copy depth: %w", err)
	}
	if err := s.CopySegmentationTo(r.fb.Segmentation); err != nil {
		return nil, fmt.Errorf("depth: copy segmentation: %w", err)
	}
	r.fb.Resize(dims)
	r.renderSegmented(r.fb.Depth, r.fb.Segmentation, f.ReliableRange())
	return r.fb.Pix, nil
}
