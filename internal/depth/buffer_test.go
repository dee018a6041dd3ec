package depth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameBuffer_Resize(t *testing.T) {
	t.Parallel()

	var fb FrameBuffer
	fb.Resize(Dimensions{Width: 4, Height: 3})
	assert.Len(t, fb.Pix, 48)
	assert.Len(t, fb.Depth, 12)
	assert.Len(t, fb.Segmentation, 12)

	pix := &fb.Pix[0]
	fb.Resize(Dimensions{Width: 4, Height: 3})
	assert.Same(t, pix, &fb.Pix[0], "same size keeps the allocation")

	fb.Resize(Dimensions{Width: 2, Height: 2})
	assert.Len(t, fb.Pix, 16)
	assert.Len(t, fb.Depth, 4)
	assert.Same(t, pix, &fb.Pix[0], "smaller frames reuse capacity")

	fb.Resize(Dimensions{Width: 8, Height: 8})
	assert.Len(t, fb.Pix, 256)
	assert.Len(t, fb.Segmentation, 64)
	assert.Equal(t, Dimensions{Width: 8, Height: 8}, fb.Dimensions())
}

func TestFrameBuffer_StageKeepsPixels(t *testing.T) {
	t.Parallel()

	var fb FrameBuffer
	fb.Resize(Dimensions{Width: 2, Height: 1})
	require.Len(t, fb.Pix, 8)

	fb.stage(Dimensions{Width: 5, Height: 1})
	assert.Len(t, fb.Depth, 5)
	assert.Len(t, fb.Segmentation, 5)
	assert.Len(t, fb.Pix, 8)
	assert.Equal(t, Dimensions{Width: 2, Height: 1}, fb.Dimensions())

	fb.Resize(Dimensions{Width: 2, Height: 1})
	assert.Len(t, fb.Depth, 2, "resize re-stages even when the pixels already fit")
}
