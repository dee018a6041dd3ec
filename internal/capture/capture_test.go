package capture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depth-frame-renderer/internal/depth"
)

func TestBuildIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := WriteDepth(dir, "frame_002", []uint16{1})
	require.NoError(t, err)
	_, err = WriteDepth(dir, "frame_001", []uint16{1})
	require.NoError(t, err)
	_, err = WriteSegmentation(dir, "frame_001", []uint8{0xFF})
	require.NoError(t, err)
	_, err = WriteSegmentation(dir, "orphan", []uint8{0xFF})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.depth"), 0755))

	caps, err := BuildIndex(dir)
	require.NoError(t, err)
	require.Len(t, caps, 2)

	assert.Equal(t, "frame_001", caps[0].Name)
	assert.True(t, caps[0].HasSegmentation())
	assert.Equal(t, filepath.Join(dir, "frame_001.body"), caps[0].SegmentationPath)

	assert.Equal(t, "frame_002", caps[1].Name)
	assert.False(t, caps[1].HasSegmentation())
}

func TestBuildIndex_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := BuildIndex(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestOpen_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dims := depth.Dimensions{Width: 3, Height: 2}
	samples := []uint16{0, 1, 255, 256, 4500, 65535}
	seg := []uint8{0xFF, 0, 1, 2, 0xFF, 5}
	dp, err := WriteDepth(dir, "f", samples)
	require.NoError(t, err)
	sp, err := WriteSegmentation(dir, "f", seg)
	require.NoError(t, err)

	rng := depth.ReliableRange{Min: 500, Max: 4500}
	f, err := Open(Capture{Name: "f", DepthPath: dp, SegmentationPath: sp}, dims, rng)
	require.NoError(t, err)
	assert.Equal(t, dims, f.Dimensions())
	assert.Equal(t, rng, f.ReliableRange())
	assert.True(t, f.HasSegmentation())

	gotDepth := make([]uint16, dims.Pixels())
	require.NoError(t, f.CopyDepthTo(gotDepth))
	assert.Equal(t, samples, gotDepth)

	gotSeg := make([]uint8, dims.Pixels())
	require.NoError(t, f.CopySegmentationTo(gotSeg))
	assert.Equal(t, seg, gotSeg)

	assert.Error(t, f.CopyDepthTo(make([]uint16, 2)))
}

func TestOpen_SizeMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dp, err := WriteDepth(dir, "short", []uint16{1, 2, 3})
	require.NoError(t, err)

	_, err = Open(Capture{Name: "short", DepthPath: dp}, depth.Dimensions{Width: 2, Height: 2}, depth.ReliableRange{})
	assert.ErrorContains(t, err, "short.depth")

	_, err = Open(Capture{Name: "short", DepthPath: dp}, depth.Dimensions{Width: 0, Height: 3}, depth.ReliableRange{})
	assert.ErrorIs(t, err, depth.ErrInvalidInput)
}

func TestOpen_NoSegmentation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dp, err := WriteDepth(dir, "plain", []uint16{1, 2})
	require.NoError(t, err)

	f, err := Open(Capture{Name: "plain", DepthPath: dp}, depth.Dimensions{Width: 2, Height: 1}, depth.ReliableRange{Max: 10})
	require.NoError(t, err)
	assert.False(t, f.HasSegmentation())
	assert.Error(t, f.CopySegmentationTo(make([]uint8, 2)))
}

func TestFrame_RendersThroughRenderer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dp, err := WriteDepth(dir, "scene", []uint16{500, 1200})
	require.NoError(t, err)
	sp, err := WriteSegmentation(dir, "scene", []uint8{0xFF, 3})
	require.NoError(t, err)

	f, err := Open(Capture{Name: "scene", DepthPath: dp, SegmentationPath: sp},
		depth.Dimensions{Width: 2, Height: 1}, depth.ReliableRange{Min: 0, Max: 1000})
	require.NoError(t, err)

	buf, err := depth.NewRenderer().RenderFrameWithSegmentation(f, f)
	require.NoError(t, err)
	assert.Equal(t, []byte{244, 244, 244, 0, 0, 215, 255, 0}, buf)
}
