package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale enlarges img by an integer factor for display. Nearest-neighbour
// keeps wrap bands and entity outlines hard-edged. Factors <= 1 return img.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
