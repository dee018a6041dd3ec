package depth

import (
	"fmt"
	"image"
)

// Image copies a rendered B,G,R,x buffer into a new opaque NRGBA image.
// The result does not alias pix, so it survives the next render.
func Image(pix []byte, dims Dimensions) (*image.NRGBA, error) {
	if err := checkSamples(dims, len(pix)/BytesPerPixel, "pixel"); err != nil {
		return nil, err
	}
	if len(pix)%BytesPerPixel != 0 {
		return nil, fmt.Errorf("%w: pixel buffer length %d is not a multiple of %d",
			ErrInvalidInput, len(pix), BytesPerPixel)
	}

	img := image.NewNRGBA(image.Rect(0, 0, dims.Width, dims.Height))
	for i := 0; i < len(pix); i += BytesPerPixel {
		img.Pix[i] = pix[i+2]
		img.Pix[i+1] = pix[i+1]
		img.Pix[i+2] = pix[i]
		img.Pix[i+3] = 255
	}
	return img, nil
}
