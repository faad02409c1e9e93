package imaging

import "image"

// ExtractAlpha copies the alpha channel of img into a flat plane of
// Dx()*Dy() bytes, row-major from the top-left of its bounds.
func ExtractAlpha(img *image.NRGBA) []uint8 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	plane := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		row := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			plane[y*w+x] = img.Pix[row+x*4+3]
		}
	}
	return plane
}

// ReplaceAlpha writes a flat plane back into img's alpha channel. The
// plane must match the image dimensions.
func ReplaceAlpha(img *image.NRGBA, plane []uint8) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		row := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			img.Pix[row+x*4+3] = plane[y*w+x]
		}
	}
}

// Clone returns an independent copy of img, normalized to a zero-origin
// rect so callers can index rows as y*Stride.
func Clone(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcOff := img.PixOffset(b.Min.X, b.Min.Y+y)
		dstOff := y * out.Stride
		copy(out.Pix[dstOff:dstOff+w*4], img.Pix[srcOff:srcOff+w*4])
	}
	return out
}
