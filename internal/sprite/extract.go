package sprite

import (
	"fmt"
	"image"
)

// NumPoses is the number of horizontally adjacent pose frames every
// sprite sheet carries.
const NumPoses = 5

// SheetSizeError reports a sprite sheet too small to split into the
// required pose frames.
type SheetSizeError struct {
	Width, Height int
}

func (e *SheetSizeError) Error() string {
	return fmt.Sprintf("sprite: sheet too small: %dx%d", e.Width, e.Height)
}

// ExtractPoses splits a sprite sheet into NumPoses independent frames,
// left to right. Frame widths are W/NumPoses, with the last frame
// absorbing the integer-division remainder.
func ExtractPoses(sheet *image.NRGBA) ([]*image.NRGBA, error) {
	b := sheet.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < NumPoses || h < 1 {
		return nil, &SheetSizeError{Width: w, Height: h}
	}

	col := w / NumPoses
	poses := make([]*image.NRGBA, NumPoses)
	for i := 0; i < NumPoses; i++ {
		left := i * col
		right := (i + 1) * col
		if i == NumPoses-1 {
			right = w
		}
		poses[i] = crop(sheet, image.Rect(left, 0, right, h).Add(b.Min))
	}
	return poses, nil
}

// crop copies a sub-rectangle of img into a fresh zero-origin buffer.
func crop(img *image.NRGBA, r image.Rectangle) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		srcOff := img.PixOffset(r.Min.X, r.Min.Y+y)
		dstOff := y * out.Stride
		copy(out.Pix[dstOff:dstOff+r.Dx()*4], img.Pix[srcOff:srcOff+r.Dx()*4])
	}
	return out
}
