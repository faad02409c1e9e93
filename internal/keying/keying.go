// Package keying removes the near-white generation background from pose
// frames, leaving a feathered alpha edge.
package keying

import (
	"image"

	"quest-scene-compositor/internal/imaging"
)

const (
	// WhiteLow..WhiteHigh is the transition band, measured against
	// max(R,G,B). Using the max channel keys near-white of any hue bias.
	WhiteLow  = 220
	WhiteHigh = 245

	// AlphaBlurRadius softens jagged keying edges. The blur touches the
	// alpha channel only.
	AlphaBlurRadius = 1
)

// RemoveWhite returns a copy of img with near-white pixels made
// transparent. Pixels at or above WhiteHigh lose all alpha, pixels at or
// below WhiteLow keep their original alpha, and the band in between
// falls off linearly (integer truncation, same as the sprite
// generation pipeline expects). Color channels are never modified.
func RemoveWhite(img *image.NRGBA) *image.NRGBA {
	out := imaging.Clone(img)
	b := out.Bounds()
	w, h := b.Dx(), b.Dy()

	for y := 0; y < h; y++ {
		row := y * out.Stride
		for x := 0; x < w; x++ {
			i := row + x*4
			l := int(out.Pix[i])
			if int(out.Pix[i+1]) > l {
				l = int(out.Pix[i+1])
			}
			if int(out.Pix[i+2]) > l {
				l = int(out.Pix[i+2])
			}

			switch {
			case l >= WhiteHigh:
				out.Pix[i+3] = 0
			case l <= WhiteLow:
				// keep original alpha
			default:
				a := int(out.Pix[i+3])
				out.Pix[i+3] = uint8(a * (WhiteHigh - l) / (WhiteHigh - WhiteLow))
			}
		}
	}

	if AlphaBlurRadius > 0 {
		alpha := imaging.ExtractAlpha(out)
		alpha = imaging.BlurPlane(alpha, w, h, AlphaBlurRadius)
		imaging.ReplaceAlpha(out, alpha)
	}

	return out
}
