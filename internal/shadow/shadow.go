// Package shadow synthesizes soft ground shadows from a pose's
// transparency mask, tinted with dark tones sampled from the background.
package shadow

import (
	"image"
	"image/color"

	"quest-scene-compositor/internal/imaging"
)

const (
	// Offset shifts the shadow right and down relative to the sprite.
	OffsetX = 4
	OffsetY = 6

	// BlurRadius controls how soft the shadow edge is.
	BlurRadius = 8

	// Opacity is fixed: the blur shapes the shadow, but its darkness
	// never exceeds this fraction of full alpha.
	Opacity = 0.35
)

// FromAlpha builds a shadow layer from a pose's w x h alpha plane. The
// layer is padded on every side so the blur never clips, the mask is
// pasted shifted by the offset, and every blurred pixel gets the shadow
// color at alpha = blurred*Opacity (truncated). The returned pad is what
// the caller must subtract from the sprite's paste origin to line the
// shadow up, since the offset is already baked into the layer.
func FromAlpha(alpha []uint8, w, h int, offset image.Point, blur int, col color.NRGBA) (*image.NRGBA, int) {
	pad := blur * 2
	if ax := abs(offset.X); ax > abs(offset.Y) {
		pad += ax
	} else {
		pad += abs(offset.Y)
	}

	tw, th := w+2*pad, h+2*pad
	layer := make([]uint8, tw*th)
	for y := 0; y < h; y++ {
		dstRow := (y + pad + offset.Y) * tw
		for x := 0; x < w; x++ {
			layer[dstRow+x+pad+offset.X] = alpha[y*w+x]
		}
	}

	blurred := imaging.BlurPlane(layer, tw, th, float64(blur))

	out := image.NewNRGBA(image.Rect(0, 0, tw, th))
	for i, a := range blurred {
		if a == 0 {
			continue
		}
		o := i * 4
		out.Pix[o] = col.R
		out.Pix[o+1] = col.G
		out.Pix[o+2] = col.B
		out.Pix[o+3] = uint8(float64(a) * Opacity)
	}
	return out, pad
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
