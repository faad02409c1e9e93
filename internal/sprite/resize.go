package sprite

import (
	"image"
	"math"

	"quest-scene-compositor/internal/imaging"
)

// ResizeForBackground scales a pose so its height becomes scale*bgHeight,
// keeping the aspect ratio. Both dimensions are at least 1px.
func ResizeForBackground(pose *image.NRGBA, bgHeight int, scale float64) *image.NRGBA {
	b := pose.Bounds()
	w, h := b.Dx(), b.Dy()

	newH := int(math.Round(scale * float64(bgHeight)))
	if newH < 1 {
		newH = 1
	}
	newW := 1
	if h > 0 {
		newW = int(math.Round(float64(w) * float64(newH) / float64(h)))
		if newW < 1 {
			newW = 1
		}
	}
	return imaging.Scale(pose, newW, newH)
}
