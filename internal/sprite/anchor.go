package sprite

import (
	"image"
	"math"
)

// FeetAlphaThreshold is the minimum alpha for a pixel to count as part
// of the character when looking for the ground line.
const FeetAlphaThreshold = 10

// FeetRow returns the bottommost row of pose containing at least one
// pixel with alpha >= FeetAlphaThreshold. This is where the feet touch
// the ground, which usually sits above the frame's raw bottom edge.
// Returns the image height when no pixel qualifies.
func FeetRow(pose *image.NRGBA) int {
	b := pose.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := h - 1; y >= 0; y-- {
		row := pose.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			if pose.Pix[row+x*4+3] >= FeetAlphaThreshold {
				return y
			}
		}
	}
	return h
}

// ScaleFeetRow maps a feet row found at origH to its position after a
// resize to scaledH.
func ScaleFeetRow(row, origH, scaledH int) int {
	if origH <= 0 {
		return scaledH
	}
	return int(math.Round(float64(row) * float64(scaledH) / float64(origH)))
}
