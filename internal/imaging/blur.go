package imaging

import "math"

// BlurPlane applies a separable Gaussian blur to a single 8-bit plane.
// Radius follows the PIL convention: sigma = radius with a 3-sigma kernel
// reach. Edges clamp to the nearest pixel, so a uniform plane blurs to
// itself. A radius <= 0 returns an unmodified copy.
func BlurPlane(plane []uint8, w, h int, radius float64) []uint8 {
	out := make([]uint8, len(plane))
	copy(out, plane)
	if radius <= 0 || w <= 0 || h <= 0 {
		return out
	}

	kernel := gaussianKernel(radius)
	reach := len(kernel) / 2
	tmp := make([]float64, w*h)

	// Horizontal pass
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			var sum float64
			for k := -reach; k <= reach; k++ {
				sx := x + k
				if sx < 0 {
					sx = 0
				} else if sx >= w {
					sx = w - 1
				}
				sum += kernel[k+reach] * float64(plane[row+sx])
			}
			tmp[row+x] = sum
		}
	}

	// Vertical pass
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var sum float64
			for k := -reach; k <= reach; k++ {
				sy := y + k
				if sy < 0 {
					sy = 0
				} else if sy >= h {
					sy = h - 1
				}
				sum += kernel[k+reach] * tmp[sy*w+x]
			}
			v := sum + 0.5
			if v > 255 {
				v = 255
			}
			out[y*w+x] = uint8(v)
		}
	}

	return out
}

func gaussianKernel(sigma float64) []float64 {
	reach := int(math.Ceil(3 * sigma))
	if reach < 1 {
		reach = 1
	}
	kernel := make([]float64, 2*reach+1)
	var sum float64
	for i := -reach; i <= reach; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+reach] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
