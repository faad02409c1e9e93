package shadow

import (
	"image"
	"image/color"
	"sort"
)

// fallbackColor is used when the sampling region is empty after clamping.
var fallbackColor = color.NRGBA{R: 50, G: 50, B: 50, A: 255}

// SampleColor picks a shadow color from a background region estimated to
// lie under the shadow. It averages the pixels whose luminance falls in
// the 10th-25th percentile band: dark tones, but not pure-black outliers
// that would skew the shadow. Uniform or tiny regions where the band
// catches nothing fall back to averaging the whole region.
func SampleColor(bg *image.NRGBA, region image.Rectangle) color.NRGBA {
	r := region.Intersect(bg.Bounds())
	if r.Empty() {
		return fallbackColor
	}

	n := r.Dx() * r.Dy()
	pixels := make([][3]int, 0, n)
	lums := make([]float64, 0, n)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := bg.PixOffset(x, y)
			pr := int(bg.Pix[i])
			pg := int(bg.Pix[i+1])
			pb := int(bg.Pix[i+2])
			pixels = append(pixels, [3]int{pr, pg, pb})
			lums = append(lums, float64(pr+pg+pb)/3)
		}
	}

	sorted := make([]float64, len(lums))
	copy(sorted, lums)
	sort.Float64s(sorted)

	p10 := int(float64(n) * 0.1)
	p25 := int(float64(n) * 0.25)
	if p25 > n-1 {
		p25 = n - 1
	}
	lo, hi := sorted[p10], sorted[p25]

	var sumR, sumG, sumB, count int
	for i, p := range pixels {
		if lums[i] >= lo && lums[i] <= hi {
			sumR += p[0]
			sumG += p[1]
			sumB += p[2]
			count++
		}
	}
	if count == 0 {
		for _, p := range pixels {
			sumR += p[0]
			sumG += p[1]
			sumB += p[2]
		}
		count = n
	}

	return color.NRGBA{
		R: uint8(sumR / count),
		G: uint8(sumG / count),
		B: uint8(sumB / count),
		A: 255,
	}
}
