package keying

import (
	"image"
	"image/color"
	"testing"
)

func uniform(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func TestRemoveWhiteAllWhite(t *testing.T) {
	out := RemoveWhite(uniform(10, 10, color.NRGBA{255, 255, 255, 255}))
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0 {
			t.Fatalf("pixel %d alpha = %d, want 0", i/4, out.Pix[i])
		}
	}
}

func TestRemoveWhiteLowThresholdKeepsAlpha(t *testing.T) {
	// Exactly at the low threshold: original alpha is retained.
	out := RemoveWhite(uniform(10, 10, color.NRGBA{WhiteLow, WhiteLow, WhiteLow, 255}))
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i/4, out.Pix[i])
		}
	}
}

func TestRemoveWhiteTransitionBand(t *testing.T) {
	img := uniform(11, 11, color.NRGBA{255, 255, 255, 255})
	i := img.PixOffset(5, 5)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 232, 232, 232

	out := RemoveWhite(img)
	a := out.Pix[out.PixOffset(5, 5)+3]
	if a == 0 || a == 255 {
		t.Errorf("band pixel alpha = %d, want intermediate", a)
	}
}

func TestRemoveWhiteMaxChannelKeying(t *testing.T) {
	// One bright channel is enough to key the pixel, regardless of hue.
	out := RemoveWhite(uniform(4, 4, color.NRGBA{250, 10, 10, 255}))
	if out.Pix[3] != 0 {
		t.Errorf("alpha = %d, want 0 for max-channel 250", out.Pix[3])
	}
}

func TestRemoveWhitePreservesOpaqueRow(t *testing.T) {
	img := uniform(10, 10, color.NRGBA{255, 255, 255, 255})
	for x := 0; x < 10; x++ {
		i := img.PixOffset(x, 5)
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 100, 100, 100
	}

	out := RemoveWhite(img)
	opaque := 0
	for x := 0; x < 10; x++ {
		if out.Pix[out.PixOffset(x, 5)+3] > 0 {
			opaque++
		}
	}
	if opaque < 10 {
		t.Errorf("opaque pixels in row = %d, want 10", opaque)
	}
}

func TestRemoveWhiteLeavesColorChannels(t *testing.T) {
	img := uniform(6, 6, color.NRGBA{240, 238, 230, 255})
	out := RemoveWhite(img)
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 240 || out.Pix[i+1] != 238 || out.Pix[i+2] != 230 {
			t.Fatalf("pixel %d color changed to %v", i/4, out.Pix[i:i+3])
		}
	}
}

func TestRemoveWhiteIdempotent(t *testing.T) {
	// Re-keying an already keyed image introduces no new transparency:
	// color channels are never modified, so the recomputed band factor
	// is identical. Checked away from the block edge, where the alpha
	// blur smooths.
	img := uniform(15, 15, color.NRGBA{255, 255, 255, 255})
	for y := 3; y < 12; y++ {
		for x := 3; x < 12; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 100, 100, 100
		}
	}

	twice := RemoveWhite(RemoveWhite(img))

	// Below-band interior: alpha survives both passes untouched.
	if a := twice.Pix[twice.PixOffset(7, 7)+3]; a != 255 {
		t.Errorf("dark interior alpha = %d after second pass, want 255", a)
	}
	// Corners sit well clear of the block: fully keyed both times.
	for _, p := range []image.Point{{0, 0}, {14, 0}, {0, 14}, {14, 14}} {
		if a := twice.Pix[twice.PixOffset(p.X, p.Y)+3]; a != 0 {
			t.Errorf("white pixel %v alpha = %d after second pass, want 0", p, a)
		}
	}

	// Pixels already at alpha 0 stay transparent regardless of color.
	clear := uniform(6, 6, color.NRGBA{100, 100, 100, 0})
	out := RemoveWhite(RemoveWhite(clear))
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0 {
			t.Fatal("transparent input gained alpha on re-keying")
		}
	}
}

func TestRemoveWhiteScalesExistingAlpha(t *testing.T) {
	// Band falloff multiplies the original alpha, not a fixed 255.
	img := uniform(1, 1, color.NRGBA{232, 232, 232, 100})
	out := RemoveWhite(img)
	// 100 * (245-232)/(245-220) = 52, untouched by blurring a 1x1 plane.
	if out.Pix[3] != 52 {
		t.Errorf("alpha = %d, want 52", out.Pix[3])
	}
}
