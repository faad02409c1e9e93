// Package compose orchestrates one scene: validation, asset loading, and
// the per-character shadow-then-sprite paste onto a shared canvas.
package compose

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"quest-scene-compositor/internal/assets"
	"quest-scene-compositor/internal/config"
	"quest-scene-compositor/internal/imaging"
	"quest-scene-compositor/internal/keying"
	"quest-scene-compositor/internal/shadow"
	"quest-scene-compositor/internal/sprite"
)

// Scene validates the config, then composites every character onto the
// background in list order. Later characters draw over earlier ones.
// The returned canvas still carries alpha; flattening happens on save.
func Scene(sc config.Scene) (*image.NRGBA, error) {
	if err := config.Validate(sc); err != nil {
		return nil, err
	}

	bg, err := assets.Load(sc.Background)
	if err != nil {
		return nil, err
	}
	canvas := imaging.Clone(bg)

	for i, p := range config.Resolve(sc) {
		if err := placeCharacter(canvas, bg, p); err != nil {
			return nil, fmt.Errorf("compose: character %d: %w", i, err)
		}
	}
	return canvas, nil
}

// SceneToFile composites the scene and writes the flattened result.
func SceneToFile(sc config.Scene, outPath string) error {
	canvas, err := Scene(sc)
	if err != nil {
		return err
	}
	return assets.Save(canvas, outPath)
}

func placeCharacter(canvas, bg *image.NRGBA, p config.Placement) error {
	sheet, err := assets.Load(p.SpriteSheet)
	if err != nil {
		return err
	}
	poses, err := sprite.ExtractPoses(sheet)
	if err != nil {
		return err
	}

	keyed := keying.RemoveWhite(poses[p.PoseIndex])

	// Feet are located before the resize; the row is rescaled
	// proportionally afterwards.
	feetOrig := sprite.FeetRow(keyed)
	scaled := sprite.ResizeForBackground(keyed, bg.Bounds().Dy(), p.Scale)
	feet := sprite.ScaleFeetRow(feetOrig, keyed.Bounds().Dy(), scaled.Bounds().Dy())

	placeOne(canvas, bg, scaled, p.X, p.Y, feet)
	return nil
}

// placeOne pastes one scaled pose with its shadow. (xFrac, yFrac) is the
// feet position: the pose's bottom-center anchor lands exactly there.
func placeOne(canvas, bg, pose *image.NRGBA, xFrac, yFrac float64, feetRow int) {
	bw, bh := bg.Bounds().Dx(), bg.Bounds().Dy()
	pw, ph := pose.Bounds().Dx(), pose.Bounds().Dy()

	anchorX := pw / 2
	anchorY := feetRow
	cx := int(math.Round(xFrac * float64(bw)))
	cy := int(math.Round(yFrac * float64(bh)))
	pasteX := cx - anchorX
	pasteY := cy - anchorY

	// Estimate where the shadow will fall (under and right of the
	// sprite) and sample dark background tones there. The box is a
	// heuristic; it can miss for extreme offsets, but downstream pages
	// depend on the output staying stable.
	region := image.Rect(
		pasteX-pw/4,
		pasteY+ph/2,
		pasteX+pw+pw/4,
		pasteY+ph+ph/2+shadow.OffsetY*2,
	)
	col := shadow.SampleColor(bg, region)

	alpha := imaging.ExtractAlpha(pose)
	shadowImg, pad := shadow.FromAlpha(alpha, pw, ph,
		image.Pt(shadow.OffsetX, shadow.OffsetY), shadow.BlurRadius, col)

	// The shadow layer bakes its own offset inside the padding, so
	// aligning it under the sprite only needs the pad backed out.
	paste(canvas, shadowImg, pasteX-pad, pasteY-pad)
	paste(canvas, pose, pasteX, pasteY)
}

// paste alpha-composites src onto dst with its top-left at (x, y).
// Off-canvas portions clip.
func paste(dst, src *image.NRGBA, x, y int) {
	r := src.Bounds().Add(image.Pt(x, y))
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
}
