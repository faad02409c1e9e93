package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Flatten returns an opaque copy of img with the alpha channel dropped.
func Flatten(img *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 255
	}
	return out
}

// Save flattens the canvas and writes it to path, creating parent
// directories as needed. The format follows the extension: WebP for
// .webp, PNG otherwise. A failed encode removes the file so no truncated
// output is left behind.
func Save(img *image.NRGBA, path string) error {
	flat := Flatten(img)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("assets: mkdir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("assets: create %s: %w", path, err)
	}

	var encErr error
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		encErr = nativewebp.Encode(f, flat, nil)
	} else {
		encErr = png.Encode(f, flat)
	}
	closeErr := f.Close()

	if encErr != nil {
		os.Remove(path)
		return fmt.Errorf("assets: encode %s: %w", path, encErr)
	}
	if closeErr != nil {
		os.Remove(path)
		return fmt.Errorf("assets: write %s: %w", path, closeErr)
	}
	return nil
}
