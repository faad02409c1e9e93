package batch

import (
	"encoding/json"
	"os"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"

	"quest-scene-compositor/internal/assets"
)

// accentColor returns the dominant color of a scene's background as a
// hex string. Page-layout tooling uses it to theme the text panels next
// to each illustration. Best effort: an unreadable background yields "".
func accentColor(bgPath string) string {
	img, err := assets.Load(bgPath)
	if err != nil {
		return ""
	}
	c, ok := colorful.MakeColor(dominantcolor.Find(img))
	if !ok {
		return ""
	}
	return c.Hex()
}

// WriteManifest writes the per-scene results as manifest.json, for the
// book build to pick up outputs and accent colors.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
