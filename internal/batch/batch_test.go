package batch

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, v uint8) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = v, v, v, 255
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeScene(t *testing.T, dir, name string) string {
	t.Helper()
	bg := filepath.Join(dir, name+"_bg.png")
	writePNG(t, bg, 128)
	cfg := fmt.Sprintf(`{"background": %q, "characters": []}`, bg)
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeScene(t, dir, "scene_2")
	writeScene(t, dir, "scene_1")
	if err := os.WriteFile(filepath.Join(dir, "notes.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("found %d configs, want 2", len(got))
	}
	if filepath.Base(got[0]) != "scene_1.json" || filepath.Base(got[1]) != "scene_2.json" {
		t.Errorf("order = %v, want scene_1 then scene_2", got)
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeScene(t, dir, "scene_1")
	bad := filepath.Join(dir, "scene_2.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	outDir := t.TempDir()
	results := Run(Config{OutputDir: outDir, Workers: 2}, []string{good, bad})

	if !results[0].Success {
		t.Fatalf("good scene failed: %s", results[0].Error)
	}
	if _, err := os.Stat(results[0].Output); err != nil {
		t.Errorf("output missing: %v", err)
	}
	if results[0].Accent == "" {
		t.Error("accent color missing for readable background")
	}

	if results[1].Success || results[1].Error == "" {
		t.Errorf("bad scene result = %+v, want recorded failure", results[1])
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	in := []Result{
		{Config: "scene_1.json", Output: "scene_1_final.png", Accent: "#808080", Success: true},
		{Config: "scene_2.json", Error: "boom"},
	}
	if err := WriteManifest(path, in); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var out []Result
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Accent != "#808080" || out[1].Error != "boom" {
		t.Errorf("manifest roundtrip = %+v", out)
	}
}
