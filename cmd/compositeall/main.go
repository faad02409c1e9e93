// compositeall composites every scene_*.json config found in a directory,
// writing <stem>_final.png outputs plus a manifest.json for the book
// build.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"quest-scene-compositor/internal/batch"
)

func main() {
	scenesDir := flag.String("scenes", filepath.Join("config", "scenes"), "Directory containing scene_*.json configs")
	outputDir := flag.String("output", "output", "Output directory")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of worker goroutines")

	flag.Parse()

	scenes, err := batch.Discover(*scenesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(scenes) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no scene configs found in %s\n", *scenesDir)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Found %d scene configs\n", len(scenes))
	fmt.Printf("Workers: %d, Output: %s\n", *workers, *outputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batch.Config{
		OutputDir: *outputDir,
		Workers:   *workers,
	}, scenes)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
		}
	}
	fmt.Printf("Composited: %d/%d\n", success, len(scenes))

	if failed > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, r := range results {
			if !r.Success {
				fmt.Printf("  %s: %s\n", filepath.Base(r.Config), r.Error)
			}
		}
	}

	manifestPath := filepath.Join(*outputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
