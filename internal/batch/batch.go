// Package batch composites many scenes with a worker pool. Each scene
// owns its own decode, canvas, and output; a failure in one scene never
// affects the others.
package batch

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"quest-scene-compositor/internal/compose"
	"quest-scene-compositor/internal/config"
)

// Config holds the shared settings for a batch run.
type Config struct {
	OutputDir string
	Workers   int
}

// Result holds the outcome of compositing one scene.
type Result struct {
	Config  string `json:"config"`
	Output  string `json:"output,omitempty"`
	Accent  string `json:"accent,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Discover returns the scene config files under dir, sorted by name.
func Discover(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "scene_*.json"))
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Run composites all scenes using a worker pool. Parallelism is across
// scenes only; within a scene, placement order is a semantic guarantee
// and stays sequential.
func Run(cfg Config, scenes []string) []Result {
	total := len(scenes)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	sceneChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range sceneChan {
				results[idx] = processScene(cfg, scenes[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range scenes {
		sceneChan <- i
	}
	close(sceneChan)

	wg.Wait()
	close(done)

	return results
}

func processScene(cfg Config, configPath string) Result {
	res := Result{Config: configPath}

	scene, err := config.Load(configPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	stem := strings.TrimSuffix(filepath.Base(configPath), ".json")
	outPath := filepath.Join(cfg.OutputDir, stem+"_final.png")

	if err := compose.SceneToFile(scene, outPath); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Output = outPath
	res.Accent = accentColor(scene.Background)
	res.Success = true
	return res
}
