package main

import (
	"flag"
	"fmt"
	"os"

	"quest-scene-compositor/internal/compose"
	"quest-scene-compositor/internal/config"
)

func main() {
	configPath := flag.String("config", "", "Path to scene config JSON")
	background := flag.String("background", "", "Background image path (ignored if -config is set)")
	characters := flag.String("characters", "", "Inline JSON array of character placements (ignored if -config is set)")
	output := flag.String("output", "", "Output image path (required)")

	flag.Parse()

	if *output == "" {
		fail("-output is required")
	}

	var scene config.Scene
	if *configPath != "" {
		if _, err := os.Stat(*configPath); err != nil {
			fail("config file not found: %s", *configPath)
		}
		var err error
		scene, err = config.Load(*configPath)
		if err != nil {
			fail("%v", err)
		}
	} else {
		if *background == "" {
			fail("-background is required when not using -config")
		}
		if *characters == "" {
			fail("-characters is required when not using -config")
		}
		chars, err := config.ParseCharacters(*characters)
		if err != nil {
			fail("%v", err)
		}
		scene = config.Scene{Background: *background, Characters: chars}
	}

	if err := compose.SceneToFile(scene, *output); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Saved: %s\n", *output)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
