// Package config holds the scene placement schema, its validation, and
// scale resolution.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Scene describes one composite: a background plus an ordered list of
// character placements. Characters are composited in list order, so later
// entries draw on top of earlier ones.
type Scene struct {
	Background string      `json:"background"`
	BaseScale  *float64    `json:"base_scale,omitempty"`
	Characters []Character `json:"characters"`
}

// Character is one placement directive as written in the config file.
// Pointer fields distinguish an absent key from a zero value.
type Character struct {
	SpriteSheet   string   `json:"sprite_sheet"`
	PoseIndex     *int     `json:"pose_index"`
	X             *float64 `json:"x"`
	Y             *float64 `json:"y"`
	Scale         *float64 `json:"scale,omitempty"`
	ScaleOverride *float64 `json:"scale_override,omitempty"`
}

// Placement is the resolved form carried into compositing: the
// base-scale/override choice has been collapsed to one effective scale.
type Placement struct {
	SpriteSheet string
	PoseIndex   int
	X, Y        float64
	Scale       float64
}

// Load reads a scene config from a JSON file.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return s, nil
}

// ParseCharacters parses an inline JSON array of character placements,
// as passed on the command line.
func ParseCharacters(raw string) ([]Character, error) {
	var chars []Character
	if err := json.Unmarshal([]byte(raw), &chars); err != nil {
		return nil, fmt.Errorf("config: parse characters: %w", err)
	}
	return chars, nil
}

// Resolve flattens each character to its effective scale. Call only
// after Validate has passed. With a base scale, effective scale is
// base * override (override defaults to 1); otherwise it is the
// character's own scale.
func Resolve(s Scene) []Placement {
	out := make([]Placement, len(s.Characters))
	for i, c := range s.Characters {
		p := Placement{
			SpriteSheet: c.SpriteSheet,
			PoseIndex:   *c.PoseIndex,
			X:           *c.X,
			Y:           *c.Y,
		}
		if s.BaseScale != nil {
			override := 1.0
			if c.ScaleOverride != nil {
				override = *c.ScaleOverride
			}
			p.Scale = *s.BaseScale * override
		} else {
			p.Scale = *c.Scale
		}
		out[i] = p
	}
	return out
}
