package config

import (
	"fmt"
	"os"

	"quest-scene-compositor/internal/sprite"
)

// Validate checks a scene against the schema, failing fast on the first
// violation. It runs to completion before any image is decoded; the only
// filesystem access is path existence checks. Field order matches the
// reading order of the config: background, then each character, then the
// scene-level base scale.
func Validate(s Scene) error {
	if s.Background == "" {
		return &SchemaError{Field: "background", Msg: "required"}
	}
	if s.Characters == nil {
		return &SchemaError{Field: "characters", Msg: "required"}
	}
	if _, err := os.Stat(s.Background); err != nil {
		return &NotFoundError{Kind: "background", Path: s.Background}
	}

	for i, c := range s.Characters {
		if err := validateCharacter(i, c, s.BaseScale != nil); err != nil {
			return err
		}
	}

	if s.BaseScale != nil {
		if bs := *s.BaseScale; !(bs > 0 && bs <= 1) {
			return &SchemaError{
				Field: "base_scale",
				Msg:   fmt.Sprintf("must be in (0, 1], got %v", bs),
			}
		}
	}
	return nil
}

func validateCharacter(i int, c Character, hasBaseScale bool) error {
	field := func(name string) string {
		return fmt.Sprintf("characters[%d].%s", i, name)
	}

	if c.SpriteSheet == "" {
		return &SchemaError{Field: field("sprite_sheet"), Msg: "required"}
	}
	if _, err := os.Stat(c.SpriteSheet); err != nil {
		return &NotFoundError{Kind: "sprite sheet", Path: c.SpriteSheet}
	}

	if c.PoseIndex == nil || *c.PoseIndex < 0 || *c.PoseIndex >= sprite.NumPoses {
		return &SchemaError{
			Field: field("pose_index"),
			Msg:   fmt.Sprintf("must be 0-%d", sprite.NumPoses-1),
		}
	}

	if c.X == nil || *c.X < 0 || *c.X > 1 {
		return &SchemaError{Field: field("x"), Msg: "must be in [0, 1]"}
	}
	if c.Y == nil || *c.Y < 0 || *c.Y > 1 {
		return &SchemaError{Field: field("y"), Msg: "must be in [0, 1]"}
	}

	if hasBaseScale {
		// scale is tolerated alongside base_scale but ignored; only the
		// override participates in resolution.
		if c.ScaleOverride != nil {
			if so := *c.ScaleOverride; !(so > 0 && so <= 2) {
				return &SchemaError{
					Field: field("scale_override"),
					Msg:   fmt.Sprintf("must be in (0, 2], got %v", so),
				}
			}
		}
		return nil
	}

	if c.Scale == nil || !(*c.Scale > 0 && *c.Scale <= 1) {
		return &SchemaError{Field: field("scale"), Msg: "must be in (0, 1]"}
	}
	return nil
}
