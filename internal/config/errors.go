package config

import "fmt"

// SchemaError reports a config field that is missing, of the wrong type,
// or out of its documented range.
type SchemaError struct {
	Field string
	Msg   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Msg)
}

// NotFoundError reports a referenced asset path that does not exist.
type NotFoundError struct {
	Kind string // "background" or "sprite sheet"
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config: %s not found: %s", e.Kind, e.Path)
}
