package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// LoadJSON reads and validates a JSON layout file.
func LoadJSON(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout %s: %w", path, err)
	}
	return ParseJSON(path, data)
}

// ParseJSON parses and validates JSON layout data. The path is used only
// for error messages.
func ParseJSON(path string, data []byte) (Layout, error) {
	if !gjson.ValidBytes(data) {
		return Layout{}, &ParseError{Path: path, Message: "invalid JSON"}
	}

	widgets := gjson.GetBytes(data, "widgets")
	if !widgets.Exists() || !widgets.IsArray() {
		return Layout{}, &ParseError{Path: path, Message: "missing widgets array"}
	}

	var layout Layout
	for _, w := range widgets.Array() {
		layout.Widgets = append(layout.Widgets, WidgetDef{
			ID:     uint32(w.Get("id").Uint()),
			X:      int32(w.Get("x").Int()),
			Y:      int32(w.Get("y").Int()),
			Width:  int32(w.Get("width").Int()),
			Height: int32(w.Get("height").Int()),
		})
	}

	if err := layout.Validate(); err != nil {
		return Layout{}, &ParseError{
			Path:    path,
			Message: err.Error(),
			Err:     err,
		}
	}
	return layout, nil
}

// MarshalJSON renders the layout as JSON layout data.
func MarshalJSON(layout Layout) ([]byte, error) {
	out := []byte(`{"widgets":[]}`)

	var err error
	for i, w := range layout.Widgets {
		prefix := fmt.Sprintf("widgets.%d.", i)
		for _, field := range []struct {
			key   string
			value int64
		}{
			{"id", int64(w.ID)},
			{"x", int64(w.X)},
			{"y", int64(w.Y)},
			{"width", int64(w.Width)},
			{"height", int64(w.Height)},
		} {
			out, err = sjson.SetBytes(out, prefix+field.key, field.value)
			if err != nil {
				return nil, fmt.Errorf("encoding layout: %w", err)
			}
		}
	}
	return out, nil
}

// SaveJSON writes the layout to a JSON file.
func SaveJSON(path string, layout Layout) error {
	data, err := MarshalJSON(layout)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing layout %s: %w", path, err)
	}
	return nil
}
