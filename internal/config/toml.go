package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadTOML reads and validates a TOML layout file.
func LoadTOML(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout %s: %w", path, err)
	}
	return ParseTOML(path, data)
}

// ParseTOML parses and validates TOML layout data. The path is used only
// for error messages.
func ParseTOML(path string, data []byte) (Layout, error) {
	var layout Layout
	if err := toml.Unmarshal(data, &layout); err != nil {
		return Layout{}, &ParseError{
			Path:    path,
			Message: err.Error(),
			Err:     err,
		}
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
