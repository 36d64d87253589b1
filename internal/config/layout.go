package config

import (
	"fmt"

	"github.com/dshills/hitbox/internal/input/widget"
)

// WidgetDef is one widget entry in a layout file.
type WidgetDef struct {
	// ID is the widget identifier, unique within the layout.
	ID uint32 `toml:"id" json:"id"`

	// X, Y anchor the widget's rectangle at its top-left corner.
	X int32 `toml:"x" json:"x"`
	Y int32 `toml:"y" json:"y"`

	// Width, Height are the rectangle extents. Negative extents are legal
	// and produce a widget that never activates.
	Width  int32 `toml:"width" json:"width"`
	Height int32 `toml:"height" json:"height"`
}

// Layout is the ordered widget list the pipeline is built from.
type Layout struct {
	Widgets []WidgetDef `toml:"widgets" json:"widgets"`
}

// Validate checks the layout for duplicate widget ids.
func (l Layout) Validate() error {
	if len(l.Widgets) == 0 {
		return ErrEmptyLayout
	}

	seen := make(map[uint32]bool, len(l.Widgets))
	for _, w := range l.Widgets {
		if seen[w.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateWidget, w.ID)
		}
		seen[w.ID] = true
	}
	return nil
}

// Build creates a widget registry from the layout, preserving file order.
func (l Layout) Build() *widget.Registry {
	r := widget.NewRegistry()
	for _, w := range l.Widgets {
		r.Add(widget.New(w.ID, w.X, w.Y, w.Width, w.Height))
	}
	return r
}
