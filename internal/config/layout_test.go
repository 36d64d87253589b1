package config

import (
	"errors"
	"testing"

	"github.com/dshills/hitbox/internal/input"
)

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr error
	}{
		{
			"valid",
			Layout{Widgets: []WidgetDef{{ID: 1}, {ID: 2}}},
			nil,
		},
		{
			"empty",
			Layout{},
			ErrEmptyLayout,
		},
		{
			"duplicate id",
			Layout{Widgets: []WidgetDef{{ID: 1}, {ID: 1}}},
			ErrDuplicateWidget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLayoutBuildPreservesOrder(t *testing.T) {
	layout := Layout{Widgets: []WidgetDef{
		{ID: 9, X: 0, Y: 0, Width: 10, Height: 10},
		{ID: 2, X: 0, Y: 0, Width: 10, Height: 10},
	}}

	reg := layout.Build()
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}

	// Both regions overlap; the first-defined widget wins the press.
	p := input.NewPipeline()
	p.Register(reg.Processors()...)

	out := p.Process([]input.Event{input.CursorPressed(5, 5, input.ButtonLeft)})
	if !out[0].Equal(input.WidgetPressed(9)) {
		t.Errorf("got %v, want widget-pressed(9), the first-defined widget", out[0])
	}
}

func TestLayoutBuildGeometry(t *testing.T) {
	layout := Layout{Widgets: []WidgetDef{
		{ID: 3, X: 40, Y: 40, Width: 20, Height: 20},
	}}

	reg := layout.Build()
	b, ok := reg.Get(3)
	if !ok {
		t.Fatal("Get(3) missing")
	}
	bounds := b.Bounds()
	if bounds.X != 40 || bounds.Y != 40 || bounds.Width != 20 || bounds.Height != 20 {
		t.Errorf("Bounds() = %v, want (40,40 20x20)", bounds)
	}
}
