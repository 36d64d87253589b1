package geom

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(40, 40, 20, 20)

	tests := []struct {
		name string
		x, y int32
		want bool
	}{
		{"interior", 50, 50, true},
		{"top-left corner", 40, 40, true},
		{"bottom-right corner", 60, 60, true},
		{"top edge", 50, 40, true},
		{"right edge", 60, 50, true},
		{"left of region", 39, 50, false},
		{"above region", 50, 39, false},
		{"right of region", 61, 50, false},
		{"below region", 50, 61, false},
		{"far outside", 10, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectContainsNegativeExtents(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
	}{
		{"negative width", NewRect(0, 0, -1, 10)},
		{"negative height", NewRect(0, 0, 10, -1)},
		{"both negative", NewRect(0, 0, -5, -5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No point satisfies a degenerate rectangle, including its own anchor.
			points := []Point{{0, 0}, {1, 1}, {-1, -1}, {5, 5}}
			for _, p := range points {
				if tt.rect.Contains(p.X, p.Y) {
					t.Errorf("Contains(%d, %d) = true for %v, want false", p.X, p.Y, tt.rect)
				}
			}
			if !tt.rect.Empty() {
				t.Errorf("Empty() = false for %v, want true", tt.rect)
			}
		})
	}
}

func TestRectContainsZeroExtents(t *testing.T) {
	// A zero-sized rectangle still contains exactly its anchor point.
	r := NewRect(5, 5, 0, 0)

	if !r.Contains(5, 5) {
		t.Error("Contains(5, 5) = false for zero-sized rect, want true")
	}
	if r.Contains(5, 6) || r.Contains(6, 5) {
		t.Error("zero-sized rect contains points other than its anchor")
	}
	if r.Empty() {
		t.Error("Empty() = true for zero-sized rect, want false")
	}
}

func TestPointIn(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if !Pt(10, 10).In(r) {
		t.Error("Pt(10, 10).In(r) = false, want true")
	}
	if Pt(11, 10).In(r) {
		t.Error("Pt(11, 10).In(r) = true, want false")
	}
}

func TestRectString(t *testing.T) {
	if got, want := NewRect(40, 40, 20, 20).String(), "(40,40 20x20)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := Pt(1, -2).String(), "(1,-2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
