package gamemath

import "testing"

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "touching at left edge",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching at top edge",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 0, Y: 10, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained rect",
			a:        Rect{X: 0, Y: 0, W: 20, H: 20},
			b:        Rect{X: 5, Y: 5, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "separated vertically",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 0, Y: 30, W: 10, H: 10},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.expected {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tt.expected)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.expected {
				t.Errorf("b.Overlaps(a) = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClampFloat(t *testing.T) {
	tests := []struct {
		val, min, max, want float64
	}{
		{-5, 0, 860, 0},
		{900, 0, 860, 860},
		{430, 0, 860, 430},
		{0, 0, 860, 0},
	}
	for _, tt := range tests {
		if got := ClampFloat(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("ClampFloat(%v, %v, %v) = %v, want %v", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestRectToScreen(t *testing.T) {
	r := Rect{X: 150, Y: 150, W: 120, H: 20}
	x, y := r.ToScreen(500)
	if x != 150 || y != 330 {
		t.Errorf("ToScreen(500) = (%v, %v), want (150, 330)", x, y)
	}
}
