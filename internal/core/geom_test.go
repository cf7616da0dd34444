package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "contained",
			a:        NewRect(0, 0, 100, 100),
			b:        NewRect(40, 40, 5, 5),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tt.expected)
			}
			if got := tt.b.Intersects(tt.a); got != tt.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRectIntersectsPadded(t *testing.T) {
	player := NewRect(0, 0, 40, 60)

	tests := []struct {
		name     string
		hazard   Rect
		pad      float64
		expected bool
	}{
		{"overlap deeper than pad", NewRect(35, 50, 15, 15), 3, true},
		{"overlap within pad", NewRect(38, 0, 15, 15), 3, false},
		{"same overlap without pad", NewRect(38, 0, 15, 15), 0, true},
		{"exactly at pad edge", NewRect(37, 0, 15, 15), 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := player.IntersectsPadded(tt.hazard, tt.pad); got != tt.expected {
				t.Errorf("IntersectsPadded(%v, %v) = %v, expected %v", tt.hazard, tt.pad, got, tt.expected)
			}
		})
	}
}

func TestRectInflate(t *testing.T) {
	r := NewRect(10, 20, 30, 40).Inflate(2)
	want := NewRect(8, 18, 34, 44)
	if r != want {
		t.Errorf("Inflate(2) = %v, expected %v", r, want)
	}
	if !r.Intersects(NewRect(41, 20, 5, 5)) {
		t.Error("inflated rect should reach a neighbour one unit away")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     float64
		expected bool
	}{
		{10, 10, true}, // top-left corner
		{29.9, 29.9, true},
		{30, 30, false}, // bottom-right edge is exclusive
		{9, 15, false},
		{15, 35, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0, 10, 5.5},
		{-0.1, 0, 10, 0},
		{920.5, 0, 920, 920},
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}
