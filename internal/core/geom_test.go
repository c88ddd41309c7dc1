package core

import "testing"

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name           string
		w, h           int
		outerW, outerH int
		expected       Rect
	}{
		{"exact fit", 10, 5, 10, 5, NewRect(0, 0, 10, 5)},
		{"even margins", 20, 10, 80, 24, NewRect(30, 7, 20, 10)},
		{"odd margins round down", 21, 9, 80, 24, NewRect(29, 7, 21, 9)},
		{"larger than outer stays at origin", 100, 50, 80, 24, NewRect(0, 0, 100, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CenteredRect(tt.w, tt.h, tt.outerW, tt.outerH)
			if got != tt.expected {
				t.Errorf("CenteredRect() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},  // top-left corner
		{29, 29, true},  // just inside bottom-right
		{30, 30, false}, // bottom-right edge (exclusive)
		{5, 15, false},
		{15, 5, false},
	}

	for _, tc := range tests {
		result := r.Contains(tc.x, tc.y)
		if result != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(2, 3, 10, 6).Inset(1)
	if r != NewRect(3, 4, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	if tiny := NewRect(0, 0, 1, 1).Inset(2); tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset past zero = %+v, expected empty size", tiny)
	}
}

func TestRectFits(t *testing.T) {
	r := NewRect(0, 0, 25, 12)
	if !r.Fits(25, 12) {
		t.Error("Fits(25, 12) should be true")
	}
	if r.Fits(26, 12) || r.Fits(25, 13) {
		t.Error("Fits should reject larger areas")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.5, 0.0, 1.0, 0.0},
		{1.5, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b     int
		t        float64
		expected int
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{0, 10, 0.26, 3},
		{10, 0, 0.5, 5},
		{0, -10, 0.26, -3},
		{0, 10, 2, 10}, // t clamped
	}

	for _, tc := range tests {
		result := Lerp(tc.a, tc.b, tc.t)
		if result != tc.expected {
			t.Errorf("Lerp(%d, %d, %v) = %d, expected %d", tc.a, tc.b, tc.t, result, tc.expected)
		}
	}
}
