package model

import "testing"

func TestRectangleDerivedValues(t *testing.T) {
	r := NewRectangle(10, 20, 60, 40, "hello")

	if r.Width() != 50 {
		t.Errorf("Expected width 50, got %f", r.Width())
	}
	if r.Height() != 20 {
		t.Errorf("Expected height 20, got %f", r.Height())
	}
	if r.CenterX() != 35 {
		t.Errorf("Expected center X 35, got %f", r.CenterX())
	}
	if r.CenterY() != 30 {
		t.Errorf("Expected center Y 30, got %f", r.CenterY())
	}
	if r.Content != "hello" {
		t.Errorf("Expected content 'hello', got '%s'", r.Content)
	}
}

func TestRectangleLess_ReadingOrder(t *testing.T) {
	left := NewRectangle(0, 0, 10, 10, "a")
	right := NewRectangle(20, 0, 30, 10, "b")

	if !left.Less(right) {
		t.Error("Expected left rectangle to precede right rectangle")
	}
	if right.Less(left) {
		t.Error("Expected right rectangle not to precede left rectangle")
	}
}

func TestRectangleLess_VerticalTieBreak(t *testing.T) {
	upper := NewRectangle(0, 0, 10, 10, "a")
	lower := NewRectangle(0, 20, 10, 30, "b")

	if !upper.Less(lower) {
		t.Error("Expected upper rectangle to precede lower at equal X")
	}
}

func TestROIContains(t *testing.T) {
	roi := NewROI(0, 0, 100, 50)

	inside := NewRectangle(10, 10, 40, 20, "in")
	if !roi.Contains(inside) {
		t.Error("Expected rectangle inside bounds to be contained")
	}

	sticking := NewRectangle(90, 10, 110, 20, "out")
	if roi.Contains(sticking) {
		t.Error("Expected rectangle crossing the right edge not to be contained")
	}
}

func TestROIExceeds(t *testing.T) {
	roi := NewROI(0, 0, 100, 50)

	tests := []struct {
		name string
		rect Rectangle
		want bool
	}{
		{"fully inside", NewRectangle(10, 10, 40, 20, ""), false},
		{"crosses right edge", NewRectangle(90, 10, 110, 20, ""), true},
		{"crosses top edge", NewRectangle(10, -5, 40, 20, ""), true},
		{"fully outside", NewRectangle(200, 200, 220, 210, ""), true},
		{"exact bounds", NewRectangle(0, 0, 100, 50, ""), false},
	}

	for _, tc := range tests {
		if got := roi.Exceeds(tc.rect); got != tc.want {
			t.Errorf("%s: Expected Exceeds=%v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestROIIntersects(t *testing.T) {
	roi := NewROI(0, 0, 100, 50)

	overlapping := NewRectangle(90, 10, 110, 20, "")
	if !roi.Intersects(overlapping) {
		t.Error("Expected partially overlapping rectangle to intersect")
	}

	disjoint := NewRectangle(200, 200, 220, 210, "")
	if roi.Intersects(disjoint) {
		t.Error("Expected disjoint rectangle not to intersect")
	}
}
