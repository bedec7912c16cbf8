package shapes_test

import (
	"testing"

	"cssb/shapes"
)

func TestNewRectangle(t *testing.T) {
	r := shapes.NewRectangle(10, 20)
	if r.Width != 10 || r.Height != 20 {
		t.Errorf("NewRectangle(10, 20) = %+v", r)
	}
}

func TestRectangle_Area(t *testing.T) {
	for _, tc := range []struct {
		w, h, want float64
	}{
		{10, 20, 200},
		{0, 20, 0},
		{2.5, 4, 10},
	} {
		if got := shapes.NewRectangle(tc.w, tc.h).Area(); got != tc.want {
			t.Errorf("Area() of %vx%v = %v, want %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestRectangle_IsShape(t *testing.T) {
	var s shapes.Shape = shapes.NewRectangle(3, 4)
	if s.Area() != 12 {
		t.Errorf("Area() via interface = %v, want 12", s.Area())
	}
}
