package panzoom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 50, Y: 50, Width: 100, Height: 100}, true},
		{"contained", Rect{X: 25, Y: 25, Width: 50, Height: 50}, true},
		{"edge-adjacent", Rect{X: 100, Y: 0, Width: 50, Height: 100}, true},
		{"disjoint", Rect{X: 200, Y: 200, Width: 10, Height: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	got := multiplyAffine(identityTransform, m)
	if got != m {
		t.Errorf("identity * m = %v, want %v", got, m)
	}
	got = multiplyAffine(m, identityTransform)
	if got != m {
		t.Errorf("m * identity = %v, want %v", got, m)
	}
}

func TestInvertAffineRoundtrip(t *testing.T) {
	m := [6]float64{1.5, 0, 0, 1.5, 120, -45}
	inv := invertAffine(m)

	x, y := transformPoint(m, 33, -77)
	rx, ry := transformPoint(inv, x, y)
	if !approxEqual(rx, 33, 1e-9) || !approxEqual(ry, -77, 1e-9) {
		t.Errorf("roundtrip = (%f, %f), want (33, -77)", rx, ry)
	}
}

func TestInvertAffineSingular(t *testing.T) {
	m := [6]float64{0, 0, 0, 0, 5, 5}
	if got := invertAffine(m); got != identityTransform {
		t.Errorf("inverse of singular matrix = %v, want identity", got)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 10); got != 5 {
		t.Errorf("clamp(5,0,10) = %f, want 5", got)
	}
	if got := clamp(-1, 0, 10); got != 0 {
		t.Errorf("clamp(-1,0,10) = %f, want 0", got)
	}
	if got := clamp(11, 0, 10); got != 10 {
		t.Errorf("clamp(11,0,10) = %f, want 10", got)
	}
}
