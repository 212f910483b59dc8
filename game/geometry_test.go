package game

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestDistanceAndAngle(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Vec
		wantDist  float64
		wantAngle float64
	}{
		{"same point", Vec{1, 1}, Vec{1, 1}, 0, 0},
		{"right", Vec{0, 0}, Vec{3, 0}, 3, 0},
		{"down", Vec{0, 0}, Vec{0, 4}, 4, math.Pi / 2},
		{"left", Vec{5, 5}, Vec{2, 5}, 3, math.Pi},
		{"diagonal", Vec{0, 0}, Vec{3, 4}, 5, math.Atan2(4, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); !approxEqual(got, tt.wantDist) {
				t.Errorf("Distance = %f, expected %f", got, tt.wantDist)
			}
			if got := AngleTo(tt.a, tt.b); !approxEqual(got, tt.wantAngle) {
				t.Errorf("AngleTo = %f, expected %f", got, tt.wantAngle)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{15, 15, 785, 15},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%f, %f, %f) = %f, expected %f", tt.v, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestReflect(t *testing.T) {
	// Head-on into a wall whose normal points back along +x
	v := Reflect(Vec{-3, 2}, Vec{1, 0}, 1)
	if !approxEqual(v.X, 3) || !approxEqual(v.Y, 2) {
		t.Errorf("Expected (3, 2), got (%f, %f)", v.X, v.Y)
	}

	// Restitution scales both components
	v = Reflect(Vec{-3, 2}, Vec{1, 0}, 0.8)
	if !approxEqual(v.X, 2.4) || !approxEqual(v.Y, 1.6) {
		t.Errorf("Expected (2.4, 1.6), got (%f, %f)", v.X, v.Y)
	}

	// Diagonal normal reverses a velocity aimed straight at it
	n := Vec{math.Sqrt2 / 2, math.Sqrt2 / 2}
	v = Reflect(Vec{-1, -1}, n, 1)
	if !approxEqual(v.X, 1) || !approxEqual(v.Y, 1) {
		t.Errorf("Expected (1, 1), got (%f, %f)", v.X, v.Y)
	}
}

func TestContainInFieldCorners(t *testing.T) {
	limit := CornerRadius + PlayerRadius
	for i, corner := range Corners {
		// A point just inside each corner, already within the axis bounds
		inward := Vec{
			X: corner.X + math.Copysign(20, FieldWidth/2-corner.X),
			Y: corner.Y + math.Copysign(20, FieldHeight/2-corner.Y),
		}
		pos := containInField(inward, PlayerRadius)
		if d := Distance(corner, pos); !approxEqual(d, limit) {
			t.Errorf("Corner %d: expected distance %f, got %f", i, limit, d)
		}
	}
}
