package game

import "math"

// Vec is a 2D point or velocity in field units
type Vec struct {
	X float64
	Y float64
}

// Distance calculates distance between two points
func Distance(a, b Vec) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleTo returns the direction from a to b in radians
func AngleTo(a, b Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Reflect mirrors v about the unit normal n and scales the result by restitution.
func Reflect(v, n Vec, restitution float64) Vec {
	dot := v.X*n.X + v.Y*n.Y
	return Vec{
		X: (v.X - 2*dot*n.X) * restitution,
		Y: (v.Y - 2*dot*n.Y) * restitution,
	}
}

// Polar returns the point at dist from origin along angle
func Polar(origin Vec, dist, angle float64) Vec {
	return Vec{
		X: origin.X + dist*math.Cos(angle),
		Y: origin.Y + dist*math.Sin(angle),
	}
}

// Length returns the magnitude of v
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// containInField clamps a position of the given radius into the rounded
// field. Corner projections run in Corners order and the last one wins.
func containInField(pos Vec, radius float64) Vec {
	pos.X = Clamp(pos.X, radius, FieldWidth-radius)
	pos.Y = Clamp(pos.Y, radius, FieldHeight-radius)

	limit := CornerRadius + radius
	for _, corner := range Corners {
		if Distance(corner, pos) < limit {
			pos = Polar(corner, limit, AngleTo(corner, pos))
		}
	}
	return pos
}

// insideCornerCut reports whether an entity of the given radius at pos
// overlaps any corner arc.
func insideCornerCut(pos Vec, radius float64) bool {
	limit := CornerRadius + radius
	for _, corner := range Corners {
		if Distance(corner, pos) < limit {
			return true
		}
	}
	return false
}
