package game

import "math"

// Ball represents the match ball
type Ball struct {
	X      float64
	Y      float64
	DX     float64
	DY     float64
	Radius float64

	Friction float64
	MaxSpeed float64
}

// NewBall creates a ball at rest at the given position
func NewBall(x, y float64) *Ball {
	return &Ball{
		X:        x,
		Y:        y,
		Radius:   BallRadius,
		Friction: BallFriction,
		MaxSpeed: BallMaxSpeed,
	}
}

// Pos returns the ball's position
func (b *Ball) Pos() Vec {
	return Vec{b.X, b.Y}
}

// Vel returns the ball's velocity
func (b *Ball) Vel() Vec {
	return Vec{b.DX, b.DY}
}

// Reset puts the ball at rest at the given position
func (b *Ball) Reset(x, y float64) {
	b.X = x
	b.Y = y
	b.DX = 0
	b.DY = 0
}

// Update advances the ball one tick. Wall and corner bounces are resolved
// before friction, so both losses apply on the tick of a bounce.
func (b *Ball) Update() {
	newX := b.X + b.DX
	newY := b.Y + b.DY

	// Side walls
	if newX-b.Radius < 0 {
		newX = b.Radius
		b.DX = -b.DX * BallRestitution
	} else if newX+b.Radius > FieldWidth {
		newX = FieldWidth - b.Radius
		b.DX = -b.DX * BallRestitution
	}

	// Top and bottom walls
	if newY-b.Radius < 0 {
		newY = b.Radius
		b.DY = -b.DY * BallRestitution
	} else if newY+b.Radius > FieldHeight {
		newY = FieldHeight - b.Radius
		b.DY = -b.DY * BallRestitution
	}

	// Corner arcs override the straight-wall bounce
	limit := CornerRadius + b.Radius
	for _, corner := range Corners {
		pos := Vec{newX, newY}
		if Distance(corner, pos) < limit {
			angle := AngleTo(corner, pos)
			pos = Polar(corner, limit, angle)
			newX, newY = pos.X, pos.Y

			v := Reflect(b.Vel(), Vec{math.Cos(angle), math.Sin(angle)}, BallRestitution)
			b.DX, b.DY = v.X, v.Y
		}
	}

	b.X = newX
	b.Y = newY

	b.DX *= b.Friction
	b.DY *= b.Friction

	if math.Abs(b.DX) < BallStopSpeed {
		b.DX = 0
	}
	if math.Abs(b.DY) < BallStopSpeed {
		b.DY = 0
	}
}

// Kick adds an impulse of the given power along angle, then rescales the
// velocity so its magnitude never exceeds MaxSpeed.
func (b *Ball) Kick(power, angle float64) {
	b.DX += math.Cos(angle) * power
	b.DY += math.Sin(angle) * power

	speed := math.Sqrt(b.DX*b.DX + b.DY*b.DY)
	if speed > b.MaxSpeed {
		factor := b.MaxSpeed / speed
		b.DX *= factor
		b.DY *= factor
	}
}
