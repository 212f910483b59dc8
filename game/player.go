package game

import "math"

// Player represents a connected player on the field
type Player struct {
	ID   string
	Name string
	Team TeamName // TeamNone until assigned

	// Position and movement
	X  float64
	Y  float64
	DX float64 // Velocity from the last move input
	DY float64

	Radius float64
	Speed  float64
}

// NewPlayer creates an unassigned player at the default spawn point
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		X:      PlayerDefaultX,
		Y:      PlayerDefaultY,
		Radius: PlayerRadius,
		Speed:  PlayerSpeed,
	}
}

// Pos returns the player's position
func (p *Player) Pos() Vec {
	return Vec{p.X, p.Y}
}

// Vel returns the player's velocity
func (p *Player) Vel() Vec {
	return Vec{p.DX, p.DY}
}

func (p *Player) setPos(v Vec) {
	p.X = v.X
	p.Y = v.Y
}

// Move applies one movement input. Diagonal input is normalized so it is no
// faster than straight input. The stored velocity is the unclamped one, so
// a player pinned against a wall keeps reporting it until the next input.
func (p *Player) Move(dx, dy float64) {
	if dx != 0 && dy != 0 {
		length := math.Sqrt(dx*dx + dy*dy)
		dx /= length
		dy /= length
	}

	p.DX = dx * p.Speed
	p.DY = dy * p.Speed

	p.setPos(containInField(Vec{p.X + p.DX, p.Y + p.DY}, p.Radius))
}
