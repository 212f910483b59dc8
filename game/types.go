package game

import "time"

// Field and entity constants from the original soccer server
const (
	// Field dimensions
	FieldWidth   = 800.0
	FieldHeight  = 450.0
	CornerRadius = 45.0 // Radius of the rounded field corners

	// Player constants
	PlayerRadius   = 15.0
	PlayerSpeed    = 5.0   // Units per tick
	PlayerDefaultX = 400.0 // Spawn point before the first reset
	PlayerDefaultY = 300.0

	// Ball constants
	BallRadius      = 10.0
	BallFriction    = 0.98 // Velocity retained per tick
	BallMaxSpeed    = 15.0
	BallRestitution = 0.8  // Velocity retained after a wall or corner bounce
	BallStopSpeed   = 0.01 // Velocity components below this snap to zero
	KickBasePower   = 5.0  // Added to the kicker's speed on contact

	// Player-player collisions keep this fraction of the swapped velocity
	CollisionLoss = 0.8

	// Kickoff placement
	PlacementMinDistance = 50.0 // Minimum spacing between teammates
	PlacementAttempts    = 100

	// Game timing
	FPS            = 60
	UpdateInterval = time.Second / FPS
)

// Goal mouth geometry, derived from the field size
const (
	GoalWidth  = FieldWidth / 20
	GoalHeight = FieldHeight / 3
	GoalY      = (FieldHeight - GoalHeight) / 2 // Top edge of both goal mouths
)

// TeamName identifies one of the two teams. The zero value means unassigned.
type TeamName string

const (
	TeamNone TeamName = ""
	TeamRed  TeamName = "red"
	TeamBlue TeamName = "blue"
)

// Corners lists the field corners in the order corrections are applied:
// top-left, top-right, bottom-right, bottom-left.
var Corners = [4]Vec{
	{0, 0},
	{FieldWidth, 0},
	{FieldWidth, FieldHeight},
	{0, FieldHeight},
}
