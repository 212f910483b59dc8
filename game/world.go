package game

import (
	"log"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Game holds the entire world state: both teams, the ball and every
// connected player. It is not safe for concurrent use; callers serialize
// access with Mu.
type Game struct {
	Mu sync.Mutex

	Red     *Team
	Blue    *Team
	Ball    *Ball
	Players map[string]*Player

	Tick int64

	rng *rand.Rand
}

// NewGame creates a world with empty teams and the ball at center
func NewGame() *Game {
	return NewGameWithSeed(time.Now().UnixNano())
}

// NewGameWithSeed creates a world whose kickoff placement is reproducible
func NewGameWithSeed(seed int64) *Game {
	g := &Game{
		Red:     NewTeam(TeamRed),
		Blue:    NewTeam(TeamBlue),
		Ball:    NewBall(FieldWidth/2, FieldHeight/2),
		Players: make(map[string]*Player),
		rng:     rand.New(rand.NewSource(seed)),
	}
	g.ResetPositions()
	return g
}

// Team returns the team with the given name, or nil
func (g *Game) Team(name TeamName) *Team {
	switch name {
	case TeamRed:
		return g.Red
	case TeamBlue:
		return g.Blue
	default:
		return nil
	}
}

// AddPlayer creates an unassigned player at the default spawn point.
// An existing player with the same id is replaced without touching team
// membership, so the old id stays on its team.
func (g *Game) AddPlayer(id, name string) *Player {
	p := NewPlayer(id, name)
	g.Players[id] = p
	return p
}

// RemovePlayer removes a player from the world. Team membership is left
// alone; use RemoveFromTeam first.
func (g *Game) RemovePlayer(id string) {
	delete(g.Players, id)
}

// RemoveFromTeam detaches a player from its team. Unknown ids are ignored.
func (g *Game) RemoveFromTeam(id string) {
	p, ok := g.Players[id]
	if !ok {
		return
	}
	if t := g.Team(p.Team); t != nil {
		delete(t.Players, id)
	}
	p.Team = TeamNone
}

// MovePlayer applies a movement input to a player. Unknown ids are ignored.
func (g *Game) MovePlayer(id string, dx, dy float64) {
	if p, ok := g.Players[id]; ok {
		p.Move(dx, dy)
	}
}

// AssignTeam puts a player on the smaller team, red on ties.
func (g *Game) AssignTeam(p *Player) *Team {
	if old := g.Team(p.Team); old != nil {
		delete(old.Players, p.ID)
	}

	team := g.Blue
	if g.Red.Size() <= g.Blue.Size() {
		team = g.Red
	}
	team.Players[p.ID] = struct{}{}
	p.Team = team.Name
	return team
}

// Update advances the world one tick: ball physics, collisions, then goal
// detection. It returns the team that scored this tick, or TeamNone.
func (g *Game) Update() TeamName {
	g.Tick++
	g.Ball.Update()
	g.resolveCollisions()
	return g.checkGoal()
}

// sortedPlayers returns all players in ascending id order
func (g *Game) sortedPlayers() []*Player {
	players := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].ID < players[j].ID
	})
	return players
}

// resolveCollisions separates overlapping players and lets players kick
// the ball. Player-player contact swaps the two velocities with a fixed
// loss instead of a mass-weighted elastic exchange.
func (g *Game) resolveCollisions() {
	players := g.sortedPlayers()

	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			p1 := players[i]
			p2 := players[j]

			minDist := p1.Radius + p2.Radius
			distance := Distance(p1.Pos(), p2.Pos())
			if distance >= minDist {
				continue
			}

			angle := AngleTo(p1.Pos(), p2.Pos())
			overlap := minDist - distance
			logContact("player", p1.ID, p2.ID, overlap)
			moveX := overlap * math.Cos(angle) / 2
			moveY := overlap * math.Sin(angle) / 2
			p1.X -= moveX
			p1.Y -= moveY
			p2.X += moveX
			p2.Y += moveY

			// Separation must not push anyone through a wall or corner
			p1.setPos(containInField(p1.Pos(), p1.Radius))
			p2.setPos(containInField(p2.Pos(), p2.Radius))

			p1.DX, p2.DX = p2.DX*CollisionLoss, p1.DX*CollisionLoss
			p1.DY, p2.DY = p2.DY*CollisionLoss, p1.DY*CollisionLoss
		}
	}

	ball := g.Ball
	for _, p := range players {
		minDist := p.Radius + ball.Radius
		distance := Distance(p.Pos(), ball.Pos())
		if distance >= minDist {
			continue
		}
		logContact("ball", p.ID, "ball", minDist-distance)

		angle := AngleTo(p.Pos(), ball.Pos())
		pos := Polar(p.Pos(), minDist, angle)
		ball.X, ball.Y = pos.X, pos.Y
		ball.Kick(p.Vel().Length()+KickBasePower, angle)
	}
}

// checkGoal scores a goal when the ball is inside a goal mouth and resets
// the field. The left mouth is checked first, so at most one goal counts
// per tick.
func (g *Game) checkGoal() TeamName {
	b := g.Ball
	inMouth := b.Y >= GoalY && b.Y <= GoalY+GoalHeight

	// Red defends the left goal, blue the right one
	var defender TeamName
	switch {
	case inMouth && b.X <= GoalWidth:
		defender = TeamRed
	case inMouth && b.X >= FieldWidth-GoalWidth:
		defender = TeamBlue
	default:
		return TeamNone
	}

	scorer := g.Team(defender.Opponent())

	scorer.Score++
	log.Printf("Team %s scored (red %d - blue %d)", scorer.Name, g.Red.Score, g.Blue.Score)
	g.ResetPositions()
	return scorer.Name
}

// ResetPositions puts the ball at rest at center and scatters each team
// across its own half. Each candidate spot must keep PlacementMinDistance
// from teammates already placed in this pass and stay clear of the team's
// own goal and the corner arcs. After PlacementAttempts failures the player
// goes to the middle of its half, even if someone is already there.
func (g *Game) ResetPositions() {
	g.Ball.Reset(FieldWidth/2, FieldHeight/2)

	for _, team := range []*Team{g.Red, g.Blue} {
		startX, endX := team.Name.HalfBounds()

		var placed []*Player
		for _, id := range team.MemberIDs() {
			p, ok := g.Players[id]
			if !ok {
				continue
			}

			valid := false
			for attempt := 0; attempt < PlacementAttempts && !valid; attempt++ {
				candidate := Vec{
					X: startX + g.rng.Float64()*(endX-startX-2*p.Radius) + p.Radius,
					Y: p.Radius + g.rng.Float64()*(FieldHeight-2*p.Radius),
				}
				valid = g.validPlacement(team.Name, candidate, p.Radius, placed)
				if valid {
					p.setPos(candidate)
				}
			}

			if !valid {
				p.X = startX + (endX-startX)/2
				p.Y = FieldHeight / 2
			}
			placed = append(placed, p)
		}
	}
}

func (g *Game) validPlacement(team TeamName, pos Vec, radius float64, placed []*Player) bool {
	for _, other := range placed {
		if Distance(pos, other.Pos()) < PlacementMinDistance {
			return false
		}
	}

	if team == TeamRed && pos.X < GoalWidth+radius {
		return false
	}
	if team == TeamBlue && pos.X > FieldWidth-GoalWidth-radius {
		return false
	}

	return !insideCornerCut(pos, radius)
}
