package game

// TeamSnapshot is the wire view of a team
type TeamSnapshot struct {
	Name    TeamName `json:"name" msgpack:"name"`
	Score   int      `json:"score" msgpack:"score"`
	Players []string `json:"players" msgpack:"players"`
}

// BallSnapshot is the wire view of the ball
type BallSnapshot struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	DX     float64 `json:"dx" msgpack:"dx"`
	DY     float64 `json:"dy" msgpack:"dy"`
	Radius float64 `json:"radius" msgpack:"radius"`
}

// PlayerSnapshot is the wire view of a player
type PlayerSnapshot struct {
	ID     string   `json:"id" msgpack:"id"`
	Name   string   `json:"name" msgpack:"name"`
	X      float64  `json:"x" msgpack:"x"`
	Y      float64  `json:"y" msgpack:"y"`
	DX     float64  `json:"dx" msgpack:"dx"`
	DY     float64  `json:"dy" msgpack:"dy"`
	Radius float64  `json:"radius" msgpack:"radius"`
	Team   TeamName `json:"team" msgpack:"team"`
}

// Snapshot is a copy of the world that can be serialized after the lock
// is released.
type Snapshot struct {
	Tick    int64                     `json:"tick" msgpack:"tick"`
	Teams   map[TeamName]TeamSnapshot `json:"teams" msgpack:"teams"`
	Ball    BallSnapshot              `json:"ball" msgpack:"ball"`
	Players []PlayerSnapshot          `json:"players" msgpack:"players"`
}

func (t *Team) snapshot() TeamSnapshot {
	return TeamSnapshot{
		Name:    t.Name,
		Score:   t.Score,
		Players: t.MemberIDs(),
	}
}

// Snapshot copies the current world state. Players are listed in ascending id order.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick: g.Tick,
		Teams: map[TeamName]TeamSnapshot{
			TeamRed:  g.Red.snapshot(),
			TeamBlue: g.Blue.snapshot(),
		},
		Ball: BallSnapshot{
			X:      g.Ball.X,
			Y:      g.Ball.Y,
			DX:     g.Ball.DX,
			DY:     g.Ball.DY,
			Radius: g.Ball.Radius,
		},
		Players: make([]PlayerSnapshot, 0, len(g.Players)),
	}

	for _, p := range g.sortedPlayers() {
		s.Players = append(s.Players, PlayerSnapshot{
			ID:     p.ID,
			Name:   p.Name,
			X:      p.X,
			Y:      p.Y,
			DX:     p.DX,
			DY:     p.DY,
			Radius: p.Radius,
			Team:   p.Team,
		})
	}
	return s
}
