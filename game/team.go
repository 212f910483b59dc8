package game

import "sort"

// Team holds a team's score and the ids of its members
type Team struct {
	Name    TeamName
	Score   int
	Players map[string]struct{}
}

// NewTeam creates an empty team
func NewTeam(name TeamName) *Team {
	return &Team{
		Name:    name,
		Players: make(map[string]struct{}),
	}
}

// Size returns the number of members
func (t *Team) Size() int {
	return len(t.Players)
}

// Has reports whether id is a member
func (t *Team) Has(id string) bool {
	_, ok := t.Players[id]
	return ok
}

// MemberIDs returns the member ids in ascending order
func (t *Team) MemberIDs() []string {
	ids := make([]string, 0, len(t.Players))
	for id := range t.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Opponent returns the other team's name
func (n TeamName) Opponent() TeamName {
	switch n {
	case TeamRed:
		return TeamBlue
	case TeamBlue:
		return TeamRed
	default:
		return TeamNone
	}
}

// HalfBounds returns the x range of the half a team starts in.
// Red starts on the left and attacks the right goal; blue is mirrored.
func (n TeamName) HalfBounds() (startX, endX float64) {
	if n == TeamRed {
		return 0, FieldWidth / 2
	}
	return FieldWidth / 2, FieldWidth
}
