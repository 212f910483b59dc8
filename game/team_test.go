package game

import (
	"reflect"
	"testing"
)

func TestTeamNameOpponent(t *testing.T) {
	tests := []struct {
		team     TeamName
		expected TeamName
	}{
		{TeamRed, TeamBlue},
		{TeamBlue, TeamRed},
		{TeamNone, TeamNone},
	}

	for _, tt := range tests {
		if got := tt.team.Opponent(); got != tt.expected {
			t.Errorf("%q.Opponent() = %q, expected %q", tt.team, got, tt.expected)
		}
	}
}

func TestTeamNameHalfBounds(t *testing.T) {
	if start, end := TeamRed.HalfBounds(); start != 0 || end != FieldWidth/2 {
		t.Errorf("Expected red half [0, %f], got [%f, %f]", FieldWidth/2, start, end)
	}
	if start, end := TeamBlue.HalfBounds(); start != FieldWidth/2 || end != FieldWidth {
		t.Errorf("Expected blue half [%f, %f], got [%f, %f]", FieldWidth/2, FieldWidth, start, end)
	}
}

func TestTeamMemberIDsSorted(t *testing.T) {
	team := NewTeam(TeamRed)
	for _, id := range []string{"c", "a", "b"} {
		team.Players[id] = struct{}{}
	}

	if got := team.MemberIDs(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Expected sorted ids, got %v", got)
	}
	if team.Size() != 3 {
		t.Errorf("Expected size 3, got %d", team.Size())
	}
	if team.Has("d") {
		t.Errorf("Expected d not to be a member")
	}
}
