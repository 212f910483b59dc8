package game

// CommandKind identifies a player intent
type CommandKind int

const (
	CommandJoin CommandKind = iota
	CommandMove
	CommandLeave
)

func (k CommandKind) String() string {
	switch k {
	case CommandJoin:
		return "join"
	case CommandMove:
		return "move"
	case CommandLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Command is a player intent decoded by the transport layer
type Command struct {
	Kind     CommandKind
	PlayerID string
	Name     string  // Join only
	DX       float64 // Move only
	DY       float64
}

// JoinCommand creates a join intent
func JoinCommand(id, name string) Command {
	return Command{Kind: CommandJoin, PlayerID: id, Name: name}
}

// MoveCommand creates a move intent
func MoveCommand(id string, dx, dy float64) Command {
	return Command{Kind: CommandMove, PlayerID: id, DX: dx, DY: dy}
}

// LeaveCommand creates a leave intent
func LeaveCommand(id string) Command {
	return Command{Kind: CommandLeave, PlayerID: id}
}

// Apply is the single entry point for player intents. Commands take effect
// immediately rather than waiting for the next tick, so several moves from
// one client may land between two ticks.
func (g *Game) Apply(cmd Command) {
	switch cmd.Kind {
	case CommandJoin:
		p := g.AddPlayer(cmd.PlayerID, cmd.Name)
		g.AssignTeam(p)
	case CommandMove:
		g.MovePlayer(cmd.PlayerID, cmd.DX, cmd.DY)
	case CommandLeave:
		g.RemoveFromTeam(cmd.PlayerID)
		g.RemovePlayer(cmd.PlayerID)
	}
}
