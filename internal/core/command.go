package core

import "fmt"

// Direction represents a hero movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the grid offset for one step in this direction.
// The origin is the top-left corner: y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// CommandKind discriminates the command variants.
type CommandKind int

const (
	CmdMove CommandKind = iota
	CmdPick
	CmdOpen
)

// Command is a single player instruction: a move in one of four
// directions, or an interaction with an object on the hero's cell.
type Command struct {
	Kind CommandKind
	Dir  Direction // Only meaningful for CmdMove
}

// Move creates a movement command.
func Move(d Direction) Command {
	return Command{Kind: CmdMove, Dir: d}
}

// Pick creates a pick-up-object command.
func Pick() Command {
	return Command{Kind: CmdPick}
}

// Open creates an open-object command.
func Open() Command {
	return Command{Kind: CmdOpen}
}

// Wire returns the textual encoding used in command scripts and logs.
func (c Command) Wire() string {
	switch c.Kind {
	case CmdMove:
		return "move_" + c.Dir.String()
	case CmdPick:
		return "pick"
	case CmdOpen:
		return "open"
	default:
		return "unknown"
	}
}

// ParseCommand decodes a wire-format command string.
func ParseCommand(s string) (Command, error) {
	switch s {
	case "move_up":
		return Move(DirUp), nil
	case "move_down":
		return Move(DirDown), nil
	case "move_left":
		return Move(DirLeft), nil
	case "move_right":
		return Move(DirRight), nil
	case "pick":
		return Pick(), nil
	case "open":
		return Open(), nil
	default:
		return Command{}, fmt.Errorf("core: unknown command %q", s)
	}
}
