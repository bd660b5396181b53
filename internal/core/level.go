// Package core provides the entity model for the quest platform: the
// hero, the level grid, the command history and the event log that an
// evaluation function inspects. It contains no external dependencies
// (especially no Bubble Tea) to keep quest logic pure and testable.
package core

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Step returns the point one cell away in the given direction.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Level is the static description of the playfield for one attempt:
// grid extents, the flag cell and the set of wall cells. It is built
// once when the attempt starts and never mutated afterwards.
type Level struct {
	Width  int
	Height int
	Flag   Point

	walls map[Point]bool
}

// NewLevel creates a level from its dimensions, flag position and wall
// cells. Duplicate walls collapse; a wall on the flag cell is dropped
// so the flag is always reachable.
func NewLevel(width, height int, flag Point, walls []Point) *Level {
	l := &Level{
		Width:  width,
		Height: height,
		Flag:   flag,
		walls:  make(map[Point]bool, len(walls)),
	}
	for _, w := range walls {
		if w == flag {
			continue
		}
		l.walls[w] = true
	}
	return l
}

// IsWall reports whether the cell at (x, y) is blocked.
func (l *Level) IsWall(x, y int) bool {
	return l.walls[Point{X: x, Y: y}]
}

// InBounds reports whether (x, y) lies within the grid.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// Walls returns a copy of the wall set. Useful for rendering; the
// level's own set stays private so it cannot be mutated mid-attempt.
func (l *Level) Walls() []Point {
	out := make([]Point, 0, len(l.walls))
	for w := range l.walls {
		out = append(out, w)
	}
	return out
}

// WallCount returns the number of wall cells.
func (l *Level) WallCount() int {
	return len(l.walls)
}
