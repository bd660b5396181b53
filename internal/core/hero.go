package core

// Hero is the player-controlled actor. The runtime creates one per
// attempt and mutates it on every accepted move; evaluators only read
// it. Its position always lies within the level bounds — the runtime
// rejects moves that would leave the grid.
type Hero struct {
	X, Y     int
	Steps    int        // Accepted moves so far
	LastMove *Direction // Direction of the most recent move, nil before the first
}

// NewHero creates a hero at the given start cell.
func NewHero(start Point) *Hero {
	return &Hero{X: start.X, Y: start.Y}
}

// Position returns the hero's current grid cell.
func (h *Hero) Position() Point {
	return Point{X: h.X, Y: h.Y}
}

// AtFlag reports whether the hero occupies the level's flag cell.
func (h *Hero) AtFlag(l *Level) bool {
	return h.X == l.Flag.X && h.Y == l.Flag.Y
}

// MoveTo places the hero on the given cell and records the move.
func (h *Hero) MoveTo(p Point, d Direction) {
	h.X = p.X
	h.Y = p.Y
	h.Steps++
	dir := d
	h.LastMove = &dir
}
