package core

// CommandLog is the ordered history of commands the player issued
// during the current attempt. It grows by append only; order is replay
// order.
type CommandLog struct {
	commands []Command
}

// NewCommandLog creates an empty command log.
func NewCommandLog() *CommandLog {
	return &CommandLog{}
}

// Append records one accepted command.
func (cl *CommandLog) Append(c Command) {
	cl.commands = append(cl.commands, c)
}

// Count returns the number of recorded commands.
func (cl *CommandLog) Count() int {
	return len(cl.commands)
}

// At returns the i-th command in issue order.
func (cl *CommandLog) At(i int) Command {
	return cl.commands[i]
}

// All returns a copy of the history in issue order.
func (cl *CommandLog) All() []Command {
	out := make([]Command, len(cl.commands))
	copy(out, cl.commands)
	return out
}

// Well-known sub-goal names the runtime records for layouts with the
// matching objects. Quests with their own objects define their own.
const (
	GoalKeyCollected = "key_collected"
	GoalLockUnlocked = "lock_unlocked"
)

// BlockedMove records a move attempt that was rejected because it
// targeted a wall or an out-of-bounds cell.
type BlockedMove struct {
	From Point
	Dir  Direction
}

// Events accumulates the outcomes the runtime produced while processing
// commands. BlockedMoves and Errors only grow — they are never edited
// retroactively, so the evaluator (and the player) sees a truthful
// audit trail. Level-specific sub-goals live in a named-goal map so new
// quests need no change here.
type Events struct {
	ReachedFlag  bool
	BlockedMoves []BlockedMove
	Errors       []string

	goals map[string]bool
}

// NewEvents creates a fresh event log for one attempt.
func NewEvents() *Events {
	return &Events{goals: make(map[string]bool)}
}

// RecordBlocked appends a rejected move attempt.
func (e *Events) RecordBlocked(from Point, d Direction) {
	e.BlockedMoves = append(e.BlockedMoves, BlockedMove{From: from, Dir: d})
}

// RecordError appends a runtime-reported error descriptor. The runtime
// owns the descriptor format; evaluators treat it as opaque data.
func (e *Events) RecordError(desc string) {
	e.Errors = append(e.Errors, desc)
}

// MarkGoal sets a named level-specific sub-goal as achieved.
// Goals latch: once marked they stay marked for the attempt.
func (e *Events) MarkGoal(name string) {
	if e.goals == nil {
		e.goals = make(map[string]bool)
	}
	e.goals[name] = true
}

// GoalDone reports whether a named sub-goal has been achieved.
func (e *Events) GoalDone(name string) bool {
	return e.goals[name]
}
