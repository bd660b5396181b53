package core

// Context is the aggregate view handed to a quest's evaluation
// function: references to the current hero, level, command history and
// event log of one attempt. It bundles the four read surfaces so the
// evaluation contract has exactly one parameter no matter how many
// sub-goals a quest defines.
//
// The runtime owns all four entities. Evaluators must treat them as
// read-only; construction performs no validation — callers supply a
// consistent tuple belonging to the same attempt.
type Context struct {
	Hero     *Hero
	Level    *Level
	Commands *CommandLog
	Events   *Events
}

// NewContext builds a context for a single evaluation call.
func NewContext(h *Hero, l *Level, cl *CommandLog, ev *Events) *Context {
	return &Context{Hero: h, Level: l, Commands: cl, Events: ev}
}
