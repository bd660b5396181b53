// Package registry provides a global registry mapping quest IDs to
// their definitions. Built-in quests register themselves in init()
// functions; levels loaded from files register at startup. The
// platform discovers and runs quests without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-quest/internal/eval"
)

// Quest is a complete level definition: identity, playfield layout and
// the completion evaluator the runtime invokes after each state change.
type Quest struct {
	// ID is a unique identifier (e.g., "meadow", "vault").
	// Used for CLI commands and attempt storage.
	ID string

	// Title is a human-readable name for display.
	Title string

	// Layout is the text map of the playfield, one string per row:
	// '#' wall, 'F' flag, 'H' hero start, 'K' key, 'P' padlock.
	Layout []string

	// Evaluator judges whether the quest is complete. Stateless —
	// one instance serves every attempt.
	Evaluator eval.Evaluator
}

// Info contains display metadata about a registered quest.
type Info struct {
	ID    string
	Title string
}

var (
	quests = make(map[string]Quest)
	mu     sync.RWMutex
)

// Register adds a quest to the registry.
// Typically called from a quest package's init() function.
// Panics if a quest with the same ID is already registered.
func Register(q Quest) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := quests[q.ID]; exists {
		panic(fmt.Sprintf("registry: quest %q already registered", q.ID))
	}
	if q.Evaluator == nil {
		panic(fmt.Sprintf("registry: quest %q has no evaluator", q.ID))
	}

	quests[q.ID] = q
}

// List returns information about all registered quests, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(quests))
	for id, q := range quests {
		result = append(result, Info{ID: id, Title: q.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a quest by its ID.
// Returns an error if the quest ID is not registered.
func Get(id string) (Quest, error) {
	mu.RLock()
	defer mu.RUnlock()

	q, ok := quests[id]
	if !ok {
		return Quest{}, fmt.Errorf("registry: unknown quest %q", id)
	}
	return q, nil
}

// Exists checks if a quest with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := quests[id]
	return ok
}
