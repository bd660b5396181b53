// Package meadow provides the introductory quest: cross an open field
// and reach the flag. No prerequisites — the plain rule chain applies.
package meadow

import (
	"github.com/vovakirdan/tui-quest/internal/eval"
	"github.com/vovakirdan/tui-quest/internal/registry"
)

var layout = []string{
	"############",
	"#H         #",
	"#  ###     #",
	"#    #  ## #",
	"# ## #     #",
	"#       # F#",
	"############",
}

func init() {
	registry.Register(Quest())
}

// Quest returns the meadow quest definition.
func Quest() registry.Quest {
	return registry.Quest{
		ID:        "meadow",
		Title:     "The Meadow",
		Layout:    layout,
		Evaluator: eval.Chain{},
	}
}
