// Package vault provides the gated quest: collect the key, unlock the
// padlock, then reach the flag. The prerequisites are causally ordered,
// so the rule chain names the key before it ever mentions the padlock.
package vault

import (
	"github.com/vovakirdan/tui-quest/internal/core"
	"github.com/vovakirdan/tui-quest/internal/eval"
	"github.com/vovakirdan/tui-quest/internal/registry"
)

// Guidance messages for the vault prerequisites.
const (
	HintKey     = "Pick up the key first."
	HintPadlock = "Unlock the padlock before reaching the flag."
)

var layout = []string{
	"############",
	"#H   #   K #",
	"# ## # ### #",
	"#  # #     #",
	"## # ##### #",
	"#          #",
	"# ####P#####",
	"#    #    F#",
	"############",
}

func init() {
	registry.Register(Quest())
}

// Quest returns the vault quest definition.
func Quest() registry.Quest {
	return registry.Quest{
		ID:     "vault",
		Title:  "The Vault",
		Layout: layout,
		Evaluator: eval.Chain{
			Rules: []eval.Rule{
				eval.GoalRule(core.GoalKeyCollected, HintKey),
				eval.GoalRule(core.GoalLockUnlocked, HintPadlock),
			},
		},
	}
}
