package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-quest/internal/eval"
	"github.com/vovakirdan/tui-quest/internal/registry"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID     string     `yaml:"id"`
	Title  string     `yaml:"title"`
	Layout []string   `yaml:"layout"`
	Goals  []YAMLGoal `yaml:"goals,omitempty"`

	// Optional hint overrides for the common chain tail.
	BlockedHint  string `yaml:"blocked_hint,omitempty"`
	FallbackHint string `yaml:"fallback_hint,omitempty"`
}

// YAMLGoal declares one ordered prerequisite: the named sub-goal the
// runtime must have recorded, and the hint shown while it is unmet.
type YAMLGoal struct {
	ID   string `yaml:"id"`
	Hint string `yaml:"hint"`
}

// ParseYAML parses a YAML level file into a registrable quest. The
// quest's evaluator is a rule chain built from the declared goals, so
// file-based levels need no Go code.
func ParseYAML(data []byte) (registry.Quest, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return registry.Quest{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return registry.Quest{}, fmt.Errorf("level file has no id")
	}

	// Validate the layout up front so broken files are rejected at
	// load time, not at play time.
	if _, err := ParseLayout(yl.Layout); err != nil {
		return registry.Quest{}, fmt.Errorf("level %q: %w", yl.ID, err)
	}

	chain := eval.Chain{
		BlockedHint:  yl.BlockedHint,
		FallbackHint: yl.FallbackHint,
	}
	for _, g := range yl.Goals {
		if g.ID == "" || g.Hint == "" {
			return registry.Quest{}, fmt.Errorf("level %q: goal needs both id and hint", yl.ID)
		}
		chain.Rules = append(chain.Rules, eval.GoalRule(g.ID, g.Hint))
	}

	title := yl.Title
	if title == "" {
		title = yl.ID
	}

	return registry.Quest{
		ID:        yl.ID,
		Title:     title,
		Layout:    yl.Layout,
		Evaluator: chain,
	}, nil
}
