package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-quest/internal/registry"
)

// Loader handles loading level files from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans the root for level files and parses them.
// Invalid files are skipped. Returns quests sorted by ID for
// deterministic ordering.
func (l *Loader) LoadAll() ([]registry.Quest, error) {
	var quests []registry.Quest

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		q, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		quests = append(quests, q)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(quests, func(i, j int) bool {
		return quests[i].ID < quests[j].ID
	})

	return quests, nil
}

// LoadFile parses a single level file.
func (l *Loader) LoadFile(path string) (registry.Quest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return registry.Quest{}, fmt.Errorf("reading %s: %w", path, err)
	}

	q, err := ParseYAML(data)
	if err != nil {
		return registry.Quest{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return q, nil
}

// RegisterAll loads every level file under root and registers the
// quests that are not already known. Returns the number registered.
func RegisterAll(root string) (int, error) {
	quests, err := NewLoader(root).LoadAll()
	if err != nil {
		return 0, err
	}

	n := 0
	for _, q := range quests {
		if registry.Exists(q.ID) {
			continue
		}
		registry.Register(q)
		n++
	}
	return n, nil
}
