package levels

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLevel(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoadAllSortedAndSkipsInvalid(t *testing.T) {
	dir := t.TempDir()

	writeLevel(t, dir, "b.yaml", "id: beta\nlayout:\n  - \"H F\"\n")
	writeLevel(t, dir, "a.yml", "id: alpha\nlayout:\n  - \"H F\"\n")
	writeLevel(t, dir, "broken.yaml", "id: broken\nlayout:\n  - \"no markers\"\n")
	writeLevel(t, dir, "notes.txt", "not a level")

	quests, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	if len(quests) != 2 {
		t.Fatalf("Expected 2 quests, got %d", len(quests))
	}
	if quests[0].ID != "alpha" || quests[1].ID != "beta" {
		t.Errorf("Quests not sorted by ID: %s, %s", quests[0].ID, quests[1].ID)
	}
}

func TestLoadAllRecursesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "pack1")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeLevel(t, sub, "deep.yaml", "id: deep\nlayout:\n  - \"H F\"\n")

	quests, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(quests) != 1 || quests[0].ID != "deep" {
		t.Errorf("Expected nested level to load, got %v", quests)
	}
}

func TestLoadFileError(t *testing.T) {
	if _, err := NewLoader("").LoadFile("/nonexistent/level.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}
