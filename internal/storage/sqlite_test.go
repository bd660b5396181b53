package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entries := []AttemptEntry{
		{QuestID: "meadow", Solved: true, Steps: 12, Commands: 14, Blocked: 2},
		{QuestID: "meadow", Solved: true, Steps: 8, Commands: 8},
		{QuestID: "meadow", Solved: false, Steps: 3, Commands: 5, Blocked: 2},
		{QuestID: "vault", Solved: true, Steps: 30, Commands: 33, Blocked: 1},
	}
	for _, e := range entries {
		if _, err := store.SaveAttempt(e); err != nil {
			t.Fatalf("SaveAttempt() failed: %v", err)
		}
	}

	best, err := store.BestAttempts("meadow", 10)
	if err != nil {
		t.Fatalf("BestAttempts() failed: %v", err)
	}

	// Only solved attempts, fewest steps first
	if len(best) != 2 {
		t.Fatalf("Expected 2 solved meadow attempts, got %d", len(best))
	}
	if best[0].Steps != 8 {
		t.Errorf("Best attempt steps = %d, want 8", best[0].Steps)
	}
	if best[1].Steps != 12 {
		t.Errorf("Second best steps = %d, want 12", best[1].Steps)
	}

	vaultBest, err := store.BestAttempts("vault", 10)
	if err != nil {
		t.Fatalf("BestAttempts() failed: %v", err)
	}
	if len(vaultBest) != 1 || vaultBest[0].Blocked != 1 {
		t.Errorf("Vault attempts = %v", vaultBest)
	}
}

func TestStoreBestStepsAndSolveCount(t *testing.T) {
	store := openTestStore(t)

	if steps, err := store.BestSteps("meadow"); err != nil || steps != 0 {
		t.Errorf("BestSteps on empty store = %d, %v; want 0, nil", steps, err)
	}

	store.SaveAttempt(AttemptEntry{QuestID: "meadow", Solved: true, Steps: 20})
	store.SaveAttempt(AttemptEntry{QuestID: "meadow", Solved: true, Steps: 15})
	store.SaveAttempt(AttemptEntry{QuestID: "meadow", Solved: false, Steps: 2})

	steps, err := store.BestSteps("meadow")
	if err != nil {
		t.Fatalf("BestSteps() failed: %v", err)
	}
	if steps != 15 {
		t.Errorf("BestSteps = %d, want 15 (unsolved attempts don't count)", steps)
	}

	count, err := store.SolveCount("meadow")
	if err != nil {
		t.Fatalf("SolveCount() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("SolveCount = %d, want 2", count)
	}
}

func TestStoreBestAttemptsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveAttempt(AttemptEntry{QuestID: "meadow", Solved: true, Steps: 10 + i})
	}

	best, err := store.BestAttempts("meadow", 3)
	if err != nil {
		t.Fatalf("BestAttempts() failed: %v", err)
	}
	if len(best) != 3 {
		t.Errorf("Expected 3 attempts with limit 3, got %d", len(best))
	}
}

func TestStoreAllAttemptsIncludesUnsolved(t *testing.T) {
	store := openTestStore(t)

	store.SaveAttempt(AttemptEntry{QuestID: "vault", Solved: false, Steps: 4})
	store.SaveAttempt(AttemptEntry{QuestID: "vault", Solved: true, Steps: 25})

	all, err := store.AllAttempts("vault")
	if err != nil {
		t.Fatalf("AllAttempts() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 attempts, got %d", len(all))
	}
}

func TestStoreClearAttempts(t *testing.T) {
	store := openTestStore(t)

	store.SaveAttempt(AttemptEntry{QuestID: "meadow", Solved: true, Steps: 9})
	store.SaveAttempt(AttemptEntry{QuestID: "vault", Solved: true, Steps: 9})

	if err := store.ClearAttempts("meadow"); err != nil {
		t.Fatalf("ClearAttempts() failed: %v", err)
	}

	meadow, _ := store.AllAttempts("meadow")
	if len(meadow) != 0 {
		t.Error("Meadow attempts should be cleared")
	}
	vault, _ := store.AllAttempts("vault")
	if len(vault) != 1 {
		t.Error("Other quests' attempts should survive")
	}
}
