// Package storage provides SQLite-based persistence for quest attempts.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for attempt persistence.
type Store struct {
	db *sql.DB
}

// AttemptEntry represents one recorded attempt at a quest.
type AttemptEntry struct {
	ID        int64
	QuestID   string
	Solved    bool
	Steps     int // Accepted moves
	Commands  int // Total commands issued
	Blocked   int // Rejected move attempts
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quest_id TEXT NOT NULL,
			solved INTEGER NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL DEFAULT 0,
			commands INTEGER NOT NULL DEFAULT 0,
			blocked INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_quest_id ON attempts(quest_id);
		CREATE INDEX IF NOT EXISTS idx_attempts_best ON attempts(quest_id, solved, steps ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveAttempt records a finished (or abandoned) attempt.
// Returns the ID of the inserted record.
func (s *Store) SaveAttempt(e AttemptEntry) (int64, error) {
	solved := 0
	if e.Solved {
		solved = 1
	}

	result, err := s.db.Exec(
		"INSERT INTO attempts (quest_id, solved, steps, commands, blocked) VALUES (?, ?, ?, ?, ?)",
		e.QuestID, solved, e.Steps, e.Commands, e.Blocked,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestAttempts retrieves the top N solved attempts for the given quest,
// ordered by fewest steps.
func (s *Store) BestAttempts(questID string, limit int) ([]AttemptEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, quest_id, solved, steps, commands, blocked, created_at
		 FROM attempts
		 WHERE quest_id = ? AND solved = 1
		 ORDER BY steps ASC, created_at ASC
		 LIMIT ?`,
		questID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// AllAttempts retrieves every attempt for the given quest, newest first.
func (s *Store) AllAttempts(questID string) ([]AttemptEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, quest_id, solved, steps, commands, blocked, created_at
		 FROM attempts
		 WHERE quest_id = ?
		 ORDER BY created_at DESC, id DESC`,
		questID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// BestSteps returns the lowest step count among solved attempts for the
// given quest. Returns 0 if the quest has never been solved.
func (s *Store) BestSteps(questID string) (int, error) {
	var steps sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(steps) FROM attempts WHERE quest_id = ? AND solved = 1",
		questID,
	).Scan(&steps)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best steps: %w", err)
	}
	if !steps.Valid {
		return 0, nil
	}
	return int(steps.Int64), nil
}

// SolveCount returns how many times the given quest has been solved.
func (s *Store) SolveCount(questID string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM attempts WHERE quest_id = ? AND solved = 1",
		questID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count solves: %w", err)
	}
	return n, nil
}

// ClearAttempts deletes all attempts for the given quest.
func (s *Store) ClearAttempts(questID string) error {
	_, err := s.db.Exec("DELETE FROM attempts WHERE quest_id = ?", questID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear attempts: %w", err)
	}
	return nil
}

// scanAttempts reads attempt rows into entries.
func scanAttempts(rows *sql.Rows) ([]AttemptEntry, error) {
	var entries []AttemptEntry
	for rows.Next() {
		var e AttemptEntry
		var solved int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.QuestID, &solved, &e.Steps, &e.Commands, &e.Blocked, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Solved = solved != 0

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
