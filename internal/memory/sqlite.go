package memory

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/nextlevelbuilder/miniagent/internal/tokens"
)

// SQLiteStore is the sqlite-backed history store. Entries are
// append-only; the seq column gives insertion order.
type SQLiteStore struct {
	db      *sql.DB
	counter tokens.Counter
	runID   string
	mu      sync.Mutex
}

// NewSQLiteStore opens (or creates) the history database at the given
// path. Each process gets a fresh run ID so Remember only sees the
// current run's entries.
func NewSQLiteStore(dbPath string, counter tokens.Counter) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		counter: counter,
		runID:   uuid.NewString(),
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	slog.Info("history store opened", "path", dbPath, "run", s.runID)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS history (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL,
		run_id TEXT NOT NULL,
		action TEXT NOT NULL,
		observation TEXT NOT NULL,
		created_at INTEGER NOT NULL DEFAULT (strftime('%s','now'))
	)`)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_history_run ON history(run_id, seq)`)
	return err
}

// Append stores one action/observation pair. Entries are never
// updated or deleted.
func (s *SQLiteStore) Append(action, observation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO history (id, run_id, action, observation) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), s.runID, action, observation,
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// Remember walks entries newest-first, accumulating rendered token
// counts until the budget is spent, then returns the kept suffix in
// oldest-first order.
func (s *SQLiteStore) Remember(limit, maxTokens int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT action, observation FROM history WHERE run_id = ? ORDER BY seq DESC LIMIT ?`,
		s.runID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var kept []string
	used := 0
	for rows.Next() {
		var action, observation string
		if err := rows.Scan(&action, &observation); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		rendered := RenderRecord(action, observation)
		cost := s.counter.Count(rendered)
		if used+cost > maxTokens {
			break
		}
		kept = append(kept, rendered)
		used += cost
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	// Reverse to oldest-first.
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
