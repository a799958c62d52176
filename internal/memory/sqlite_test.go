package memory

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/nextlevelbuilder/miniagent/internal/tokens"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"), tokens.EstimateCounter{})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_AppendAndRemember(t *testing.T) {
	store := newTestStore(t)

	if err := store.Append("a1", "o1"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append("a2", "o2"); err != nil {
		t.Fatalf("append: %v", err)
	}

	entries, err := store.Remember(32, 10_000)
	if err != nil {
		t.Fatalf("remember: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Oldest first.
	if !strings.Contains(entries[0], "a1") || !strings.Contains(entries[1], "a2") {
		t.Errorf("wrong order: %v", entries)
	}
}

func TestStore_RememberEmpty(t *testing.T) {
	store := newTestStore(t)
	entries, err := store.Remember(32, 1000)
	if err != nil {
		t.Fatalf("remember: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}

func TestStore_RememberHonorsTokenBudget(t *testing.T) {
	store := newTestStore(t)

	// Each rendered entry is ~100 chars → ~25 estimated tokens.
	big := strings.Repeat("x", 80)
	for i := 0; i < 10; i++ {
		if err := store.Append(big, "ok"); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	budget := 60
	entries, err := store.Remember(32, budget)
	if err != nil {
		t.Fatalf("remember: %v", err)
	}
	if len(entries) == 0 || len(entries) >= 10 {
		t.Fatalf("expected a strict suffix, got %d entries", len(entries))
	}

	counter := tokens.EstimateCounter{}
	used := 0
	for _, e := range entries {
		used += counter.Count(e)
	}
	if used > budget {
		t.Errorf("cumulative tokens %d exceed budget %d", used, budget)
	}
}

func TestStore_RememberHonorsLimit(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 5; i++ {
		if err := store.Append("a", "o"); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	entries, err := store.Remember(3, 10_000)
	if err != nil {
		t.Fatalf("remember: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(entries))
	}
}

func TestRenderRecord(t *testing.T) {
	got := RenderRecord("act", "obs")
	if got != "ACTION\nact\nRESULT:\nobs\n" {
		t.Errorf("RenderRecord = %q", got)
	}
}
