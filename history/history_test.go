package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLast(t *testing.T) {
	// Setup
	store := NewStore(t.TempDir())

	// Exercise
	store.Save("tokyo")
	query, ok := store.Last()

	// Verify
	if !ok {
		t.Fatal("expected a saved query")
	}
	if query != "tokyo" {
		t.Errorf("unexpected query: expected=%s, actual=%s", "tokyo", query)
	}
}

func TestLastWithoutHistory(t *testing.T) {
	store := NewStore(t.TempDir())

	if query, ok := store.Last(); ok {
		t.Errorf("expected no history, got %q", query)
	}
}

func TestLastWithCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "last_search.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write file: %s", err)
	}
	store := NewStore(dir)

	if query, ok := store.Last(); ok {
		t.Errorf("expected no history, got %q", query)
	}
}

func TestSaveOverwritesPreviousQuery(t *testing.T) {
	store := NewStore(t.TempDir())

	store.Save("tokyo")
	store.Save("osaka")

	query, ok := store.Last()
	if !ok || query != "osaka" {
		t.Errorf("unexpected query: expected=%s, actual=%s (ok=%v)", "osaka", query, ok)
	}
}

func TestSaveIgnoresEmptyQuery(t *testing.T) {
	store := NewStore(t.TempDir())

	store.Save("")

	if query, ok := store.Last(); ok {
		t.Errorf("expected no history, got %q", query)
	}
}

func TestDisabledByEnvironment(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Save("tokyo")
	t.Setenv("TENKI_NO_HISTORY", "1")

	// Neither saving nor reading touches the file while disabled.
	store.Save("osaka")
	if query, ok := store.Last(); ok {
		t.Errorf("expected history to be disabled, got %q", query)
	}
}

func TestClear(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Save("tokyo")

	store.Clear()

	if query, ok := store.Last(); ok {
		t.Errorf("expected cleared history, got %q", query)
	}
}
