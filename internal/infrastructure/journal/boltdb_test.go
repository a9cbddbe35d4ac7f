package journal

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"), "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_AppendAndRecent(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"emp-1", "emp-2", "emp-3"} {
		err := store.Append(Entry{
			Action:     ActionEmployeeCreated,
			EmployeeID: id,
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, id := range []string{"emp-3", "emp-2", "emp-1"} {
		if entries[i].EmployeeID != id {
			t.Fatalf("position %d: got %s, want %s (newest first)", i, entries[i].EmployeeID, id)
		}
	}
	if entries[0].ID == "" {
		t.Fatal("append should assign an entry id")
	}
}

func TestStore_RecentHonorsLimit(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := store.Append(Entry{
			Action:    ActionEmployeeDeleted,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := store.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestStore_SizeAndCleanup(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	cutoff := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	old := Entry{Action: ActionEmployeeCreated, EmployeeID: "emp-old", Timestamp: cutoff.Add(-time.Hour)}
	fresh := Entry{Action: ActionEmployeeCreated, EmployeeID: "emp-new", Timestamp: cutoff.Add(time.Hour)}
	if err := store.Append(old); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(fresh); err != nil {
		t.Fatalf("append: %v", err)
	}

	size, err := store.Size()
	if err != nil || size != 2 {
		t.Fatalf("size = %d (%v), want 2", size, err)
	}

	if err := store.Cleanup(cutoff); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 || entries[0].EmployeeID != "emp-new" {
		t.Fatalf("cleanup should keep only fresh entries, got %+v", entries)
	}
}

func TestStore_ClosedStore(t *testing.T) {
	t.Parallel()

	var store *Store
	if err := store.Append(Entry{}); err == nil {
		t.Fatal("nil store must refuse appends")
	}
	if _, err := store.Recent(1); err == nil {
		t.Fatal("nil store must refuse reads")
	}
}
