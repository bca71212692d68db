package storage

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_SaveLoad(t *testing.T) {
	store := newTestStore(t)

	if _, ok, err := store.LoadNamed(CollectionEvents); err != nil || ok {
		t.Fatalf("LoadNamed on empty store: ok=%v err=%v, want absent", ok, err)
	}

	payload := []byte(`[{"id":"1","title":"Algebra class"}]`)
	if err := store.SaveNamed(CollectionEvents, payload); err != nil {
		t.Fatalf("SaveNamed: %v", err)
	}

	got, ok, err := store.LoadNamed(CollectionEvents)
	if err != nil {
		t.Fatalf("LoadNamed: %v", err)
	}
	if !ok {
		t.Fatalf("LoadNamed: collection missing after save")
	}
	if string(got) != string(payload) {
		t.Fatalf("payload=%q, want %q", got, payload)
	}
}

func TestSQLiteStore_Overwrite(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveNamed(CollectionBooks, []byte(`["a"]`)); err != nil {
		t.Fatalf("SaveNamed: %v", err)
	}
	if err := store.SaveNamed(CollectionBooks, []byte(`["a","b"]`)); err != nil {
		t.Fatalf("SaveNamed overwrite: %v", err)
	}

	got, _, err := store.LoadNamed(CollectionBooks)
	if err != nil {
		t.Fatalf("LoadNamed: %v", err)
	}
	if string(got) != `["a","b"]` {
		t.Fatalf("payload=%q after overwrite, want %q", got, `["a","b"]`)
	}
}

func TestSQLiteStore_SaveEmptyPayload(t *testing.T) {
	store := newTestStore(t)

	// 删除最后一条记录后也要写回空集合 / Deleting the last record still
	// writes back the empty collection
	if err := store.SaveNamed(CollectionEvents, []byte(`[]`)); err != nil {
		t.Fatalf("SaveNamed empty: %v", err)
	}
	got, ok, err := store.LoadNamed(CollectionEvents)
	if err != nil || !ok {
		t.Fatalf("LoadNamed empty: ok=%v err=%v", ok, err)
	}
	if string(got) != `[]` {
		t.Fatalf("payload=%q, want []", got)
	}
}

func TestSQLiteStore_ListNames(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{CollectionHighScores, CollectionEvents} {
		if err := store.SaveNamed(name, []byte(`{}`)); err != nil {
			t.Fatalf("SaveNamed %s: %v", name, err)
		}
	}

	names, err := store.ListNames()
	if err != nil {
		t.Fatalf("ListNames: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("ListNames count=%d, want 2", len(names))
	}
	if names[0] != CollectionHighScores || names[1] != CollectionEvents {
		t.Fatalf("ListNames=%v, want sorted [%s %s]", names, CollectionHighScores, CollectionEvents)
	}
}
