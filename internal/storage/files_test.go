package storage

import (
	"testing"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return fs
}

func TestFileStore_SaveLoad(t *testing.T) {
	fs := newTestFileStore(t)

	if _, ok, err := fs.LoadNamed(CollectionBooks); err != nil || ok {
		t.Fatalf("LoadNamed on empty store: ok=%v err=%v, want absent", ok, err)
	}

	payload := []byte(`[{"id":"b1","title":"Calculus Made Easy"}]`)
	if err := fs.SaveNamed(CollectionBooks, payload); err != nil {
		t.Fatalf("SaveNamed: %v", err)
	}

	got, ok, err := fs.LoadNamed(CollectionBooks)
	if err != nil || !ok {
		t.Fatalf("LoadNamed: ok=%v err=%v", ok, err)
	}
	if string(got) != string(payload) {
		t.Fatalf("payload=%q, want %q", got, payload)
	}
}

func TestFileStore_ListNames(t *testing.T) {
	fs := newTestFileStore(t)

	if names, err := fs.ListNames(); err != nil || len(names) != 0 {
		t.Fatalf("ListNames on empty store: %v %v", names, err)
	}

	for _, name := range []string{CollectionEvents, CollectionBooks} {
		if err := fs.SaveNamed(name, []byte(`[]`)); err != nil {
			t.Fatalf("SaveNamed %s: %v", name, err)
		}
	}

	names, err := fs.ListNames()
	if err != nil {
		t.Fatalf("ListNames: %v", err)
	}
	if len(names) != 2 || names[0] != CollectionBooks || names[1] != CollectionEvents {
		t.Fatalf("ListNames=%v, want [%s %s]", names, CollectionBooks, CollectionEvents)
	}
}

func TestMigrateFromFiles(t *testing.T) {
	fs := newTestFileStore(t)
	store := newTestStore(t)

	if err := fs.SaveNamed(CollectionEvents, []byte(`[{"id":"e1"}]`)); err != nil {
		t.Fatalf("SaveNamed: %v", err)
	}
	if err := fs.SaveNamed(CollectionHighScores, []byte(`{"arithmetic":40}`)); err != nil {
		t.Fatalf("SaveNamed: %v", err)
	}
	// SQLite 中已有的集合不应被覆盖 / Existing SQLite collections win
	if err := store.SaveNamed(CollectionHighScores, []byte(`{"arithmetic":80}`)); err != nil {
		t.Fatalf("SaveNamed sqlite: %v", err)
	}

	migrated, err := MigrateFromFiles(fs, store)
	if err != nil {
		t.Fatalf("MigrateFromFiles: %v", err)
	}
	if migrated != 1 {
		t.Fatalf("migrated=%d, want 1", migrated)
	}

	got, _, _ := store.LoadNamed(CollectionEvents)
	if string(got) != `[{"id":"e1"}]` {
		t.Fatalf("events payload=%q after migrate", got)
	}
	kept, _, _ := store.LoadNamed(CollectionHighScores)
	if string(kept) != `{"arithmetic":80}` {
		t.Fatalf("high scores payload=%q, existing sqlite value should win", kept)
	}

	// 再跑一次应当幂等 / Running again is idempotent
	again, err := MigrateFromFiles(fs, store)
	if err != nil || again != 0 {
		t.Fatalf("second MigrateFromFiles: migrated=%d err=%v, want 0", again, err)
	}
}
