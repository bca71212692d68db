package games

import (
	"path/filepath"
	"testing"

	"mathdesk/internal/storage"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestScores_DefaultsToZero(t *testing.T) {
	scores := NewScores(newTestStore(t))
	for _, gt := range GameTypes() {
		if scores.Best(gt) != 0 {
			t.Fatalf("Best(%s)=%d, want 0", gt, scores.Best(gt))
		}
	}
}

func TestScores_RecordOnlyStrictlyGreater(t *testing.T) {
	store := newTestStore(t)
	scores := NewScores(store)

	if !scores.Record(GameArithmetic, 50) {
		t.Fatalf("50 should replace 0")
	}
	if !scores.Record(GameArithmetic, 80) {
		t.Fatalf("80 should replace 50")
	}
	if scores.Record(GameArithmetic, 30) {
		t.Fatalf("30 should not replace 80")
	}
	if scores.Record(GameArithmetic, 80) {
		t.Fatalf("equal score should not replace the record")
	}
	if scores.Best(GameArithmetic) != 80 {
		t.Fatalf("Best=%d, want 80", scores.Best(GameArithmetic))
	}

	// 其他游戏互不影响 / Other games are unaffected
	if scores.Best(GameFractions) != 0 {
		t.Fatalf("fractions record changed unexpectedly")
	}
}

func TestScores_PersistAcrossReload(t *testing.T) {
	store := newTestStore(t)

	scores := NewScores(store)
	scores.Record(GameDecimals, 70)
	scores.Record(GameMultiplication, 100)

	reloaded := NewScores(store)
	if reloaded.Best(GameDecimals) != 70 {
		t.Fatalf("decimals=%d, want 70", reloaded.Best(GameDecimals))
	}
	if reloaded.Best(GameMultiplication) != 100 {
		t.Fatalf("multiplication=%d, want 100", reloaded.Best(GameMultiplication))
	}
	if reloaded.Best(GameArithmetic) != 0 {
		t.Fatalf("arithmetic=%d, want 0", reloaded.Best(GameArithmetic))
	}
}
