package planner

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"mathdesk/internal/collection"
	"mathdesk/internal/storage"
)

func newTestService(t *testing.T) (*Service, storage.Store) {
	t.Helper()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewService(store), store
}

func testFields(title string, day time.Time) Fields {
	return Fields{
		Title:     title,
		Date:      day,
		StartTime: "09:00",
		EndTime:   "10:00",
		Category:  CategoryClass,
		Recurring: RecurNone,
		Reminder:  true,
	}
}

func TestService_CreateAndListSameDay(t *testing.T) {
	svc, _ := newTestService(t)
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)

	ev, err := svc.Create(testFields("Algebra lecture", day))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ev.ID == "" {
		t.Fatalf("Create should assign an identifier")
	}

	// 另一天的事件不应出现在当天列表 / Events on other days are excluded
	if _, err := svc.Create(testFields("Staff meeting", day.AddDate(0, 0, 1))); err != nil {
		t.Fatalf("Create second: %v", err)
	}

	got := svc.EventsOn(day)
	if len(got) != 1 || got[0].ID != ev.ID {
		t.Fatalf("EventsOn=%v, want exactly the created event", got)
	}
}

func TestService_CreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)

	if _, err := svc.Create(testFields("", day)); !collection.IsValidation(err) {
		t.Fatalf("Create without title: err=%v, want ValidationError", err)
	}
	if _, err := svc.Create(testFields("No date", time.Time{})); !collection.IsValidation(err) {
		t.Fatalf("Create without date: err=%v, want ValidationError", err)
	}
	if len(svc.Events()) != 0 {
		t.Fatalf("failed validation must not mutate state")
	}
}

func TestService_UpdatePreservesID(t *testing.T) {
	svc, _ := newTestService(t)
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)

	ev, err := svc.Create(testFields("Before", day))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	f := testFields("After", day.AddDate(0, 0, 2))
	f.StartTime, f.EndTime = "14:00", "15:30"
	f.Category = CategoryMeeting
	updated, err := svc.Update(ev.ID, f)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != ev.ID {
		t.Fatalf("ID=%q after update, want %q", updated.ID, ev.ID)
	}
	if updated.Title != "After" || updated.StartTime != "14:00" {
		t.Fatalf("Update did not replace fields: %+v", updated)
	}

	if _, err := svc.Update("missing", f); !errors.Is(err, collection.ErrNotFound) {
		t.Fatalf("Update missing id: err=%v, want ErrNotFound", err)
	}
}

func TestService_DeleteWritesBackEmpty(t *testing.T) {
	svc, store := newTestService(t)
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)

	ev, err := svc.Create(testFields("Only one", day))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ev.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// 删除最后一条后存储必须是空集合而不是旧快照
	// After deleting the last record storage must hold the empty
	// collection, not the pre-deletion snapshot
	payload, ok, err := store.LoadNamed(storage.CollectionEvents)
	if err != nil || !ok {
		t.Fatalf("LoadNamed: ok=%v err=%v", ok, err)
	}
	if string(payload) != "[]" {
		t.Fatalf("stored payload=%q after deleting last event, want []", payload)
	}

	if err := svc.Delete(ev.ID); !errors.Is(err, collection.ErrNotFound) {
		t.Fatalf("Delete twice: err=%v, want ErrNotFound", err)
	}
}

func TestService_ReloadRevivesDates(t *testing.T) {
	svc, store := newTestService(t)
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)

	if _, err := svc.Create(testFields("Persisted", day)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	reloaded := NewService(store)
	events := reloaded.Events()
	if len(events) != 1 {
		t.Fatalf("reloaded %d events, want 1", len(events))
	}
	// 日期按时间点相等比较，而非字符串相同 / Dates compare by instant
	if !events[0].Date.Equal(day) {
		t.Fatalf("Date=%v after reload, want %v", events[0].Date, day)
	}
}
