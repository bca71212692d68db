package library

import (
	"errors"
	"path/filepath"
	"testing"

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

func TestService_CreateValidation(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Create(Fields{Author: "Euler"}); !collection.IsValidation(err) {
		t.Fatalf("Create without title: err=%v, want ValidationError", err)
	}
	if _, err := svc.Create(Fields{Title: "Elements"}); !collection.IsValidation(err) {
		t.Fatalf("Create without author: err=%v, want ValidationError", err)
	}
	if len(svc.Books()) != 0 {
		t.Fatalf("failed validation must not mutate state")
	}
}

func TestService_Filter(t *testing.T) {
	svc, _ := newTestService(t)

	mustCreate := func(f Fields) Book {
		t.Helper()
		b, err := svc.Create(f)
		if err != nil {
			t.Fatalf("Create %q: %v", f.Title, err)
		}
		return b
	}

	algebra := mustCreate(Fields{Title: "Linear Algebra Done Right", Author: "Axler", Category: "Algebra", Tags: "proofs, vector spaces"})
	calculus := mustCreate(Fields{Title: "Calculus", Author: "Spivak", Category: "Calculus", Tags: "analysis"})
	mustCreate(Fields{Title: "Euclid's Elements", Author: "Euclid", Category: "Geometry"})

	// 大小写不敏感的标题匹配 / Case-insensitive title match
	got := svc.Filter("ALGEBRA", CategoryAll)
	if len(got) != 1 || got[0].ID != algebra.ID {
		t.Fatalf("Filter by title=%v, want the algebra book", got)
	}

	// 标签匹配 / Tag match
	got = svc.Filter("vector", CategoryAll)
	if len(got) != 1 || got[0].ID != algebra.ID {
		t.Fatalf("Filter by tag=%v, want the algebra book", got)
	}

	// 作者匹配 + 分类过滤 / Author match combined with category
	got = svc.Filter("spivak", "Calculus")
	if len(got) != 1 || got[0].ID != calculus.ID {
		t.Fatalf("Filter by author+category=%v, want the calculus book", got)
	}
	if got = svc.Filter("spivak", "Algebra"); len(got) != 0 {
		t.Fatalf("Filter with wrong category=%v, want none", got)
	}

	// 空搜索 + 通配分类返回全部 / Empty query + wildcard returns all
	if got = svc.Filter("", CategoryAll); len(got) != 3 {
		t.Fatalf("Filter all count=%d, want 3", len(got))
	}
}

func TestService_UpdatePreservesHighlightsAndID(t *testing.T) {
	svc, _ := newTestService(t)

	b, err := svc.Create(Fields{Title: "Before", Author: "Someone", Category: "General"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.AddHighlight(b.ID, "a memorable passage"); err != nil {
		t.Fatalf("AddHighlight: %v", err)
	}

	updated, err := svc.Update(b.ID, Fields{Title: "After", Author: "Someone Else", Category: "Algebra", Tags: "new"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != b.ID {
		t.Fatalf("ID=%q after update, want %q", updated.ID, b.ID)
	}
	if len(updated.Highlights) != 1 || updated.Highlights[0] != "a memorable passage" {
		t.Fatalf("Highlights=%v after update, edit form must not touch them", updated.Highlights)
	}
	if !updated.AddedDate.Equal(b.AddedDate) {
		t.Fatalf("AddedDate changed across update")
	}
}

func TestService_NotesAppendOnly(t *testing.T) {
	svc, _ := newTestService(t)

	b, err := svc.Create(Fields{Title: "Notebook", Author: "Author", Notes: "first"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.AddNote(b.ID, "second"); err != nil {
		t.Fatalf("AddNote: %v", err)
	}

	got, _ := svc.Get(b.ID)
	if got.Notes != "first\n\nsecond" {
		t.Fatalf("Notes=%q, want blank-line separated concatenation", got.Notes)
	}

	if err := svc.AddNote("missing", "x"); !errors.Is(err, collection.ErrNotFound) {
		t.Fatalf("AddNote missing id: err=%v, want ErrNotFound", err)
	}
}

func TestService_UpdateKeepsNotes(t *testing.T) {
	svc, _ := newTestService(t)

	b, err := svc.Create(Fields{Title: "Before", Author: "Someone"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.AddNote(b.ID, "chapter two is dense"); err != nil {
		t.Fatalf("AddNote: %v", err)
	}

	// 编辑表单只改元数据，已有笔记必须原样保留
	// The edit form only touches metadata; existing notes must survive
	updated, err := svc.Update(b.ID, Fields{Title: "After", Author: "Someone"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Notes != "chapter two is dense" {
		t.Fatalf("Notes=%q after update, want the appended note kept", updated.Notes)
	}
}

func TestService_HighlightRemoveByPosition(t *testing.T) {
	svc, _ := newTestService(t)

	b, err := svc.Create(Fields{Title: "Marked", Author: "Author"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, h := range []string{"one", "two", "three"} {
		if err := svc.AddHighlight(b.ID, h); err != nil {
			t.Fatalf("AddHighlight %q: %v", h, err)
		}
	}

	if err := svc.RemoveHighlight(b.ID, 1); err != nil {
		t.Fatalf("RemoveHighlight: %v", err)
	}
	got, _ := svc.Get(b.ID)
	if len(got.Highlights) != 2 || got.Highlights[0] != "one" || got.Highlights[1] != "three" {
		t.Fatalf("Highlights=%v, want [one three]", got.Highlights)
	}

	if err := svc.RemoveHighlight(b.ID, 5); err == nil {
		t.Fatalf("RemoveHighlight out of range should fail")
	}
}

func TestService_RoundTripDates(t *testing.T) {
	svc, store := newTestService(t)

	b, err := svc.Create(Fields{Title: "Persisted", Author: "Author", Category: "Statistics", Tags: "data, charts"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	reloaded := NewService(store)
	books := reloaded.Books()
	if len(books) != 1 {
		t.Fatalf("reloaded %d books, want 1", len(books))
	}
	got := books[0]
	if got.ID != b.ID || got.Title != b.Title || got.Author != b.Author || got.Category != b.Category {
		t.Fatalf("reloaded book=%+v, want field-for-field equality with %+v", got, b)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "data" || got.Tags[1] != "charts" {
		t.Fatalf("Tags=%v after reload", got.Tags)
	}
	// 日期按时间点相等比较 / Dates compare by instant, not string identity
	if !got.AddedDate.Equal(b.AddedDate) {
		t.Fatalf("AddedDate=%v after reload, want instant-equal to %v", got.AddedDate, b.AddedDate)
	}
}
