package library

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"mathdesk/internal/collection"
	"mathdesk/internal/storage"
)

// Fields 表单提交的书籍字段，Tags 为逗号分隔的原始输入
// Fields carries book form input; Tags is the raw comma-separated string
type Fields struct {
	Title    string
	Author   string
	ISBN     string
	Category string
	Tags     string
	CoverURL string
	Notes    string
}

// Service 持有内存中的书籍集合并在每次变更后写回存储
// Service owns the in-memory book collection and writes it back to
// storage after every mutation.
type Service struct {
	repo  *collection.Repo[[]Book]
	books []Book
}

// NewService 创建书库服务并加载已保存的书籍
// NewService creates the library service and loads saved books
func NewService(store storage.Store) *Service {
	repo := collection.NewRepo[[]Book](store, storage.CollectionBooks)
	books, _ := repo.Load()
	return &Service{repo: repo, books: books}
}

// Books 返回全部书籍 / Books returns all books
func (s *Service) Books() []Book {
	return s.books
}

// Create 校验必填字段，分配新标识并追加记录
// Create validates required fields, assigns a fresh identifier and
// appends the record.
func (s *Service) Create(f Fields) (Book, error) {
	if f.Title == "" {
		return Book{}, &collection.ValidationError{Field: "title"}
	}
	if f.Author == "" {
		return Book{}, &collection.ValidationError{Field: "author"}
	}

	b := Book{
		ID:         uuid.NewString(),
		Title:      f.Title,
		Author:     f.Author,
		ISBN:       f.ISBN,
		Category:   normalizeCategory(f.Category),
		Tags:       splitTags(f.Tags),
		CoverURL:   f.CoverURL,
		Notes:      f.Notes,
		Highlights: []string{},
		AddedDate:  time.Now(),
	}
	s.books = append(s.books, b)
	s.persist()
	return b, nil
}

// Update 原地替换书籍，标识、笔记、划线列表和入库时间不属于编辑表单，
// 保持原值；笔记只通过 AddNote 变更
// Update replaces a book in place. The identifier, notes, highlight
// list and added date are not part of the edit form and are preserved;
// notes change only through AddNote.
func (s *Service) Update(id string, f Fields) (Book, error) {
	if f.Title == "" {
		return Book{}, &collection.ValidationError{Field: "title"}
	}
	if f.Author == "" {
		return Book{}, &collection.ValidationError{Field: "author"}
	}

	for i := range s.books {
		if s.books[i].ID != id {
			continue
		}
		prev := s.books[i]
		s.books[i] = Book{
			ID:         id,
			Title:      f.Title,
			Author:     f.Author,
			ISBN:       f.ISBN,
			Category:   normalizeCategory(f.Category),
			Tags:       splitTags(f.Tags),
			CoverURL:   f.CoverURL,
			Notes:      prev.Notes,
			Highlights: prev.Highlights,
			AddedDate:  prev.AddedDate,
		}
		s.persist()
		return s.books[i], nil
	}
	return Book{}, fmt.Errorf("update book %s: %w", id, collection.ErrNotFound)
}

// Delete 删除书籍 / Delete removes a book
func (s *Service) Delete(id string) error {
	for i := range s.books {
		if s.books[i].ID != id {
			continue
		}
		s.books = append(s.books[:i], s.books[i+1:]...)
		s.persist()
		return nil
	}
	return fmt.Errorf("delete book %s: %w", id, collection.ErrNotFound)
}

// Get 按标识查找 / Get looks up a book by identifier
func (s *Service) Get(id string) (Book, bool) {
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// AddNote 追加一段笔记，段落之间以空行分隔
// AddNote appends a note paragraph, separated by a blank line
func (s *Service) AddNote(id, note string) error {
	for i := range s.books {
		if s.books[i].ID != id {
			continue
		}
		if s.books[i].Notes != "" {
			s.books[i].Notes += "\n\n"
		}
		s.books[i].Notes += note
		s.persist()
		return nil
	}
	return fmt.Errorf("add note to book %s: %w", id, collection.ErrNotFound)
}

// AddHighlight 追加一条划线 / AddHighlight appends a highlight
func (s *Service) AddHighlight(id, highlight string) error {
	for i := range s.books {
		if s.books[i].ID != id {
			continue
		}
		s.books[i].Highlights = append(s.books[i].Highlights, highlight)
		s.persist()
		return nil
	}
	return fmt.Errorf("add highlight to book %s: %w", id, collection.ErrNotFound)
}

// RemoveHighlight 按位置删除划线 / RemoveHighlight removes a highlight by position
func (s *Service) RemoveHighlight(id string, index int) error {
	for i := range s.books {
		if s.books[i].ID != id {
			continue
		}
		hs := s.books[i].Highlights
		if index < 0 || index >= len(hs) {
			return fmt.Errorf("remove highlight %d of book %s: index out of range", index, id)
		}
		s.books[i].Highlights = append(hs[:index], hs[index+1:]...)
		s.persist()
		return nil
	}
	return fmt.Errorf("remove highlight from book %s: %w", id, collection.ErrNotFound)
}

// Filter 返回同时满足搜索词与分类的书籍。搜索词对标题、作者和任一标签
// 做不区分大小写的子串匹配；分类为精确匹配，CategoryAll 匹配全部。
// Filter returns books matching both the query and the category. The
// query is a case-insensitive substring match over title, author and
// any tag; the category is an exact match, with CategoryAll matching
// everything.
func (s *Service) Filter(query, category string) []Book {
	q := strings.ToLower(query)
	var out []Book
	for _, b := range s.books {
		if !matchesQuery(b, q) {
			continue
		}
		if category != CategoryAll && b.Category != category {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesQuery(b Book, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(b.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Author), q) {
		return true
	}
	for _, tag := range b.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func splitTags(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func normalizeCategory(c string) string {
	for _, known := range Categories() {
		if c == known {
			return c
		}
	}
	return "General"
}

func (s *Service) persist() {
	if err := s.repo.Save(s.books); err != nil {
		fmt.Fprintf(os.Stderr, "mathdesk: %v\n", err)
	}
}
