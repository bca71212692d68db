package library

import "time"

// CategoryAll 通配分类，仅用于过滤 / CategoryAll is the filter wildcard
const CategoryAll = "All"

// Categories 书籍分类闭集（不含通配）/ Closed set of book categories
func Categories() []string {
	return []string{
		"Algebra",
		"Geometry",
		"Calculus",
		"Statistics",
		"Number Theory",
		"Trigonometry",
		"General",
	}
}

// Book 一条藏书记录。Notes 只追加，段落之间以空行分隔；Highlights 按
// 位置独立增删；Tags 保持顺序且不去重。
// Book is one library record. Notes are append-only, paragraphs
// separated by a blank line; Highlights are added/removed by position;
// Tags keep their order and are not deduplicated.
type Book struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	ISBN       string    `json:"isbn,omitempty"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	CoverURL   string    `json:"coverUrl,omitempty"`
	Notes      string    `json:"notes"`
	Highlights []string  `json:"highlights"`
	AddedDate  time.Time `json:"addedDate"`
}
