package storage

// Store 命名集合持久化接口，支持多后端 (SQLite / JSON 文件)
// Store is the named-collection persistence interface supporting
// multiple backends (SQLite / JSON files)
type Store interface {
	// LoadNamed 读取命名集合的原始 JSON；不存在时 ok 为 false
	// LoadNamed returns the raw JSON payload of a named collection;
	// ok is false when the collection has never been saved
	LoadNamed(name string) (payload []byte, ok bool, err error)

	// SaveNamed 全量写回命名集合
	// SaveNamed writes the full payload of a named collection
	SaveNamed(name string, payload []byte) error

	// ListNames 列出已保存的集合名
	// ListNames lists the names of saved collections
	ListNames() ([]string, error)

	// 生命周期 / Lifecycle
	Close() error
}

// 各功能模块独占使用的集合名 / Collection names, each owned by one module
const (
	CollectionEvents     = "scheduleEvents"
	CollectionBooks      = "bookLibrary"
	CollectionHighScores = "mathGamesHighScores"
)
