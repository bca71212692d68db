package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileStore 基于 JSON 文件 (每个集合一个文件) 的持久化实现
// FileStore persists each collection as one JSON file under a base dir
type FileStore struct {
	baseDir        string
	collectionsDir string
}

// NewFileStore 创建文件存储并准备目录
// NewFileStore creates a file store and prepares its directories
func NewFileStore(baseDir string) (*FileStore, error) {
	baseDir = strings.TrimSpace(baseDir)
	if baseDir == "" {
		return nil, fmt.Errorf("storage base dir is empty")
	}
	fs := &FileStore{
		baseDir:        baseDir,
		collectionsDir: filepath.Join(baseDir, "collections"),
	}
	for _, dir := range []string{fs.baseDir, fs.collectionsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
		}
	}
	return fs, nil
}

func (fs *FileStore) pathFor(name string) string {
	return filepath.Join(fs.collectionsDir, name+".json")
}

// LoadNamed 读取命名集合 / LoadNamed reads a named collection
func (fs *FileStore) LoadNamed(name string) ([]byte, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, fmt.Errorf("collection name is empty")
	}

	data, err := os.ReadFile(fs.pathFor(name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read collection %s: %w", name, err)
	}
	return data, true, nil
}

// SaveNamed 全量写回命名集合，先写临时文件再改名
// SaveNamed writes back a named collection via temp file + rename
func (fs *FileStore) SaveNamed(name string, payload []byte) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("collection name is empty")
	}

	path := fs.pathFor(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// ListNames 列出所有集合名 / ListNames lists all collection names
func (fs *FileStore) ListNames() ([]string, error) {
	entries, err := os.ReadDir(fs.collectionsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read collections dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Close 文件存储无需关闭 / Close is a no-op for the file store
func (fs *FileStore) Close() error {
	return nil
}
