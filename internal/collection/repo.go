package collection

import (
	"encoding/json"
	"fmt"
	"os"

	"mathdesk/internal/storage"
)

// Repo 单个命名集合的加载/写回封装，计划、书库、游戏共用同一套模式
// Repo wraps load/save of one named collection; the planner, library
// and games modules all use the same pattern.
type Repo[T any] struct {
	name  string
	store storage.Store
}

// NewRepo 创建集合仓库 / NewRepo creates a collection repository
func NewRepo[T any](store storage.Store, name string) *Repo[T] {
	return &Repo[T]{name: name, store: store}
}

// Name 返回集合名 / Name returns the collection name
func (r *Repo[T]) Name() string {
	return r.name
}

// Load 读取集合；不存在或解析失败时返回零值并记录日志，绝不让模块崩溃
// Load reads the collection. A missing or malformed payload yields the
// zero value (with a log line for the malformed case); the module never
// crashes on bad stored data.
func (r *Repo[T]) Load() (T, bool) {
	var zero T

	raw, ok, err := r.store.LoadNamed(r.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mathdesk: load collection %s: %v\n", r.name, err)
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Fprintf(os.Stderr, "mathdesk: collection %s is corrupt, starting empty: %v\n", r.name, err)
		return zero, false
	}
	return v, true
}

// Save 全量写回集合。空集合同样写回：删除最后一条记录后存储不会残留
// 旧快照。
// Save writes back the full collection. Empty collections are written
// too, so deleting the last record never leaves a stale snapshot behind.
func (r *Repo[T]) Save(v T) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", r.name, err)
	}
	if err := r.store.SaveNamed(r.name, payload); err != nil {
		return fmt.Errorf("save collection %s: %w", r.name, err)
	}
	return nil
}
