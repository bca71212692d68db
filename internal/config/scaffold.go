package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// InitScaffold 在数据目录下初始化配置模板（config.json）；文件已存在则保留用户配置。
// InitScaffold initializes a config scaffold (config.json) under the data
// directory; an existing file is left untouched.
func InitScaffold(baseDir string) error {
	dir, err := expandPath(baseDir)
	if err != nil {
		return err
	}
	if dir == "" {
		return errors.New("data directory is empty")
	}
	path := filepath.Join(dir, "config.json")

	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path is a directory: %s", path)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir data dir: %w", err)
	}

	cfg := Default()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
