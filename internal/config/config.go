package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// 存储驱动 / Storage drivers
const (
	DriverSQLite = "sqlite"
	DriverJSON   = "json"
)

type StorageConfig struct {
	// BaseDir 数据目录；数据库与 JSON 集合都放在这里
	// BaseDir is the data directory holding the database and JSON collections
	BaseDir string `json:"base_dir"`
	Driver  string `json:"driver"`
}

type UIConfig struct {
	Locale string `json:"locale"`
	Theme  string `json:"theme"`
}

type QuizConfig struct {
	// WorksheetSize 求解器练习卷的题目数，范围 1..20
	// WorksheetSize is the worksheet question count, clamped to 1..20
	WorksheetSize int `json:"worksheet_size"`
}

type Config struct {
	Storage StorageConfig `json:"storage"`
	UI      UIConfig      `json:"ui"`
	Quiz    QuizConfig    `json:"quiz"`
}

type fileUIConfig struct {
	Locale *string `json:"locale"`
	Theme  *string `json:"theme"`
}

type fileQuizConfig struct {
	WorksheetSize *int `json:"worksheet_size"`
}

type fileConfig struct {
	Storage *StorageConfig  `json:"storage"`
	UI      *fileUIConfig   `json:"ui"`
	Quiz    *fileQuizConfig `json:"quiz"`
}

func Default() Config {
	return Config{
		Storage: StorageConfig{
			BaseDir: "~/.mathdesk",
			Driver:  DriverSQLite,
		},
		UI: UIConfig{
			Locale: "en",
			Theme:  "dark",
		},
		Quiz: QuizConfig{
			WorksheetSize: 5,
		},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	for _, globalPath := range globalConfigPaths() {
		if err := mergeFromFile(&cfg, globalPath); err != nil {
			return Config{}, err
		}
	}

	resolvedPath := strings.TrimSpace(path)
	if envPath := strings.TrimSpace(os.Getenv("MATHDESK_CONFIG_PATH")); envPath != "" {
		resolvedPath = envPath
	}
	if resolvedPath == "" {
		resolvedPath = findProjectConfigPath()
	}
	if err := mergeFromFile(&cfg, resolvedPath); err != nil {
		return Config{}, err
	}

	if err := normalize(&cfg); err != nil {
		return Config{}, err
	}
	return applyEnv(cfg)
}

func globalConfigPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(home, ".mathdesk", "config.json")}
}

func findProjectConfigPath() string {
	candidates := []string{
		"mathdesk.config.json",
		".mathdesk/config.json",
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func mergeFromFile(cfg *Config, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("expand config path %q: %w", path, err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %q: %w", resolved, err)
	}

	cleaned := stripJSONComments(data)
	var fileCfg fileConfig
	if err := json.Unmarshal(cleaned, &fileCfg); err != nil {
		return fmt.Errorf("parse config %q: %w", resolved, err)
	}
	applyFileConfig(cfg, fileCfg)
	return nil
}

func applyFileConfig(cfg *Config, fc fileConfig) {
	if fc.Storage != nil {
		cfg.Storage = mergeStorage(cfg.Storage, *fc.Storage)
	}
	if fc.UI != nil {
		if fc.UI.Locale != nil {
			cfg.UI.Locale = *fc.UI.Locale
		}
		if fc.UI.Theme != nil {
			cfg.UI.Theme = *fc.UI.Theme
		}
	}
	if fc.Quiz != nil {
		if fc.Quiz.WorksheetSize != nil {
			cfg.Quiz.WorksheetSize = *fc.Quiz.WorksheetSize
		}
	}
}

func mergeStorage(base StorageConfig, override StorageConfig) StorageConfig {
	if strings.TrimSpace(override.BaseDir) != "" {
		base.BaseDir = override.BaseDir
	}
	if strings.TrimSpace(override.Driver) != "" {
		base.Driver = override.Driver
	}
	return base
}

func normalize(cfg *Config) error {
	baseDir, err := expandPath(cfg.Storage.BaseDir)
	if err != nil {
		return err
	}
	if baseDir == "" {
		baseDir, err = expandPath(Default().Storage.BaseDir)
		if err != nil {
			return err
		}
	}
	cfg.Storage.BaseDir = baseDir

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	switch cfg.Storage.Driver {
	case DriverSQLite, DriverJSON:
	case "":
		cfg.Storage.Driver = DriverSQLite
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	cfg.UI.Locale = strings.TrimSpace(cfg.UI.Locale)
	if cfg.UI.Locale == "" {
		cfg.UI.Locale = Default().UI.Locale
	}
	cfg.UI.Theme = strings.ToLower(strings.TrimSpace(cfg.UI.Theme))
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = Default().UI.Theme
	}

	if cfg.Quiz.WorksheetSize <= 0 {
		cfg.Quiz.WorksheetSize = Default().Quiz.WorksheetSize
	}
	if cfg.Quiz.WorksheetSize > 20 {
		cfg.Quiz.WorksheetSize = 20
	}

	return nil
}

func applyEnv(cfg Config) (Config, error) {
	if v := strings.TrimSpace(os.Getenv("MATHDESK_DATA_DIR")); v != "" {
		cfg.Storage.BaseDir = v
	}
	if v := strings.TrimSpace(os.Getenv("MATHDESK_STORE")); v != "" {
		cfg.Storage.Driver = v
	}
	if v := strings.TrimSpace(os.Getenv("MATHDESK_LANG")); v != "" {
		cfg.UI.Locale = v
	}
	if v := strings.TrimSpace(os.Getenv("MATHDESK_WORKSHEET_SIZE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid MATHDESK_WORKSHEET_SIZE: %q", v)
		}
		cfg.Quiz.WorksheetSize = n
	}

	return cfg, normalize(&cfg)
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
		}
	}
	return filepath.Abs(path)
}

func stripJSONComments(data []byte) []byte {
	const (
		stateNormal = iota
		stateString
		stateLineComment
		stateBlockComment
	)

	state := stateNormal
	escaped := false
	out := bytes.Buffer{}

	for i := 0; i < len(data); i++ {
		c := data[i]
		next := byte(0)
		if i+1 < len(data) {
			next = data[i+1]
		}

		switch state {
		case stateNormal:
			if c == '"' {
				state = stateString
				out.WriteByte(c)
				continue
			}
			if c == '/' && next == '/' {
				state = stateLineComment
				i++
				continue
			}
			if c == '/' && next == '*' {
				state = stateBlockComment
				i++
				continue
			}
			out.WriteByte(c)
		case stateString:
			out.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' {
				escaped = true
				continue
			}
			if c == '"' {
				state = stateNormal
			}
		case stateLineComment:
			if c == '\n' {
				state = stateNormal
				out.WriteByte(c)
			}
		case stateBlockComment:
			if c == '*' && next == '/' {
				state = stateNormal
				i++
			}
		}
	}

	return out.Bytes()
}
