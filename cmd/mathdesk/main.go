package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mathdesk/internal/config"
	"mathdesk/internal/games"
	"mathdesk/internal/i18n"
	"mathdesk/internal/library"
	"mathdesk/internal/planner"
	"mathdesk/internal/storage"
	"mathdesk/internal/tui"
)

func main() {
	var (
		configPath string
		dataDir    string
		driver     string
		lang       string
		solveMode  bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config JSON/JSONC")
	flag.StringVar(&dataDir, "data", "", "Data directory override")
	flag.StringVar(&driver, "store", "", "Storage driver: sqlite or json")
	flag.StringVar(&lang, "lang", "", "UI locale (en, zh-CN)")
	flag.BoolVar(&solveMode, "solve", false, "Run the equation solver REPL instead of the TUI")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	if v := strings.TrimSpace(dataDir); v != "" {
		cfg.Storage.BaseDir = v
	}
	if v := strings.TrimSpace(driver); v != "" {
		cfg.Storage.Driver = strings.ToLower(v)
	}
	if v := strings.TrimSpace(lang); v != "" {
		cfg.UI.Locale = v
	}

	i18n.Init(cfg.UI.Locale)

	if solveMode {
		if err := runSolveREPL(cfg.Storage.BaseDir); err != nil {
			fmt.Fprintf(os.Stderr, "solver failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := config.InitScaffold(cfg.Storage.BaseDir); err != nil {
		fmt.Fprintf(os.Stderr, "init data dir failed: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore(cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init storage failed: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	deps := tui.Deps{
		Planner:       planner.NewService(store),
		Library:       library.NewService(store),
		Scores:        games.NewScores(store),
		WorksheetSize: cfg.Quiz.WorksheetSize,
	}
	if err := tui.Run(deps); err != nil {
		fmt.Fprintf(os.Stderr, "tui failed: %v\n", err)
		os.Exit(1)
	}
}

// openStore 按配置选择驱动。SQLite 启动时吸收旧的 JSON 集合，已有的键
// 不会被覆盖。
// openStore selects the configured driver. The SQLite path absorbs old
// JSON collections on startup; existing keys are never overwritten.
func openStore(sc config.StorageConfig) (storage.Store, error) {
	files, err := storage.NewFileStore(sc.BaseDir)
	if err != nil {
		return nil, err
	}
	if sc.Driver == config.DriverJSON {
		return files, nil
	}

	db, err := storage.NewSQLiteStore(filepath.Join(sc.BaseDir, "mathdesk.db"))
	if err != nil {
		return nil, err
	}
	if n, err := storage.MigrateFromFiles(files, db); err != nil {
		fmt.Fprintf(os.Stderr, "migrate collections: %v\n", err)
	} else if n > 0 {
		fmt.Fprintf(os.Stderr, "migrated %d collection(s) to sqlite\n", n)
	}
	return db, nil
}
