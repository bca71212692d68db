package storage

import (
	"fmt"
	"os"
)

// MigrateFromFiles 将旧版 JSON 集合文件迁移到 SQLite
// MigrateFromFiles migrates legacy JSON collection files into SQLite.
// Collections already present in SQLite are left untouched, so the
// migration is safe to run on every start.
func MigrateFromFiles(files *FileStore, store *SQLiteStore) (int, error) {
	if files == nil || store == nil {
		return 0, nil
	}

	names, err := files.ListNames()
	if err != nil {
		return 0, err
	}

	migrated := 0
	for _, name := range names {
		// 已存在则跳过 / Skip collections already migrated
		if _, ok, loadErr := store.LoadNamed(name); loadErr == nil && ok {
			continue
		}

		payload, ok, err := files.LoadNamed(name)
		if err != nil || !ok {
			fmt.Fprintf(os.Stderr, "skip migrate %s: %v\n", name, err)
			continue
		}
		if err := store.SaveNamed(name, payload); err != nil {
			fmt.Fprintf(os.Stderr, "migrate collection %s failed: %v\n", name, err)
			continue
		}
		migrated++
	}
	return migrated, nil
}
