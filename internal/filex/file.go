package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DatabasePath extracts the file path from a SQLite DSN. It returns "" for
// in-memory databases.
func DatabasePath(dsn string) string {
	if dsn == "" || dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		return ""
	}
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == ":memory:" {
		return ""
	}
	return path
}

// EnsureParentDir creates the directory that will hold the database file
// named by dsn. In-memory DSNs are left alone.
func EnsureParentDir(dsn string) (string, error) {
	path := DatabasePath(dsn)
	if path == "" {
		return "", nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
