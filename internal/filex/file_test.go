package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabasePath(t *testing.T) {
	tests := map[string]string{
		"":                                 "",
		":memory:":                         "",
		"file::memory:?cache=shared":       "",
		"file:crm?mode=memory&cache=shared": "",
		"crm.db":                           "crm.db",
		"file:data/crm.db?_pragma=busy_timeout(5000)": "data/crm.db",
		"/var/lib/crm/crm.db":                          "/var/lib/crm/crm.db",
	}
	for dsn, want := range tests {
		require.Equal(t, want, DatabasePath(dsn), dsn)
	}
}

func TestEnsureParentDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "nested", "data")

	got, err := EnsureParentDir("file:" + filepath.Join(want, "crm.db") + "?cache=shared")
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "db", "crm.db")

	first, err := EnsureParentDir(dsn)
	require.NoError(t, err)

	second, err := EnsureParentDir(dsn)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEnsureParentDir_Memory(t *testing.T) {
	got, err := EnsureParentDir(":memory:")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestEnsureParentDir_Error(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file-as-directory semantics differ on windows")
	}
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := EnsureParentDir(filepath.Join(blocker, "sub", "crm.db"))
	require.Error(t, err)
}
