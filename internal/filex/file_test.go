package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "tenants")

	require.NoError(t, EnsureDir(dir))

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(DirPerm), fi.Mode().Perm())
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, EnsureDir(dir))

	marker := filepath.Join(dir, "users.db")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o600))

	require.NoError(t, EnsureDir(dir))
	_, err := os.Stat(marker)
	require.NoError(t, err, "existing content must survive")
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	require.Error(t, EnsureDir(file))
}

func TestEnsureParentDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "registry", "users.db")

	require.NoError(t, EnsureParentDir(file))

	fi, err := os.Stat(filepath.Dir(file))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	_, err = os.Stat(file)
	require.True(t, os.IsNotExist(err), "the file itself is not created")
}
