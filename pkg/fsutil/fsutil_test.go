package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtags/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.md")
	require.NoError(t, os.WriteFile(path, []byte("# A\n"), 0o644))

	content, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "# A\n", string(content))
}

func TestReadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := fsutil.ReadFile(context.Background(), filepath.Join(dir, "missing.md"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)
	assert.True(t, fsutil.IsIOError(err))

	_, err = fsutil.ReadFile(context.Background(), dir)
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	assert.True(t, fsutil.IsIOError(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = fsutil.ReadFile(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, fsutil.IsIOError(err))
}

func TestReadFile_PermissionDenied(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	path := filepath.Join(t.TempDir(), "secret.md")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o000))

	_, err := fsutil.ReadFile(context.Background(), path)
	require.ErrorIs(t, err, fsutil.ErrPermissionDenied)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("one"), 0))
	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("two"), 0o600))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(content))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope", "out.txt")
	require.Error(t, fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0))
}

func TestWriteAtomic_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "out.txt")
	require.ErrorIs(t, fsutil.WriteAtomic(ctx, path, []byte("x"), 0), context.Canceled)
	assert.NoFileExists(t, path)
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	ctx := context.Background()

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("a"), 0)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("a"), 0)
	require.NoError(t, err)
	assert.False(t, written)

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("b"), 0)
	require.NoError(t, err)
	assert.True(t, written)
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".mdtags.yml")
	ctx := context.Background()

	backup, err := fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.Empty(t, backup, "missing original needs no backup")

	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o644))
	backup, err = fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.BackupPath(path), backup)

	content, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "format: json\n", string(content))

	require.NoError(t, os.WriteFile(path, []byte("format: flat\n"), 0o644))
	_, err = fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	content, err = os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "format: flat\n", string(content))
}
