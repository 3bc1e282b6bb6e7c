package service

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"faredash/app/generator"
	"faredash/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedCache writes one generated dataset into an on-disk cache at path.
func seedCache(t *testing.T, path string) string {
	t.Helper()
	db, err := repositories.OpenStore(repositories.StoreOptions{Path: path})
	require.NoError(t, err)
	defer db.Close()

	gen, err := generator.New(generator.Options{Seed: 1})
	require.NoError(t, err)
	d := gen.Generate()
	require.NoError(t, repositories.NewBadgerDatasetRepository(db).Save(d))
	return d.Key
}

func newTestCache(t *testing.T, input string) (*Cache, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := NewCache(filepath.Join(t.TempDir(), "cache"), strings.NewReader(input), &out)
	c.now = func() time.Time { return time.Unix(1700000000, 0) }
	return c, &out
}

func TestCacheInMemory(t *testing.T) {
	c := NewCache("", strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, c.Clear())
	_, err := c.Backup("")
	assert.Error(t, err)
	assert.Error(t, c.Restore("x"))
}

func TestCacheList(t *testing.T) {
	c, out := newTestCache(t, "")

	keys, err := c.List()
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Contains(t, out.String(), "No cache exists")

	key := seedCache(t, c.Path)
	keys, err = c.List()
	require.NoError(t, err)
	assert.Equal(t, []string{key}, keys)
	assert.Contains(t, out.String(), key)
}

func TestCacheClear(t *testing.T) {
	t.Run("clear non-existent cache", func(t *testing.T) {
		c, out := newTestCache(t, "")
		require.NoError(t, c.Clear())
		assert.Contains(t, out.String(), "Cache is already clean")
	})

	t.Run("clear existing cache - confirmed", func(t *testing.T) {
		c, out := newTestCache(t, "y\n")
		seedCache(t, c.Path)

		require.NoError(t, c.Clear())
		assert.Contains(t, out.String(), "Cache cleared successfully")

		keys, err := c.List()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("clear existing cache - cancelled", func(t *testing.T) {
		c, out := newTestCache(t, "n\n")
		key := seedCache(t, c.Path)

		assert.ErrorIs(t, c.Clear(), ErrCancelled)
		assert.Contains(t, out.String(), "Operation cancelled")

		keys, err := c.List()
		require.NoError(t, err)
		assert.Equal(t, []string{key}, keys)
	})
}

func TestCacheBackupAndRestore(t *testing.T) {
	c, out := newTestCache(t, "")

	t.Run("backup non-existent cache", func(t *testing.T) {
		_, err := c.Backup("")
		assert.ErrorContains(t, err, "no cache exists")
	})

	key := seedCache(t, c.Path)
	backupFile := filepath.Join(t.TempDir(), "nested", "backup.db")

	t.Run("backup existing cache", func(t *testing.T) {
		file, err := c.Backup(backupFile)
		require.NoError(t, err)
		assert.Equal(t, backupFile, file)
		assert.FileExists(t, backupFile)
		assert.Contains(t, out.String(), "Cache backed up successfully")
	})

	t.Run("restore non-existent backup", func(t *testing.T) {
		assert.ErrorContains(t, c.Restore(filepath.Join(t.TempDir(), "missing.db")), "does not exist")
	})

	t.Run("restore empty backup", func(t *testing.T) {
		empty := filepath.Join(t.TempDir(), "empty.db")
		require.NoError(t, os.WriteFile(empty, nil, 0644))
		assert.ErrorContains(t, c.Restore(empty), "is empty")
	})

	t.Run("restore with existing cache - cancelled", func(t *testing.T) {
		c.In = strings.NewReader("n\n")
		assert.ErrorIs(t, c.Restore(backupFile), ErrCancelled)
	})

	t.Run("restore with existing cache - confirmed", func(t *testing.T) {
		c.In = strings.NewReader("y\n")
		require.NoError(t, c.Restore(backupFile))
		assert.Contains(t, out.String(), "Cache restored successfully")

		keys, err := c.List()
		require.NoError(t, err)
		assert.Equal(t, []string{key}, keys)
	})

	t.Run("restore into clean state", func(t *testing.T) {
		fresh, _ := newTestCache(t, "")
		require.NoError(t, fresh.Restore(backupFile))
		keys, err := fresh.List()
		require.NoError(t, err)
		assert.Equal(t, []string{key}, keys)
	})

	t.Run("forced restore skips prompt", func(t *testing.T) {
		c.In = strings.NewReader("")
		c.Force = true
		defer func() { c.Force = false }()
		require.NoError(t, c.Restore(backupFile))
	})
}
