package service

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"faredash/app/repositories"
)

// ErrCancelled is returned when the user declines a confirmation prompt.
var ErrCancelled = errors.New("operation cancelled")

// DefaultBackupDir receives backups written without an explicit file.
const DefaultBackupDir = "data/backups"

// Cache maintains the on-disk dataset cache at Path.
type Cache struct {
	Path string
	In   io.Reader
	Out  io.Writer
	// Force skips confirmation prompts.
	Force bool
	now   func() time.Time
}

// NewCache returns a Cache reading confirmations from in and reporting to out.
func NewCache(path string, in io.Reader, out io.Writer) *Cache {
	return &Cache{Path: path, In: in, Out: out, now: time.Now}
}

func (c *Cache) exists() bool {
	_, err := os.Stat(c.Path)
	return err == nil
}

func (c *Cache) confirm(question string) bool {
	if c.Force {
		return true
	}
	fmt.Fprintf(c.Out, "%s [y/N] ", question)
	response, _ := bufio.NewReader(c.In).ReadString('\n')
	response = strings.TrimSpace(response)
	return response == "y" || response == "Y"
}

func (c *Cache) requirePath() error {
	if c.Path == "" {
		return errors.New("cache is in memory; set store.path to use cache commands")
	}
	return nil
}

// Clear removes every cached dataset.
func (c *Cache) Clear() error {
	if err := c.requirePath(); err != nil {
		return err
	}
	if !c.exists() {
		fmt.Fprintln(c.Out, "Cache is already clean (does not exist)")
		return nil
	}
	if !c.confirm("Are you sure you want to clear the dataset cache? This cannot be undone.") {
		fmt.Fprintln(c.Out, "Operation cancelled")
		return ErrCancelled
	}

	db, err := repositories.OpenStore(repositories.StoreOptions{Path: c.Path})
	if err != nil {
		return err
	}
	defer db.Close()
	if err := repositories.NewBadgerDatasetRepository(db).Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	fmt.Fprintln(c.Out, "Cache cleared successfully")
	return nil
}

// List prints the keys of the cached datasets.
func (c *Cache) List() ([]string, error) {
	if err := c.requirePath(); err != nil {
		return nil, err
	}
	if !c.exists() {
		fmt.Fprintln(c.Out, "No cache exists")
		return nil, nil
	}
	db, err := repositories.OpenStore(repositories.StoreOptions{Path: c.Path})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	keys, err := repositories.NewBadgerDatasetRepository(db).Keys()
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		fmt.Fprintln(c.Out, k)
	}
	return keys, nil
}

// Backup writes the cache to file, or to a timestamped file under
// DefaultBackupDir when file is empty. It returns the file written.
func (c *Cache) Backup(file string) (string, error) {
	if err := c.requirePath(); err != nil {
		return "", err
	}
	if !c.exists() {
		return "", errors.New("no cache exists to back up")
	}
	if file == "" {
		file = filepath.Join(DefaultBackupDir, fmt.Sprintf("backup_%d.db", c.now().Unix()))
	}
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	db, err := repositories.OpenStore(repositories.StoreOptions{Path: c.Path})
	if err != nil {
		return "", err
	}
	defer db.Close()

	f, err := os.Create(file)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	if err := repositories.Backup(db, f); err != nil {
		return "", err
	}
	fmt.Fprintf(c.Out, "Cache backed up successfully to %s\n", file)
	return file, nil
}

// Restore replaces the cache with the contents of backupFile.
func (c *Cache) Restore(backupFile string) error {
	if err := c.requirePath(); err != nil {
		return err
	}
	fi, err := os.Stat(backupFile)
	if err != nil {
		return fmt.Errorf("backup file does not exist: %s", backupFile)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("backup file is empty: %s", backupFile)
	}

	if c.exists() {
		if !c.confirm("Existing cache found. Do you want to replace it?") {
			fmt.Fprintln(c.Out, "Operation cancelled")
			return ErrCancelled
		}
		if err := os.RemoveAll(c.Path); err != nil {
			return fmt.Errorf("failed to remove existing cache: %w", err)
		}
	}

	db, err := repositories.OpenStore(repositories.StoreOptions{Path: c.Path})
	if err != nil {
		return err
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	if err := repositories.Restore(db, f); err != nil {
		return err
	}
	fmt.Fprintln(c.Out, "Cache restored successfully")
	return nil
}
