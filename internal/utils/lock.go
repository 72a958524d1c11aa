package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileSuffix = ".lock"

// DBLock serializes writers of the progress SQLite database across stashkeep
// processes.
type DBLock struct {
	lock *flock.Flock
	path string
}

// NewDBLock creates a lock next to the given database path.
func NewDBLock(dbPath string) (*DBLock, error) {
	absPath, err := GetAbsDBPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("could not get absolute db path: %w", err)
	}
	lockPath := absPath + lockFileSuffix
	return &DBLock{
		lock: flock.New(lockPath),
		path: lockPath,
	}, nil
}

// Lock acquires the database lock, waiting if necessary. It prints a message
// when it has to wait.
func (l *DBLock) Lock() error {
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !locked {
		fmt.Fprintf(os.Stderr, "Another stashkeep process is writing to the database, waiting for it to finish...\n")
		if err := l.lock.Lock(); err != nil {
			return fmt.Errorf("failed to acquire lock on %s after waiting: %w", l.path, err)
		}
	}
	return nil
}

// Unlock releases the database lock.
func (l *DBLock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// GetAbsDBPath resolves the database path, defaulting to the user config dir.
func GetAbsDBPath(dbPath string) (string, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir := filepath.Join(home, ".config", "stashkeep")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		return filepath.Join(dir, "progress.sqlite"), nil
	}
	return filepath.Abs(dbPath)
}

// GetAbsCatalogPath resolves the catalog JSON path, defaulting to a file next
// to the database.
func GetAbsCatalogPath(catalogPath string) (string, error) {
	if catalogPath != "" {
		return filepath.Abs(catalogPath)
	}
	dbPath, err := GetAbsDBPath("")
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dbPath), "catalog.json"), nil
}
