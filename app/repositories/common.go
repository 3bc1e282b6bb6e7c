package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const (
	// DatasetKeyPrefix prefixes every stored dataset key
	DatasetKeyPrefix = "dataset:"
)

var (
	ErrNotFound = errors.New("record not found")
)

// StoreOptions configure the Badger store.
type StoreOptions struct {
	// Path of the on-disk store. Empty keeps everything in memory.
	Path       string
	SyncWrites bool
	Logger     *slog.Logger
}

// OpenStore opens Badger at opts.Path, or in memory when the path is empty.
func OpenStore(opts StoreOptions) (*badger.DB, error) {
	var bopts badger.Options
	if opts.Path == "" {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		bopts = badger.DefaultOptions(opts.Path)
	}
	bopts = bopts.
		WithSyncWrites(opts.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(nil)
	if opts.Logger != nil {
		bopts = bopts.WithLogger(badgerLogger{opts.Logger})
	}
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return db, nil
}

// Backup writes a full backup of db to w.
func Backup(db *badger.DB, w io.Writer) error {
	if _, err := db.Backup(w, 0); err != nil {
		return fmt.Errorf("failed to back up store: %w", err)
	}
	return nil
}

// Restore loads a backup written by Backup into db.
func Restore(db *badger.DB, r io.Reader) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic occurred during restore: %v", p)
		}
	}()
	if err := db.Load(r, 4); err != nil {
		return fmt.Errorf("failed to restore store: %w", err)
	}
	return nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}

// badgerLogger routes Badger's printf-style logging into slog.
type badgerLogger struct {
	l *slog.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Error(fmt.Sprintf(format, args...), "component", "badger")
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Warn(fmt.Sprintf(format, args...), "component", "badger")
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.l.Debug(fmt.Sprintf(format, args...), "component", "badger")
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.l.Debug(fmt.Sprintf(format, args...), "component", "badger")
}
