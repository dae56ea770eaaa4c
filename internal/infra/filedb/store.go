// Package filedb implements durable, atomic storage of homogeneous record
// collections, one JSON file per collection. Writers to the same file are
// serialized through a per-path mutex registry and every write lands via
// write-temp-then-rename, so the on-disk file is never observed in a
// partially-written state.
package filedb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// ErrCorrupted is returned when a collection file exists but does not hold
// valid JSON. Corrupted files are not auto-repaired.
var ErrCorrupted = errors.New("corrupted collection file")

// Store owns a data directory and the per-file lock registry shared by every
// collection backed by it. Construct one Store at startup and pass it to all
// repositories.
type Store struct {
	dataDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a Store rooted at dataDir. The directory is created on
// first access, not here.
func NewStore(dataDir string) *Store {
	return &Store{
		dataDir: dataDir,
		locks:   make(map[string]*sync.Mutex),
	}
}

// DataDir returns the directory collection files are stored in.
func (s *Store) DataDir() string {
	return s.dataDir
}

// lockFor returns the mutex guarding the given file path, creating it on
// first use.
func (s *Store) lockFor(path string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[path] = lock
	}
	return lock
}

// Collection is a typed handle on one collection file. All records of the
// collection are read and replaced as a unit.
type Collection[T any] struct {
	store *Store
	path  string
}

// NewCollection creates a handle for the named collection, stored as
// "<dataDir>/<name>.json".
func NewCollection[T any](store *Store, name string) *Collection[T] {
	return &Collection[T]{
		store: store,
		path:  filepath.Join(store.dataDir, name+".json"),
	}
}

// ReadAll parses and returns every record in the collection. A missing file
// is initialized to an empty collection first.
func (c *Collection[T]) ReadAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lock := c.store.lockFor(c.path)
	lock.Lock()
	defer lock.Unlock()
	return c.readLocked()
}

// ReplaceAll serializes the full record list and durably replaces the file's
// content.
func (c *Collection[T]) ReplaceAll(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	lock := c.store.lockFor(c.path)
	lock.Lock()
	defer lock.Unlock()
	return c.writeLocked(records)
}

// Update runs fn inside the collection's critical section: the current
// records are read, fn computes the next state, and the result replaces the
// file. No other writer to the same file overlaps the read-modify-write. If
// fn returns an error nothing is written.
func (c *Collection[T]) Update(ctx context.Context, fn func(records []T) ([]T, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	lock := c.store.lockFor(c.path)
	lock.Lock()
	defer lock.Unlock()

	records, err := c.readLocked()
	if err != nil {
		return err
	}
	next, err := fn(records)
	if err != nil {
		return err
	}
	return c.writeLocked(next)
}

func (c *Collection[T]) readLocked() ([]T, error) {
	if err := c.ensureFileLocked(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", c.path, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, c.path, err)
	}
	return records, nil
}

// writeLocked marshals the records and atomically replaces the collection
// file. Callers must hold the file's lock.
func (c *Collection[T]) writeLocked(records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", c.path, err)
	}
	return c.atomicWrite(payload)
}

// ensureFileLocked creates the data directory and initializes a missing
// collection file to an empty list.
func (c *Collection[T]) ensureFileLocked() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	_, err := os.Stat(c.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat collection %s: %w", c.path, err)
	}
	return c.atomicWrite([]byte("[]"))
}

// atomicWrite writes the payload to a temporary file in the same directory,
// syncs it, and renames it over the target.
func (c *Collection[T]) atomicWrite(payload []byte) error {
	tmpPath := fmt.Sprintf("%s.%s.tmp", c.path, uuid.NewString())
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace collection %s: %w", c.path, err)
	}
	return nil
}
