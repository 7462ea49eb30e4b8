// Package recent persists the most-recently-used file list.
//
// The list lives in a single JSON document inside the application data
// directory:
//
//	{
//	  "files": [
//	    "/most/recent",
//	    "/least/recent"
//	  ]
//	}
//
// Every operation re-reads the file; nothing is cached between calls.
// Reading never fails: a missing, unreadable or malformed file reads as an
// empty list. Writing reports failures as [*PersistError].
//
// # Concurrency
//
// [Store.Add] is an unguarded read-modify-write. Two adds racing in one
// process (or in two processes sharing the data directory) each load the
// old list and the later save wins, dropping the other entry. [WithLock]
// serializes adds through an advisory lock file next to the document.
package recent

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/raphi011/recent/internal/lock"
	"github.com/raphi011/recent/internal/log"
	"github.com/raphi011/recent/internal/storage"
)

// FileName is the name of the document inside the data directory.
const FileName = "recent_files.json"

// appDirName is the per-application subdirectory of the user config dir.
const appDirName = "recent"

// Document is the on-disk shape of the list.
type Document struct {
	// Files holds the recent paths, most recent first.
	Files []string `json:"files"`
}

// LoadState says why a read produced the list it did.
type LoadState int

const (
	LoadOK LoadState = iota
	LoadMissing
	LoadUnreadable
	LoadMalformed
)

func (s LoadState) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadUnreadable:
		return "unreadable"
	case LoadMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// LoadResult is the outcome of reading the document.
// Files is empty unless State is LoadOK.
type LoadResult struct {
	Files []string
	State LoadState
	Err   error
}

// DefaultDataDir returns the host's data directory for recent.
func DefaultDataDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", &EnvironmentError{Reason: "no application data directory", Err: err}
	}
	return filepath.Join(dir, appDirName), nil
}

// ResolvePath returns the document path inside dataDir.
func ResolvePath(dataDir string) (string, error) {
	if dataDir == "" {
		return "", &EnvironmentError{Reason: "no application data directory"}
	}
	return filepath.Join(dataDir, FileName), nil
}

// Option configures a Store.
type Option func(*Store)

// WithLock makes Add hold an exclusive lock on <document>.lock for the
// whole load, promote and save sequence.
func WithLock() Option {
	return func(s *Store) {
		s.locked = true
	}
}

// Store reads and writes the recent list document.
type Store struct {
	path   string
	locked bool
}

// New creates a store for the document inside dataDir.
func New(dataDir string, opts ...Option) (*Store, error) {
	path, err := ResolvePath(dataDir)
	if err != nil {
		return nil, err
	}

	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Read loads the document and reports how the read went.
func (s *Store) Read() LoadResult {
	var doc Document
	err := storage.LoadJSON(s.path, &doc)
	switch {
	case err == nil:
		return LoadResult{Files: doc.Files, State: LoadOK}
	case errors.Is(err, os.ErrNotExist):
		return LoadResult{State: LoadMissing, Err: err}
	case errors.Is(err, storage.ErrMalformed):
		return LoadResult{State: LoadMalformed, Err: err}
	default:
		return LoadResult{State: LoadUnreadable, Err: err}
	}
}

// Load returns the stored list, or an empty list if the document is
// missing, unreadable or malformed.
func (s *Store) Load(ctx context.Context) []string {
	res := s.Read()
	switch res.State {
	case LoadOK:
		return res.Files
	case LoadMissing:
		return nil
	default:
		log.FromContext(ctx).Debug("ignoring recent list", "path", s.path, "state", res.State, "error", res.Err)
		return nil
	}
}

// List is the list-read operation.
func (s *Store) List(ctx context.Context) []string {
	files := s.Load(ctx)
	if files == nil {
		return []string{}
	}
	return files
}

// Save replaces the document with files, creating the data directory if
// needed. The caller is responsible for the list invariants.
func (s *Store) Save(ctx context.Context, files []string) error {
	if err := storage.EnsureParent(s.path); err != nil {
		return &PersistError{Op: OpCreateDir, Path: filepath.Dir(s.path), Err: err}
	}

	if files == nil {
		files = []string{}
	}
	data, err := storage.Encode(Document{Files: files})
	if err != nil {
		return &PersistError{Op: OpEncode, Path: s.path, Err: err}
	}

	if err := storage.WriteAtomic(s.path, data); err != nil {
		return &PersistError{Op: OpWrite, Path: s.path, Err: err}
	}

	log.FromContext(ctx).Debug("saved recent list", "path", s.path, "entries", len(files))
	return nil
}

// Add is the add-one operation: it moves entry to the front of the stored
// list and saves the result. Without WithLock, concurrent adds may lose
// updates; see the package documentation.
func (s *Store) Add(ctx context.Context, entry string) error {
	if s.locked {
		unlock, err := s.acquire()
		if err != nil {
			return err
		}
		defer unlock()
	}

	return s.Save(ctx, Promote(s.Load(ctx), entry))
}

// LockPath returns the advisory lock file used by WithLock.
func (s *Store) LockPath() string {
	return s.path + ".lock"
}

func (s *Store) acquire() (func(), error) {
	if err := storage.EnsureParent(s.path); err != nil {
		return nil, &PersistError{Op: OpCreateDir, Path: filepath.Dir(s.path), Err: err}
	}

	fl := lock.NewFileLock(s.LockPath())
	if err := fl.Lock(); err != nil {
		return nil, &PersistError{Op: OpLock, Path: fl.Path(), Err: err}
	}
	return func() { fl.Unlock() }, nil
}
