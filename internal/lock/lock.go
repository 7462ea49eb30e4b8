// Package lock provides an exclusive advisory lock on a file, used to make
// a read-modify-write of the recent list single-writer across processes.
package lock

import (
	"github.com/gofrs/flock"
)

// FileLock provides exclusive file-based locking using flock.
type FileLock struct {
	path string
	fl   *flock.Flock
}

// NewFileLock creates a new file lock for the given path.
// The lock file will be created if it doesn't exist.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path, fl: flock.New(path)}
}

// Path returns the lock file path.
func (l *FileLock) Path() string {
	return l.path
}

// Lock acquires an exclusive lock on the file.
// Blocks until the lock is acquired.
func (l *FileLock) Lock() error {
	return l.fl.Lock()
}

// TryLock attempts to acquire the lock without blocking.
// Returns false if another holder owns it.
func (l *FileLock) TryLock() (bool, error) {
	return l.fl.TryLock()
}

// Locked reports whether this handle currently holds the lock.
func (l *FileLock) Locked() bool {
	return l.fl.Locked()
}

// Unlock releases the lock. Unlocking a lock that is not held is a no-op.
func (l *FileLock) Unlock() error {
	return l.fl.Unlock()
}
