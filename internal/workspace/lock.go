package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock guards a work directory against concurrent scribe runs.
type Lock struct {
	path string
	lock *flock.Flock
}

// NewLock prepares a lock file inside workDir. The directory is created if
// missing; the lock is not held until Acquire succeeds.
func NewLock(workDir string) (*Lock, error) {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure work dir: %w", err)
	}
	path := filepath.Join(workDir, "scribe.lock")
	return &Lock{path: path, lock: flock.New(path)}, nil
}

// Acquire takes the lock without blocking. It fails when another process
// already holds it.
func (l *Lock) Acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another scribe run holds %s", l.path)
	}
	return nil
}

// Release drops the lock. Releasing an unheld lock is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}
