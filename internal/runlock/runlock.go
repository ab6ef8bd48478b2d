// Package runlock guards a catalog against concurrent mediasweep runs.
//
// The catalog store carries no coordination of its own beyond SQLite's
// locking, and two interleaved deletion plans computed from the same
// snapshot would race each other. A flock-based lock file keeps one run per
// catalog; it is advisory and costs nothing when uncontended.
package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock is a held run lock. Release it when the run finishes.
type Lock struct {
	fl   *flock.Flock
	path string
}

// Acquire takes the lock at path without blocking. A held lock means another
// run is active; the caller should refuse to start rather than wait.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another mediasweep run is already active (lock %s)", path)
	}
	return &Lock{fl: fl, path: path}, nil
}

// Release lets the next run proceed.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}
