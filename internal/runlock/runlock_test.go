package runlock_test

import (
	"path/filepath"
	"testing"

	"mediasweep/internal/runlock"
)

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locks", "mediasweep.lock")

	lock, err := runlock.Acquire(path)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if lock.Path() != path {
		t.Fatalf("unexpected lock path %s", lock.Path())
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	// Reacquire after release.
	lock, err = runlock.Acquire(path)
	if err != nil {
		t.Fatalf("reacquire failed: %v", err)
	}
	defer lock.Release()
}

func TestAcquireContended(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediasweep.lock")

	held, err := runlock.Acquire(path)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer held.Release()

	if _, err := runlock.Acquire(path); err == nil {
		t.Fatal("expected second Acquire to fail while lock is held")
	}
}

func TestReleaseNil(t *testing.T) {
	var lock *runlock.Lock
	if err := lock.Release(); err != nil {
		t.Fatalf("nil Release must be a no-op, got %v", err)
	}
}
