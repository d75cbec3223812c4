package fileutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockRetryDelay = 50 * time.Millisecond
	lockTimeout    = 5 * time.Second
)

// ErrLocked reports that another process holds the target's lock.
var ErrLocked = errors.New("output file is locked")

// OutputPath derives the cleaned file path next to input: the suffix is
// inserted between the stem and the last extension.
func OutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	return stem + suffix + ext
}

// LockPath returns the advisory lock file used for target.
func LockPath(target string) string {
	return target + ".lock"
}

// WriteFileLocked writes data to target through a temp file and rename while
// holding an advisory lock on <target>.lock, which is left in place. An existing target keeps its
// permissions; new files get mode.
func WriteFileLocked(ctx context.Context, target string, data []byte, mode os.FileMode) error {
	if ctx == nil {
		ctx = context.Background()
	}
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	lockPath := LockPath(target)
	lock := flock.New(lockPath)
	ok, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%w: %s", ErrLocked, target)
		}
		return fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, target)
	}
	// The lock file stays on disk: removing it would let a waiter on the old
	// inode and a newcomer on a fresh file hold the lock at once.
	defer func() { _ = lock.Unlock() }()

	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}
	return writeAtomic(target, data, mode)
}

func writeAtomic(target string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		cleanup()
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
