// Package pathcheck answers the single question reconciliation asks of the
// filesystem: does this path exist.
//
// Existence, not readability, is the criterion. A path that resolves to a
// directory, an unreadable file, or a zero-length file counts as found;
// tightening that would change which catalog rows survive a sweep. Any stat
// failure -- missing file, broken symlink, permission denied on a parent,
// transient I/O error -- classifies the path as missing rather than failing
// the run, so one bad path can never abort reconciliation.
package pathcheck

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

// Checker reports filesystem existence for catalog paths.
type Checker struct {
	logger *slog.Logger
}

// New returns a Checker. Indeterminate checks (stat errors other than
// not-exist) are logged at debug level through logger; pass nil to discard.
func New(logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Checker{logger: logger}
}

// Exists reports whether path resolves to anything on the filesystem.
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	if !errors.Is(err, fs.ErrNotExist) {
		// Permission or I/O trouble: indistinguishable from missing for
		// classification purposes, but worth a trace when debugging.
		c.logger.Debug("existence check indeterminate, treating as missing",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
	return false
}
