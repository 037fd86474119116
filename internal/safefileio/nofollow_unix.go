//go:build unix

package safefileio

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

const (
	noFollow = unix.O_NOFOLLOW
	// nonBlock lets a FIFO open return at once so it can be rejected
	nonBlock = unix.O_NONBLOCK
)

// isNoFollowError checks if the error indicates we tried to open a symlink
func isNoFollowError(err error) bool {
	var e *os.PathError
	if !errors.As(err, &e) {
		return false
	}
	return errors.Is(e.Err, unix.ELOOP) || errors.Is(e.Err, unix.EMLINK)
}
