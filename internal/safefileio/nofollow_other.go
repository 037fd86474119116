//go:build !unix

package safefileio

// Platforms without O_NOFOLLOW rely on the regular file check alone.
const (
	noFollow = 0
	nonBlock = 0
)

func isNoFollowError(error) bool {
	return false
}
