//go:build unix

package safefileio

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestReadFile_RejectsFIFOWithoutBlocking(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.fifo")
	require.NoError(t, unix.Mkfifo(path, 0o600))

	done := make(chan error, 1)
	go func() {
		_, err := ReadFile(path, 1024)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrInvalidFilePath)
	case <-time.After(5 * time.Second):
		t.Fatal("ReadFile blocked on a FIFO with no writer")
	}
}
