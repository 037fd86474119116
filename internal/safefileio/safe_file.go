package safefileio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File is the subset of *os.File that validateFile needs.
type File interface {
	Stat() (os.FileInfo, error)
}

// ReadFile reads a regular file of at most limit bytes. Devices, pipes and
// directories are rejected, so that a config path cannot block or exhaust
// memory.
func ReadFile(filePath string, limit int64) (content []byte, err error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilePath, err)
	}

	// #nosec G304 - the path is chosen by the user running the tool
	file, err := os.OpenFile(absPath, os.O_RDONLY|nonBlock, 0)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	fileInfo, err := validateFile(file, filePath)
	if err != nil {
		return nil, err
	}
	if fileInfo.Size() > limit {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrFileTooLarge, filePath, fileInfo.Size(), limit)
	}

	content, err = io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	// the file may have grown since Stat
	if int64(len(content)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrFileTooLarge, filePath, limit)
	}
	return content, nil
}

// OpenAppend opens filePath for appending, creating it with perm when it
// does not exist. A symbolic link as the final component is refused with
// ErrIsSymlink, and the opened file must be a regular file.
func OpenAppend(filePath string, perm os.FileMode) (*os.File, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilePath, err)
	}

	// #nosec G304 - the path is validated after opening
	file, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND|noFollow, perm)
	if err != nil {
		if isNoFollowError(err) {
			return nil, fmt.Errorf("%w: %s", ErrIsSymlink, filePath)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	if _, err := validateFile(file, filePath); err != nil {
		_ = file.Close()
		return nil, err
	}
	return file, nil
}

// validateFile checks if the file is a regular file and returns its FileInfo
// To prevent TOCTOU attacks, we use the file descriptor to get the file info
func validateFile(file File, filePath string) (os.FileInfo, error) {
	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: not a regular file: %s", ErrInvalidFilePath, filePath)
	}

	return fileInfo, nil
}
