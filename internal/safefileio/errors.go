// Package safefileio opens the files decodeck reads and writes on behalf of
// the user: the configuration file and the log file. Reads are bounded and
// restricted to regular files; appends refuse to follow a symbolic link in
// the final path component.
package safefileio

import "errors"

var (
	// ErrInvalidFilePath indicates that the specified file path is invalid.
	ErrInvalidFilePath = errors.New("invalid file path")

	// ErrIsSymlink indicates that the specified path is a symbolic link, which is not allowed.
	ErrIsSymlink = errors.New("path is a symbolic link")

	// ErrFileTooLarge indicates that the file is too large.
	ErrFileTooLarge = errors.New("file too large")
)
