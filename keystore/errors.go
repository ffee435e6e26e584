package keystore

import (
	"errors"
	"io/fs"
)

// FileExistsError is returned when a new key file name is already taken
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return "key file already exists: " + e.Path
}

func (e *FileExistsError) Unwrap() error {
	return fs.ErrExist
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var target *FileExistsError
	return errors.As(err, &target)
}
