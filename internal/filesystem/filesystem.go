package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem exposes the filesystem queries used before touching a target directory.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Abs(path string) (string, error)
}

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Abs resolves an absolute path.
func (OSFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Exists reports whether path is present. Errors other than a missing path are returned.
func Exists(fileSystem FileSystem, path string) (bool, error) {
	_, statError := fileSystem.Stat(path)
	if statError == nil {
		return true, nil
	}
	if errors.Is(statError, fs.ErrNotExist) {
		return false, nil
	}
	return false, statError
}

// Resolve joins a relative path onto workingDirectory. Absolute paths and an empty working
// directory leave path unchanged.
func Resolve(workingDirectory string, path string) string {
	if len(workingDirectory) == 0 || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workingDirectory, path)
}
