package filesystem_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/ghzero/internal/filesystem"
)

type failingFileSystem struct {
	filesystem.OSFileSystem
	err error
}

func (fileSystem failingFileSystem) Stat(string) (fs.FileInfo, error) {
	return nil, fileSystem.err
}

func TestExists(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	existingPath := filepath.Join(temporaryDirectory, "present")
	require.NoError(testInstance, os.Mkdir(existingPath, 0o755))

	present, presentError := filesystem.Exists(filesystem.OSFileSystem{}, existingPath)
	require.NoError(testInstance, presentError)
	require.True(testInstance, present)

	absent, absentError := filesystem.Exists(filesystem.OSFileSystem{}, filepath.Join(temporaryDirectory, "absent"))
	require.NoError(testInstance, absentError)
	require.False(testInstance, absent)

	permissionError := errors.New("permission denied")
	_, failure := filesystem.Exists(failingFileSystem{err: permissionError}, existingPath)
	require.ErrorIs(testInstance, failure, permissionError)
}

func TestResolve(testInstance *testing.T) {
	testCases := []struct {
		name             string
		workingDirectory string
		path             string
		expected         string
	}{
		{name: "relative_joined", workingDirectory: "/work", path: "repo", expected: filepath.Join("/work", "repo")},
		{name: "absolute_kept", workingDirectory: "/work", path: "/tmp/repo", expected: "/tmp/repo"},
		{name: "no_working_directory", workingDirectory: "", path: "repo", expected: "repo"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expected, filesystem.Resolve(testCase.workingDirectory, testCase.path))
		})
	}
}

func TestOSFileSystemAbs(testInstance *testing.T) {
	absolutePath, absError := filesystem.OSFileSystem{}.Abs("relative")
	require.NoError(testInstance, absError)
	require.True(testInstance, filepath.IsAbs(absolutePath))
}
