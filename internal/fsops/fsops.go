package fsops

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// IsDir checks if a path is a directory
func IsDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// RequireFile returns an error naming why path is not a usable regular file.
// The returned error wraps the underlying stat error, so os.ErrNotExist can be
// tested with errors.Is.
func RequireFile(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory: %w", path, os.ErrNotExist)
	}
	return nil
}
