package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadSource resolves relPath to an absolute path and returns it together
// with the file contents.
func ReadSource(relPath string) (fullPath string, src string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return fullPath, "", fmt.Errorf("failed to read input file %q: %w", relPath, err)
	}

	return fullPath, string(data), nil
}
