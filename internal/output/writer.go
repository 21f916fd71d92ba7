// Package output writes generated files below the output directory.
package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
)

// WriteFile writes content to relativePath under outDir and returns the full path.
//
// Parent directories are created as needed and an existing file is overwritten.
// relativePath uses forward slashes and must stay inside outDir.
func WriteFile(outDir, relativePath string, content []byte) (string, error) {
	if outDir == "" {
		return "", ferrors.InternalError("output directory is required", nil)
	}
	if relativePath == "" {
		return "", ferrors.InternalError("output path is required", nil)
	}

	cleanRel := filepath.Clean(filepath.FromSlash(relativePath))
	if filepath.IsAbs(cleanRel) || cleanRel == ".." || strings.HasPrefix(cleanRel, ".."+string(filepath.Separator)) {
		return "", ferrors.WriteFailed(relativePath, errors.New("path escapes output directory"))
	}
	fullPath := filepath.Join(outDir, cleanRel)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", ferrors.CreateDirFailed(dir, err)
	}

	// #nosec G306 -- generated documentation is meant to be world-readable.
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return "", ferrors.WriteFailed(fullPath, err)
	}
	return fullPath, nil
}

// EnsureDir creates dir and its parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return ferrors.CreateDirFailed(dir, err)
	}
	return nil
}
