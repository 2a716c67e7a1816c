// Package ioutils provides file system utilities for namechange.
package ioutils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// ErrTargetExists is returned by RenameFile when the new name is already taken.
var ErrTargetExists = errors.New("target file already exists")

// ListFiles returns the names of the regular files in dir, sorted.
//
// Subdirectories and symlinks to directories are left out. Only names are
// returned; join them with dir to get paths.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// RenameFile renames dir/oldName to dir/newName.
//
// Existing files are never overwritten: if newName already exists and is not
// the same file as oldName, ErrTargetExists is returned. Renaming a file to
// its own name is a no-op. Case-only renames on case-insensitive file
// systems are allowed because both names resolve to the same file.
func RenameFile(ctx context.Context, dir, oldName, newName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if oldName == newName {
		return nil
	}

	oldPath := filepath.Join(dir, oldName)
	newPath := filepath.Join(dir, newName)

	oldInfo, err := os.Stat(oldPath)
	if err != nil {
		return err
	}
	if newInfo, err := os.Stat(newPath); err == nil {
		if !os.SameFile(oldInfo, newInfo) {
			return fmt.Errorf("%w: %s", ErrTargetExists, newName)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	return os.Rename(oldPath, newPath)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var (
	invalidChars    = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots    = regexp.MustCompile(`\.+$`)
	multipleSpacing = regexp.MustCompile(`\s+`)
)

// SanitizeFileName removes or replaces characters that are invalid in file names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("AC/DC - 01 - T.N.T..mp3") // Returns "AC_DC - 01 - T.N.T..mp3"
//	SanitizeFileName("Track...")              // Returns "Track"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = multipleSpacing.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// EnsureDir creates a directory and all parent directories if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
