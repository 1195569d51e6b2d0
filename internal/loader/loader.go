// Package loader is the buffer collaborator: it resolves diff-header paths
// against a root directory and moves line buffers between disk and memory.
// The engine itself never reads or writes files; everything here runs only
// on an explicit request from the caller.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve joins a root-relative or absolute path with the root directory and
// rejects results that escape the root.
func Resolve(root, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty target path")
	}

	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(root, full)
	}
	full = filepath.Clean(full)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root: %w", err)
	}
	if full != absRoot && !strings.HasPrefix(full, absRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes root %s", path, root)
	}
	return full, nil
}

// LoadLines reads a file into a line buffer. A trailing newline does not
// produce a final empty line; files are treated as ordered sequences of
// lines, nothing more.
func LoadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return []string{}, nil
	}
	return strings.Split(content, "\n"), nil
}

// SaveLines writes a line buffer back to path atomically: the content goes
// to a temp file in the same directory first, then renames over the target.
func SaveLines(path string, lines []string) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".patchpick-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	content := strings.Join(lines, "\n") + "\n"
	if _, err := tempFile.WriteString(content); err != nil {
		tempFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Preserve the original file's permissions when it exists.
	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tempPath, info.Mode())
	} else {
		_ = os.Chmod(tempPath, 0644)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
