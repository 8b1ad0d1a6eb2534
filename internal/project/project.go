// Package project manages the .gitignore of a project's .sitekit
// directory.
//
// The configuration in .sitekit/config.yaml is meant to be committed. The
// run history is per-machine state and is ignored unless a project chooses
// to share it.
package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const localHeader = "# Local state (not committed)"

// GitignorePath returns the .gitignore path inside dir.
func GitignorePath(dir string) string {
	return filepath.Join(dir, ".gitignore")
}

// readLines returns the trimmed lines of the gitignore in dir and its raw
// content. A missing file yields no lines.
func readLines(dir string) ([]string, string, error) {
	content, err := os.ReadFile(GitignorePath(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines, string(content), nil
}

// Ignore adds entry to the gitignore in dir, creating the directory and
// file as needed. Existing content and formatting are preserved.
func Ignore(dir, entry string) error {
	lines, s, err := readLines(dir)
	if err != nil {
		return err
	}
	if slices.Contains(lines, entry) {
		return nil
	}

	if !slices.Contains(lines, localHeader) {
		if s != "" && !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		if s != "" {
			s += "\n"
		}
		s += localHeader + "\n"
	}
	s += entry + "\n"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(GitignorePath(dir), []byte(s), 0o644)
}

// Unignore removes entry from the gitignore in dir. The header goes too
// when no entries remain under it. A missing file is not an error.
func Unignore(dir, entry string) error {
	_, s, err := readLines(dir)
	if err != nil || s == "" {
		return err
	}

	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != entry {
			out = append(out, line)
		}
	}

	result := strings.Join(out, "\n")
	if idx := strings.Index(result, localHeader); idx != -1 {
		if strings.TrimSpace(result[idx+len(localHeader):]) == "" {
			result = strings.TrimRight(result[:idx], "\n")
			if result != "" {
				result += "\n"
			}
		}
	}
	return os.WriteFile(GitignorePath(dir), []byte(result), 0o644)
}

// IsIgnored reports whether entry is listed in the gitignore in dir.
func IsIgnored(dir, entry string) (bool, error) {
	lines, _, err := readLines(dir)
	if err != nil {
		return false, err
	}
	return slices.Contains(lines, entry), nil
}
