// Package path provides URL path helpers for built site output.
//
// Every page in the output directory maps to exactly one URL path. The
// mapping mirrors how a static host rewrites requests:
//   - "index.html" serves its containing directory ("/de/" for de/index.html)
//   - any other "name.html" serves "name/" ("/de/pricing/" for de/pricing.html)
//
// URL paths produced here always start with "/" and use forward slashes,
// whatever the host OS.
package path

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot indicates a file does not live under the output root.
var ErrOutsideRoot = errors.New("file outside output root")

// FromFile maps a file under root to the URL path a static host serves it at.
func FromFile(root, file string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", ErrOutsideRoot
	}

	switch {
	case rel == "index.html":
		return "/", nil
	case strings.HasSuffix(rel, "/index.html"):
		return "/" + strings.TrimSuffix(rel, "index.html"), nil
	case strings.HasSuffix(rel, ".html"):
		return "/" + strings.TrimSuffix(rel, ".html") + "/", nil
	default:
		return "/" + rel, nil
	}
}

// Segments splits a URL path into its non-empty segments.
//
// Examples:
//   - "/de/docs/" -> ["de", "docs"]
//   - "//x" -> ["x"]
//   - "/" -> []
func Segments(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// FirstSegment returns the segment after the single leading slash of a URL
// path, or "". "//en/x" has an empty first segment.
// Query strings and fragments are not part of the segment.
func FirstSegment(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

// Direct reports whether path is a direct child of prefix.
// Both are URL paths; trailing slashes are ignored.
//
// Examples (prefix="/docs"):
//   - "/docs/setup/" -> true (direct child)
//   - "/docs/api/auth/" -> false (nested)
//   - "/docs/" -> true (exact match)
func Direct(path, prefix string) bool {
	path = strings.Trim(path, "/")
	prefix = strings.Trim(prefix, "/")

	if path == prefix {
		return true
	}

	var remainder string
	if prefix == "" {
		remainder = path
	} else if strings.HasPrefix(path, prefix+"/") {
		remainder = path[len(prefix)+1:]
	} else {
		return false
	}

	return !strings.Contains(remainder, "/")
}
