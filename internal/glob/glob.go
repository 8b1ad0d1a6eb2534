// Package glob matches URL paths against key-page patterns.
//
// Patterns are URL paths using path.Match syntax (*, ?, [...]) plus "**" for
// any number of segments and a "{locale}" placeholder that Expand replaces
// with a concrete locale before matching:
//
//	"/{locale}/"          home page of every locale
//	"/{locale}/products/" one section page
//	"/{locale}/docs/**"   every page under docs
package glob

import (
	"path"
	"strings"
)

// LocalePlaceholder is replaced by Expand.
const LocalePlaceholder = "{locale}"

// Expand substitutes loc for every {locale} placeholder in pattern.
func Expand(pattern, loc string) string {
	return strings.ReplaceAll(pattern, LocalePlaceholder, loc)
}

// Match reports whether the URL path p matches pattern.
// Trailing slashes are significant only when the pattern has one: "/en/"
// matches "/en/" but "/en/*" also matches "/en/docs/".
// Returns an error if the pattern is malformed.
func Match(pattern, p string) (bool, error) {
	if strings.Contains(pattern, "**") {
		parts := strings.SplitN(pattern, "**", 2)
		prefix := parts[0]
		suffix := strings.TrimPrefix(parts[1], "/")

		if !strings.HasPrefix(p, prefix) {
			return false, nil
		}
		if suffix == "" {
			return true, nil
		}
		// Match the suffix against every tail of the remaining segments
		segments := strings.Split(strings.TrimPrefix(p, prefix), "/")
		for i := range segments {
			tail := strings.Join(segments[i:], "/")
			m, err := path.Match(suffix, tail)
			if err != nil {
				return false, err
			}
			if m {
				return true, nil
			}
		}
		return false, nil
	}

	if m, err := path.Match(pattern, p); err != nil || m {
		return m, err
	}
	// "/en/*" should also match the directory URL "/en/docs/"
	if strings.HasSuffix(p, "/") && !strings.HasSuffix(pattern, "/") {
		return path.Match(pattern, strings.TrimSuffix(p, "/"))
	}
	return false, nil
}

// MatchAny reports whether p matches any pattern after expanding {locale}
// with loc. It returns the first matching (unexpanded) pattern.
func MatchAny(patterns []string, loc, p string) (string, bool, error) {
	for _, pat := range patterns {
		m, err := Match(Expand(pat, loc), p)
		if err != nil {
			return "", false, err
		}
		if m {
			return pat, true, nil
		}
	}
	return "", false, nil
}

// Validate reports whether pattern is syntactically valid.
func Validate(pattern string) error {
	for _, part := range strings.Split(Expand(pattern, "xx"), "**") {
		if _, err := path.Match(part, ""); err != nil {
			return err
		}
	}
	return nil
}
