// link.go implements link classification.
//
// Classification runs before any locale transformation so the four link
// categories never overlap: a string is checked for a URI scheme first, then
// for a fragment, then for an absolute path.

package locale

import "strings"

// LinkKind is the category of an href.
type LinkKind int

const (
	// Other is anything not covered below: relative paths, empty strings.
	Other LinkKind = iota
	// External has a URI scheme (https:, mailto:, tel:, ...).
	External
	// Fragment is an in-page reference starting with "#".
	Fragment
	// InternalAbsolute starts with "/" and has no scheme.
	InternalAbsolute
)

// String returns the lower-case name of the kind.
func (k LinkKind) String() string {
	switch k {
	case External:
		return "external"
	case Fragment:
		return "fragment"
	case InternalAbsolute:
		return "internal"
	default:
		return "other"
	}
}

// ClassifyLink returns the category of href. It is total over all strings.
func ClassifyLink(href string) LinkKind {
	switch {
	case HasScheme(href):
		return External
	case strings.HasPrefix(href, "#"):
		return Fragment
	case strings.HasPrefix(href, "/"):
		return InternalAbsolute
	default:
		return Other
	}
}

// HasScheme reports whether s starts with "scheme:", where scheme is a letter
// followed by letters, digits, '+', '-' or '.'.
func HasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isLetter(c):
		case i > 0 && (isDigit(c) || c == '+' || c == '-' || c == '.'):
		case i > 0 && c == ':':
			return true
		default:
			return false
		}
	}
	return false
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
