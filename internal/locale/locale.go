// Package locale resolves which locale a request or link belongs to.
//
// Everything here is a pure function of its inputs. A Set is immutable once
// built, so one Set can be shared by every request handler and renderer
// without locking.
//
// URL convention: a locale is the first path segment ("/de/docs"). The
// default locale is served without a prefix when links are generated, so
// LocalizeHref never prefixes it.
//
// Case handling: path segments are compared case-sensitively against the
// supported set. Accept-Language negotiation lower-cases the base tag before
// comparing. The two are deliberately not unified; see DESIGN.md.
package locale

import (
	"errors"
	"fmt"
	"slices"

	"github.com/openticketai/sitekit/internal/path"
	"golang.org/x/text/language"
)

var (
	// ErrNoLocales is returned when a Set is built without any locales.
	ErrNoLocales = errors.New("no supported locales")
	// ErrInvalidLocale is returned for a locale code that is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")
	// ErrDefaultNotSupported is returned when the default is not in the supported set.
	ErrDefaultNotSupported = errors.New("default locale not in supported set")
)

// Set is the statically configured list of supported locales plus the
// designated default. The default is always a member.
type Set struct {
	supported []string
	def       string
}

// NewSet validates and builds a locale set.
//
// Validation rules:
//   - at least one locale
//   - every code parses as a BCP 47 tag
//   - no duplicates
//   - default is a member
func NewSet(supported []string, def string) (Set, error) {
	if len(supported) == 0 {
		return Set{}, ErrNoLocales
	}
	seen := make(map[string]bool, len(supported))
	for _, code := range supported {
		if code == "" {
			return Set{}, fmt.Errorf("%w: empty code", ErrInvalidLocale)
		}
		if _, err := language.Parse(code); err != nil {
			return Set{}, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, code, err)
		}
		if seen[code] {
			return Set{}, fmt.Errorf("%w: duplicate %q", ErrInvalidLocale, code)
		}
		seen[code] = true
	}
	if !seen[def] {
		return Set{}, fmt.Errorf("%w: %q", ErrDefaultNotSupported, def)
	}
	return Set{supported: slices.Clone(supported), def: def}, nil
}

// MustSet is NewSet for static configuration; it panics on invalid input.
func MustSet(supported []string, def string) Set {
	s, err := NewSet(supported, def)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the default locale.
func (s Set) Default() string { return s.def }

// Supported returns a copy of the supported locales in configured order.
func (s Set) Supported() []string { return slices.Clone(s.supported) }

// Contains reports whether code is a supported locale (exact match).
func (s Set) Contains(code string) bool {
	return slices.Contains(s.supported, code)
}

// HasLocalePrefix reports whether the segment after the leading slash of p is a
// supported locale.
func (s Set) HasLocalePrefix(p string) bool {
	return s.Contains(path.FirstSegment(p))
}

// LocaleFromPath returns the locale named by the first segment of p, or the
// default when that segment is not a supported locale.
func (s Set) LocaleFromPath(p string) string {
	if seg := path.FirstSegment(p); s.Contains(seg) {
		return seg
	}
	return s.def
}

// LocalizeHref turns a canonical link into the link for target.
//
// Only internal absolute links are rewritten, and only when they carry no
// locale yet and target is not the default. Everything else comes back
// unchanged, which makes the operation idempotent.
func (s Set) LocalizeHref(href, target string) string {
	if ClassifyLink(href) != InternalAbsolute {
		return href
	}
	if s.HasLocalePrefix(href) || target == s.def {
		return href
	}
	return "/" + target + href
}

// IsLocaleSegment reports whether seg has the shape of a locale URL segment:
// exactly two lower-case ASCII letters.
//
// This is the only place that shape is defined. Region-qualified segments
// such as "en-us" are not recognised.
func IsLocaleSegment(seg string) bool {
	if len(seg) != 2 {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < 'a' || seg[i] > 'z' {
			return false
		}
	}
	return true
}
