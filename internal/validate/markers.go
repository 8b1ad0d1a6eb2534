// markers.go implements the locale marker check on key pages.
//
// This is a smoke check on a short, configured list of critical pages, not
// exhaustive coverage. Pages that match no key-page pattern are not checked.

package validate

import (
	"fmt"
	"slices"

	"github.com/openticketai/sitekit/internal/glob"
	"github.com/openticketai/sitekit/internal/site"
)

// DefaultKeyPages checks only the home page of every locale.
var DefaultKeyPages = []string{"/{locale}/"}

// KeyPages returns the localised documents matching any pattern, with
// {locale} expanded to each document's own locale.
func KeyPages(docs []site.Document, patterns []string) ([]site.Document, error) {
	var out []site.Document
	for _, d := range docs {
		if d.Locale == "" {
			continue
		}
		_, ok, err := glob.MatchAny(patterns, d.Locale, d.URLPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// Markers requires every key page to contain an element whose attr value
// equals the page's locale. A page with no marker yields Found == nil; a page
// whose markers all differ yields the first value found.
//
// The markers themselves are read when the document is loaded, so attr is
// only used in violation details.
func Markers(docs []site.Document, patterns []string, attr string) ([]Violation, error) {
	keys, err := KeyPages(docs, patterns)
	if err != nil {
		return nil, err
	}

	var out []Violation
	for _, d := range keys {
		if slices.Contains(d.Markers, d.Locale) {
			continue
		}
		v := Violation{
			Check:    CheckMarkers,
			Page:     d.URLPath,
			File:     d.File,
			Expected: d.Locale,
		}
		if len(d.Markers) == 0 {
			v.Detail = fmt.Sprintf("no element carries %s", attr)
		} else {
			v.Found = strPtr(d.Markers[0])
			v.Detail = fmt.Sprintf("%s=%q", attr, d.Markers[0])
		}
		out = append(out, v)
	}
	SortViolations(out)
	return out, nil
}

// ValidatePatterns checks key-page patterns for syntax errors.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if err := glob.Validate(p); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidPattern, p, err)
		}
	}
	return nil
}
