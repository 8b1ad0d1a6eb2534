// accept.go implements Accept-Language negotiation.
//
// The header is parsed by hand rather than with language.ParseAcceptLanguage
// because the matching rule is narrower than BCP 47 matching: an entry matches
// when its full tag or its lower-cased base tag is a supported locale, and
// entries of equal weight keep their header order.

package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Preference is one parsed Accept-Language entry.
type Preference struct {
	Tag  string  // tag as written, e.g. "en-US"
	Base string  // lower-cased part before the first "-", e.g. "en"
	Q    float64 // weight, 1.0 when absent or unparseable
}

// ParseAcceptLanguage splits an Accept-Language value into entries sorted by
// descending weight. Ties keep header order. Empty entries are dropped.
func ParseAcceptLanguage(header string) []Preference {
	var prefs []Preference
	for _, entry := range strings.Split(header, ",") {
		parts := strings.Split(entry, ";")
		tag := strings.TrimSpace(parts[0])
		if tag == "" {
			continue
		}
		base, _, _ := strings.Cut(tag, "-")
		prefs = append(prefs, Preference{
			Tag:  tag,
			Base: strings.ToLower(base),
			Q:    parseQ(parts[1:]),
		})
	}
	slices.SortStableFunc(prefs, func(a, b Preference) int {
		return cmp.Compare(b.Q, a.Q)
	})
	return prefs
}

// parseQ returns the q parameter among params, or 1.0.
func parseQ(params []string) float64 {
	for _, p := range params {
		k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(k), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 1.0
		}
		return q
	}
	return 1.0
}

// PreferredLocale picks the supported locale a visitor asked for most.
// Falls back to the default for an empty header or when nothing matches.
func (s Set) PreferredLocale(header string) string {
	for _, p := range ParseAcceptLanguage(header) {
		if s.Contains(p.Tag) {
			return p.Tag
		}
		if s.Contains(p.Base) {
			return p.Base
		}
	}
	return s.def
}
