// skip.go implements the redirect skip heuristic as an ordered rule list.
//
// Requests for assets must not be bounced through the locale redirect. There
// is no reliable signal for "this is an asset", so the decision is a list of
// named heuristics evaluated in order. Naming each rule keeps the heuristic
// visible in logs and lets tests target one rule at a time.

package locale

import "strings"

// DefaultSkipPrefixes are the non-document path prefixes of the site.
var DefaultSkipPrefixes = []string{
	"/assets/",   // bundled css/js
	"/images/",   // raster images
	"/icons/",    // favicons and svg icons
	"/diagrams/", // generated diagrams
	"/examples/", // generated example bundles
	"/api/",      // API routes
	"/_astro/",   // generator output
	"/_vercel/",  // platform-internal routes
	"/.well-known/",
}

// SkipRule is one named predicate of the skip heuristic.
type SkipRule struct {
	Name  string
	Match func(path string) bool
}

// PrefixRule skips every path under prefix.
func PrefixRule(prefix string) SkipRule {
	return SkipRule{
		Name: "prefix " + prefix,
		Match: func(p string) bool {
			return strings.HasPrefix(p, prefix)
		},
	}
}

// StaticFileRule skips paths that look like a file rather than a document:
// they contain a "." and neither end in ".html" nor in "/".
func StaticFileRule() SkipRule {
	return SkipRule{
		Name: "static file",
		Match: func(p string) bool {
			if strings.HasSuffix(p, "/") || strings.HasSuffix(p, ".html") {
				return false
			}
			return strings.Contains(p, ".")
		},
	}
}

// Skipper evaluates skip rules in order.
type Skipper struct {
	rules []SkipRule
}

// NewSkipper builds a skipper with one prefix rule per prefix followed by the
// static file rule. A nil prefixes slice uses DefaultSkipPrefixes.
func NewSkipper(prefixes []string) *Skipper {
	if prefixes == nil {
		prefixes = DefaultSkipPrefixes
	}
	rules := make([]SkipRule, 0, len(prefixes)+1)
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		rules = append(rules, PrefixRule(p))
	}
	rules = append(rules, StaticFileRule())
	return &Skipper{rules: rules}
}

// NewSkipperRules builds a skipper from explicit rules.
func NewSkipperRules(rules ...SkipRule) *Skipper {
	return &Skipper{rules: rules}
}

// Rules returns the rules in evaluation order.
func (s *Skipper) Rules() []SkipRule { return s.rules }

// Skip reports whether path bypasses the locale redirect, and which rule matched.
func (s *Skipper) Skip(path string) (bool, string) {
	for _, r := range s.rules {
		if r.Match(path) {
			return true, r.Name
		}
	}
	return false, ""
}

// ShouldSkipLocaleRedirect applies the default rules to path.
func ShouldSkipLocaleRedirect(path string) bool {
	skip, _ := defaultSkipper.Skip(path)
	return skip
}

var defaultSkipper = NewSkipper(nil)
