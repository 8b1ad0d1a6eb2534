// anchor.go implements href resolution relative to the page that contains it.

package site

import (
	"net/url"
	"strings"

	"github.com/openticketai/sitekit/internal/locale"
)

// host is the synthetic authority relative hrefs are resolved against.
// Only the path of the result is used.
const host = "site.invalid"

// asciiSpace is the HTML definition of whitespace around an attribute URL.
const asciiSpace = " \t\n\f\r"

// tabOrNewline is removed from anywhere in a URL before parsing.
var tabOrNewline = strings.NewReplacer("\t", "", "\n", "", "\r", "")

// Anchor is the result of resolving one href.
type Anchor struct {
	Href     string
	External bool   // scheme, bare fragment, other host, or unparseable
	Resolved string // absolute URL path when not External
	Err      error  // parse failure; set only when External
}

// ResolveAnchor resolves href as a browser would on a page served at base.
// It never fails: malformed hrefs come back as External with Err set, so a
// broken attribute skips one link instead of aborting validation.
//
// Surrounding whitespace is trimmed and tabs and newlines are dropped, as
// browsers do. base is a decoded URL path.
func ResolveAnchor(href, base string) Anchor {
	a := Anchor{Href: href}
	ref := tabOrNewline.Replace(strings.Trim(href, asciiSpace))
	if locale.HasScheme(ref) || strings.HasPrefix(ref, "#") {
		a.External = true
		return a
	}

	baseURL := &url.URL{Scheme: "http", Host: host, Path: base}
	refURL, err := url.Parse(ref)
	if err != nil {
		a.External, a.Err = true, err
		return a
	}

	u := baseURL.ResolveReference(refURL)
	if u.Host != baseURL.Host {
		// Protocol-relative href to another host
		a.External = true
		return a
	}
	a.Resolved = u.Path
	if a.Resolved == "" {
		a.Resolved = "/"
	}
	return a
}
