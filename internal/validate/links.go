// links.go implements the cross-locale link check.

package validate

import "github.com/openticketai/sitekit/internal/site"

// Links reports every anchor on a localised page that resolves into a
// different locale's page tree. Links to unlocalised paths are allowed, as
// are external links and fragments. Pages without a locale are not checked.
func Links(docs []site.Document) []Violation {
	var out []Violation
	for _, d := range docs {
		if d.Locale == "" {
			continue
		}
		for _, href := range d.Anchors {
			a := site.ResolveAnchor(href, d.URLPath)
			if a.External {
				continue
			}
			linkLocale := site.LocaleOfPath(a.Resolved)
			if linkLocale == "" || linkLocale == d.Locale {
				continue
			}
			out = append(out, Violation{
				Check:    CheckLinks,
				Page:     d.URLPath,
				File:     d.File,
				Href:     href,
				Expected: d.Locale,
				Found:    strPtr(linkLocale),
			})
		}
	}
	SortViolations(out)
	return out
}
