// filter.go selects documents for listing.

package site

import (
	"strings"

	"github.com/openticketai/sitekit/internal/path"
)

// Filter narrows a document list.
type Filter struct {
	Locale string // only pages of this locale; "-" selects unlocalised pages
	Prefix string // only pages under this URL path
	Direct bool   // with Prefix, only direct children
}

// Apply returns the documents matching f, in their original order.
func (f Filter) Apply(docs []Document) []Document {
	var out []Document
	for _, d := range docs {
		if f.Locale == "-" && d.Locale != "" {
			continue
		}
		if f.Locale != "" && f.Locale != "-" && d.Locale != f.Locale {
			continue
		}
		if f.Prefix != "" {
			if f.Direct {
				if !path.Direct(d.URLPath, f.Prefix) {
					continue
				}
			} else if !underPrefix(d.URLPath, f.Prefix) {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}

// underPrefix matches whole segments: "/en/doc" is not under "/en/do".
func underPrefix(p, prefix string) bool {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		return true
	}
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}
