// violation.go defines the structured finding produced by each check.

package validate

import (
	"cmp"
	"fmt"
	"slices"
)

// Check names one validation rule.
type Check string

const (
	CheckLinks       Check = "localized-links"
	CheckMarkers     Check = "localized-markers"
	CheckBrokenLinks Check = "broken-links"
)

// Violation is one rule breach.
type Violation struct {
	Check    Check   `json:"check"`
	Page     string  `json:"page,omitempty"` // URL path of the offending page
	File     string  `json:"file,omitempty"`
	Href     string  `json:"href,omitempty"`     // offending link, or broken-link log entry
	Expected string  `json:"expected,omitempty"` // the page's locale
	Found    *string `json:"found"`              // observed locale; nil means absent
	Detail   string  `json:"detail,omitempty"`
}

// String renders the violation on one line.
func (v Violation) String() string {
	found := "absent"
	if v.Found != nil {
		found = *v.Found
	}
	switch v.Check {
	case CheckLinks:
		return fmt.Sprintf("%s links to %s (page locale %s, link locale %s)", v.Page, v.Href, v.Expected, found)
	case CheckMarkers:
		return fmt.Sprintf("%s: locale marker expected %s, found %s", v.Page, v.Expected, found)
	case CheckBrokenLinks:
		return v.Href
	default:
		return fmt.Sprintf("%s: %s", v.Page, v.Detail)
	}
}

// SortViolations orders violations by page, href, then check.
func SortViolations(vs []Violation) {
	slices.SortStableFunc(vs, func(a, b Violation) int {
		return cmp.Or(
			cmp.Compare(a.Page, b.Page),
			cmp.Compare(a.Href, b.Href),
			cmp.Compare(a.Check, b.Check),
		)
	})
}

func strPtr(s string) *string { return &s }
