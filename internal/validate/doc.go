// Package validate checks a built site for locale mistakes.
//
// It runs once after the site generator has written its output and answers
// three questions:
//
//   - Links: does a localised page link into another locale's page tree?
//   - Markers: do the key pages declare the locale they are served under?
//   - Broken links: did the external link checker report anything?
//
// # Findings vs errors
//
// Rule breaches are not Go errors. Each check returns Violations, and Run
// aggregates them into a Report whose OK method decides the exit code.
// A returned error means the run itself could not complete (unreadable file,
// bad configuration) and no part of the report should be trusted.
//
// # Determinism
//
// Documents may be parsed in parallel, so every list of violations is sorted
// by page, then href, before it is reported.
package validate
