// errors.go defines sentinel errors for validation runs.
//
// These describe why a run could not complete, never a rule breach found on
// the site. Rule breaches are Violations.

package validate

import "errors"

var (
	ErrNoRoot         = errors.New("output root not configured")
	ErrInvalidPattern = errors.New("invalid key page pattern")
)
