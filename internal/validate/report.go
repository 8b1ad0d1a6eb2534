// report.go aggregates check outcomes into a pass/warn/error report.

package validate

import "time"

// Level classifies a check outcome.
type Level string

const (
	LevelPass    Level = "pass"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Finding is the outcome of one check.
type Finding struct {
	Check      Check       `json:"check"`
	Level      Level       `json:"level"`
	Message    string      `json:"message"`
	Violations []Violation `json:"violations,omitempty"`
}

// Report is the aggregate of one validation run.
type Report struct {
	Root      string    `json:"root"`
	Started   time.Time `json:"started"`
	Finished  time.Time `json:"finished"`
	Pages     int       `json:"pages"`
	Localized int       `json:"localized"`
	KeyPages  int       `json:"key_pages"`

	Passed   []Finding `json:"passed"`
	Warnings []Finding `json:"warnings"`
	Errors   []Finding `json:"errors"`
}

// Pass records a passing check.
func (r *Report) Pass(c Check, msg string) {
	r.Passed = append(r.Passed, Finding{Check: c, Level: LevelPass, Message: msg})
}

// Warn records a warning. Warnings never fail a run.
func (r *Report) Warn(c Check, msg string) {
	r.Warnings = append(r.Warnings, Finding{Check: c, Level: LevelWarning, Message: msg})
}

// Fail records an error with the violations behind it.
func (r *Report) Fail(c Check, msg string, vs []Violation) {
	r.Errors = append(r.Errors, Finding{Check: c, Level: LevelError, Message: msg, Violations: vs})
}

// OK reports whether the run recorded no errors.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

// ExitCode is 0 when OK, 1 otherwise.
func (r *Report) ExitCode() int {
	if r.OK() {
		return 0
	}
	return 1
}

// Violations returns every violation across all errors.
func (r *Report) Violations() []Violation {
	var out []Violation
	for _, f := range r.Errors {
		out = append(out, f.Violations...)
	}
	return out
}
