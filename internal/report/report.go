// Package report renders validation reports for terminals and markdown.
//
// The report itself is built by package validate; this package only decides
// how it looks. Text output is what CI logs show, so it stays plain unless
// colour is requested.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/openticketai/sitekit/internal/validate"
)

const (
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	reset  = "\033[0m"
)

// symbols per level, in the order findings are printed.
var symbols = map[validate.Level]string{
	validate.LevelPass:    "✓",
	validate.LevelWarning: "!",
	validate.LevelError:   "✗",
}

func paint(s, c string, colour bool) string {
	if !colour {
		return s
	}
	return c + s + reset
}

func levelColour(l validate.Level) string {
	switch l {
	case validate.LevelPass:
		return green
	case validate.LevelWarning:
		return yellow
	default:
		return red
	}
}

// WriteText writes a human-readable report: one line per finding, the
// violations behind each error indented beneath it, then a summary line.
func WriteText(w io.Writer, r *validate.Report, colour bool) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Checked %d page(s) in %s (%d localized, %d key)\n", r.Pages, r.Root, r.Localized, r.KeyPages)

	for _, group := range [][]validate.Finding{r.Passed, r.Warnings, r.Errors} {
		for _, f := range group {
			sym := paint(symbols[f.Level], levelColour(f.Level), colour)
			fmt.Fprintf(&b, "%s %s: %s\n", sym, f.Check, f.Message)
			for _, v := range f.Violations {
				fmt.Fprintf(&b, "    %s\n", v)
			}
		}
	}

	b.WriteString(Summary(r, colour))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Summary returns the one-line verdict.
func Summary(r *validate.Report, colour bool) string {
	counts := fmt.Sprintf("%d passed, %d warning(s), %d error(s)", len(r.Passed), len(r.Warnings), len(r.Errors))
	if r.OK() {
		return paint("OK", green, colour) + ": " + counts
	}
	return paint("FAILED", red, colour) + ": " + counts
}

// Markdown renders the report as a markdown document.
func Markdown(r *validate.Report) string {
	var b strings.Builder
	b.WriteString("# Site check\n\n")
	fmt.Fprintf(&b, "- Root: `%s`\n", r.Root)
	fmt.Fprintf(&b, "- Pages: %d (%d localized, %d key)\n", r.Pages, r.Localized, r.KeyPages)
	fmt.Fprintf(&b, "- Result: **%s**\n", Summary(r, false))

	section := func(title string, fs []validate.Finding) {
		if len(fs) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n## %s\n\n", title)
		for _, f := range fs {
			fmt.Fprintf(&b, "- **%s**: %s\n", f.Check, f.Message)
			for _, v := range f.Violations {
				fmt.Fprintf(&b, "  - `%s`\n", v)
			}
		}
	}
	section("Errors", r.Errors)
	section("Warnings", r.Warnings)
	section("Passed", r.Passed)
	return b.String()
}
