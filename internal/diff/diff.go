// Package diff compares the text renderings of two validation runs.
//
// A run's stored summary lists every finding and violation on its own line,
// so a line diff shows exactly which violations appeared or were fixed
// between two builds.
package diff

import (
	"fmt"
	"strings"

	"github.com/openticketai/sitekit/internal/history"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown before/after changes.
// When equal sections exceed 2*contextLines, they're collapsed with "...".
const contextLines = 3

// Result holds diff output.
type Result struct {
	Old     string `json:"old"`  // old label
	New     string `json:"new"`  // new label
	Diff    string `json:"diff"` // plain diff text
	Changed bool   `json:"changed"`
}

// Compute returns a line diff between old and new content.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldContent, newContent)
	d := dmp.DiffMain(a, b, false)
	d = dmp.DiffCharsToLines(d, lines)

	changed := false
	for _, x := range d {
		if x.Type != diffmatchpatch.DiffEqual {
			changed = true
			break
		}
	}
	return Result{
		Old:     oldLabel,
		New:     newLabel,
		Diff:    format(d),
		Changed: changed,
	}
}

// Runs diffs the summaries of two recorded runs, older first.
func Runs(older, newer history.Run) Result {
	return Compute(older.Summary, newer.Summary, Label(older), Label(newer))
}

// Label names a run in a diff header.
func Label(r history.Run) string {
	return fmt.Sprintf("run %s (%s)", r.ShortID(), r.Started.Format("2006-01-02 15:04:05"))
}

// format converts diffs to unified-style text.
func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		// Trim trailing newline to avoid artefact empty string from Split
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				b.WriteString("- " + l + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				b.WriteString("+ " + l + "\n")
			}
		case diffmatchpatch.DiffEqual:
			if len(lines) > 2*contextLines {
				for i := range contextLines {
					b.WriteString("  " + lines[i] + "\n")
				}
				b.WriteString("  ...\n")
				for i := len(lines) - contextLines; i < len(lines); i++ {
					b.WriteString("  " + lines[i] + "\n")
				}
			} else {
				for _, l := range lines {
					b.WriteString("  " + l + "\n")
				}
			}
		}
	}
	return b.String()
}

// Colourise adds ANSI colours to diff output.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the full diff with header.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if !r.Changed {
		return header + "(no changes)\n"
	}
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
