// broken.go summarises the external link checker's report.
//
// The checker runs during the build and writes one broken URL per line.
// Indented lines carry detail for the entry above them and lines made only
// of '-' or '=' are separators; neither counts as an entry. This check does
// not crawl anything itself.

package validate

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultBrokenLinksLog is where the link checker writes its report.
const DefaultBrokenLinksLog = "broken-links.log"

// BrokenLinkResult is the parsed link checker report.
type BrokenLinkResult struct {
	Path    string
	Missing bool     // the log does not exist; the checker may not have run
	Entries []string // one per broken URL
}

// BrokenLinks reads the link checker report at logPath. A missing file is
// not an error; any other read failure is.
func BrokenLinks(logPath string) (BrokenLinkResult, error) {
	res := BrokenLinkResult{Path: logPath}

	f, err := os.Open(logPath)
	if errors.Is(err, fs.ErrNotExist) {
		res.Missing = true
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("reading broken link log: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 10*1024*1024)
	for sc.Scan() {
		if line := sc.Text(); isEntry(line) {
			res.Entries = append(res.Entries, strings.TrimSpace(line))
		}
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("reading broken link log: %w", err)
	}
	return res, nil
}

// isEntry reports whether a log line names a broken URL.
func isEntry(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	if line[0] == ' ' || line[0] == '\t' {
		return false
	}
	return !isSeparator(strings.TrimSpace(line))
}

func isSeparator(s string) bool {
	return strings.Trim(s, "-=") == ""
}

// Violations returns one violation per entry.
func (r BrokenLinkResult) Violations() []Violation {
	out := make([]Violation, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, Violation{Check: CheckBrokenLinks, Href: e, File: r.Path})
	}
	return out
}
