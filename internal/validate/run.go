// run.go implements the validation pipeline.
//
// The pipeline is linear: load documents, run each check over the same
// document set, aggregate. There are no retries. An unexpected I/O error at
// any step aborts the run.

package validate

import (
	"context"
	"fmt"
	"time"

	"github.com/openticketai/sitekit/internal/site"
)

// Options configures Run.
type Options struct {
	Root            string   // built output directory
	BrokenLinksLog  string   // link checker report; empty skips the check with a warning
	MarkerAttribute string   // defaults to site.DefaultMarkerAttribute
	KeyPages        []string // defaults to DefaultKeyPages
	Workers         int
	Progress        func(total int) func() // optional; returns the per-document callback
}

// Run validates the site under opts.Root.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Root == "" {
		return nil, ErrNoRoot
	}
	attr := opts.MarkerAttribute
	if attr == "" {
		attr = site.DefaultMarkerAttribute
	}
	patterns := opts.KeyPages
	if len(patterns) == 0 {
		patterns = DefaultKeyPages
	}
	if err := ValidatePatterns(patterns); err != nil {
		return nil, err
	}

	r := &Report{Root: opts.Root, Started: time.Now()}

	files, err := site.Discover(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("discovering documents: %w", err)
	}
	loadOpts := site.Options{MarkerAttribute: attr, Workers: opts.Workers}
	if opts.Progress != nil {
		loadOpts.Progress = opts.Progress(len(files))
	}
	docs, err := site.LoadFiles(ctx, opts.Root, files, loadOpts)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}
	r.Pages = len(docs)
	r.Localized = len(site.Localized(docs))

	checkLinks(r, docs)
	if err := checkMarkers(r, docs, patterns, attr); err != nil {
		return nil, err
	}
	if err := checkBrokenLinks(r, opts.BrokenLinksLog); err != nil {
		return nil, err
	}

	r.Finished = time.Now()
	return r, nil
}

func checkLinks(r *Report, docs []site.Document) {
	if r.Localized == 0 {
		r.Warn(CheckLinks, "no localized pages found")
		return
	}
	vs := Links(docs)
	if len(vs) > 0 {
		r.Fail(CheckLinks, fmt.Sprintf("%d link(s) point into another locale", len(vs)), vs)
		return
	}
	r.Pass(CheckLinks, fmt.Sprintf("%d localized page(s) link within their locale", r.Localized))
}

func checkMarkers(r *Report, docs []site.Document, patterns []string, attr string) error {
	keys, err := KeyPages(docs, patterns)
	if err != nil {
		return err
	}
	r.KeyPages = len(keys)
	if len(keys) == 0 {
		r.Warn(CheckMarkers, "no key pages found")
		return nil
	}
	vs, err := Markers(keys, patterns, attr)
	if err != nil {
		return err
	}
	if len(vs) > 0 {
		r.Fail(CheckMarkers, fmt.Sprintf("%d key page(s) missing a matching %s", len(vs), attr), vs)
		return nil
	}
	r.Pass(CheckMarkers, fmt.Sprintf("%d key page(s) carry a matching %s", len(keys), attr))
	return nil
}

func checkBrokenLinks(r *Report, logPath string) error {
	if logPath == "" {
		r.Warn(CheckBrokenLinks, "no broken link log configured")
		return nil
	}
	res, err := BrokenLinks(logPath)
	if err != nil {
		return err
	}
	switch {
	case res.Missing:
		r.Warn(CheckBrokenLinks, fmt.Sprintf("broken link log %s not found; link checker may not have run", logPath))
	case len(res.Entries) > 0:
		r.Fail(CheckBrokenLinks, fmt.Sprintf("%d broken link(s) reported", len(res.Entries)), res.Violations())
	default:
		r.Pass(CheckBrokenLinks, "no broken links reported")
	}
	return nil
}
