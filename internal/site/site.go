// Package site reads the static output of a site build.
//
// The output directory is produced once per build by the site generator and
// is only ever read here. Each HTML file becomes a Document: its URL path,
// the locale that path belongs to, the hrefs of its anchors and the values of
// its locale marker attributes.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/openticketai/sitekit/internal/locale"
	"github.com/openticketai/sitekit/internal/path"
	"golang.org/x/sync/errgroup"
)

// DefaultMarkerAttribute is the attribute key pages carry to declare their locale.
const DefaultMarkerAttribute = "data-locale"

// ErrNotDirectory is returned when the output root is not a directory.
var ErrNotDirectory = errors.New("output root is not a directory")

// Document is one rendered page of the built site.
type Document struct {
	File    string   `json:"file"`              // filesystem path
	URLPath string   `json:"url"`               // URL the page is served at
	Locale  string   `json:"locale,omitempty"`  // "" when the URL has no locale segment
	Anchors []string `json:"anchors,omitempty"` // href of every <a href>, in document order
	Markers []string `json:"markers,omitempty"` // values of the marker attribute, in document order
}

// Options configures Load.
type Options struct {
	MarkerAttribute string // defaults to DefaultMarkerAttribute
	Workers         int    // parallel parsers; defaults to runtime.NumCPU()

	// Progress, if set, is called once per parsed document. It may be
	// called from several goroutines.
	Progress func()
}

// Discover returns every ".html" file under root in walk order.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var files []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".html") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// LocaleOfPath returns the locale segment a URL path starts with, or "".
func LocaleOfPath(urlPath string) string {
	if seg := path.FirstSegment(urlPath); locale.IsLocaleSegment(seg) {
		return seg
	}
	return ""
}

// Load discovers and parses every document under root.
//
// Documents are parsed in parallel but returned in discovery order. Any read
// or parse failure aborts the load: a partial document set would make the
// validation result untrustworthy.
func Load(ctx context.Context, root string, opts Options) ([]Document, error) {
	files, err := Discover(root)
	if err != nil {
		return nil, err
	}
	return LoadFiles(ctx, root, files, opts)
}

// LoadFiles parses the given files, which must live under root.
func LoadFiles(ctx context.Context, root string, files []string, opts Options) ([]Document, error) {
	attr := opts.MarkerAttribute
	if attr == "" {
		attr = DefaultMarkerAttribute
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	docs := make([]Document, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := parseFile(root, f, attr)
			if err != nil {
				return err
			}
			docs[i] = doc
			if opts.Progress != nil {
				opts.Progress()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// parseFile reads one HTML file into a Document.
func parseFile(root, file, attr string) (Document, error) {
	urlPath, err := path.FromFile(root, file)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", file, err)
	}

	f, err := os.Open(file)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", file, err)
	}
	defer f.Close()

	html, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return Document{}, fmt.Errorf("parsing %s: %w", file, err)
	}

	doc := Document{
		File:    file,
		URLPath: urlPath,
		Locale:  LocaleOfPath(urlPath),
	}
	html.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		doc.Anchors = append(doc.Anchors, href)
	})
	html.Find("[" + attr + "]").Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr(attr)
		doc.Markers = append(doc.Markers, v)
	})
	return doc, nil
}

// Localized returns the documents whose URL carries a locale.
func Localized(docs []Document) []Document {
	var out []Document
	for _, d := range docs {
		if d.Locale != "" {
			out = append(out, d)
		}
	}
	return out
}
